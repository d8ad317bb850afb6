package peer

import (
	"math"
	"sort"
	"time"

	"github.com/yggdrasil-community/peers-updater/lib/confedit"
)

// LatencyUnreachable marks a peer that did not answer the probe. It sorts
// after every measured latency.
const LatencyUnreachable = time.Duration(math.MaxInt64)

// Peer is one public peer from the directory. Region and Country come from
// the directory layout; Latency and Alive are filled in by the prober.
type Peer struct {
	URI     string
	Region  string
	Country string
	Latency time.Duration
	Alive   bool
}

// SortByLatency orders peers by ascending latency in place. Unreachable
// peers carry the LatencyUnreachable sentinel and therefore sink to the
// end.
func SortByLatency(peers []Peer) {
	sort.SliceStable(peers, func(i, j int) bool {
		return peers[i].Latency < peers[j].Latency
	})
}

// Alive returns only the peers that answered the probe, preserving order.
func Alive(peers []Peer) []Peer {
	alive := make([]Peer, 0, len(peers))
	for _, p := range peers {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	return alive
}

// Candidates converts peers into the candidate records consumed by the
// configuration patcher, in the given order.
func Candidates(peers []Peer) []confedit.Candidate {
	cands := make([]confedit.Candidate, 0, len(peers))
	for _, p := range peers {
		cands = append(cands, confedit.Candidate{
			URI:     p.URI,
			Region:  p.Region,
			Country: p.Country,
		})
	}
	return cands
}
