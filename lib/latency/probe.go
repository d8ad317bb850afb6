// Package latency measures reachability of candidate peers.
//
// Every peer is dialed over TCP and the connection round-trip taken as its
// latency. The probes run in a bounded worker pool with a rate limiter in
// front of the dials, so a full directory scan neither exhausts file
// descriptors nor bursts hundreds of SYNs at once. No state is shared with
// the patcher beyond the probed slice handed back to the caller.
package latency

import (
	"context"
	"net"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/yggdrasil-community/peers-updater/lib/peer"
	"github.com/yggdrasil-community/peers-updater/lib/util/logger"
)

var log = logger.GetLogger()

// Prober dials peers to measure their latency.
type Prober struct {
	Timeout     time.Duration
	Concurrency int
	Limiter     *rate.Limiter
}

// New returns a Prober with the given dial timeout, worker count and
// maximum dials per second.
func New(timeout time.Duration, concurrency, perSecond int) *Prober {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Prober{
		Timeout:     timeout,
		Concurrency: concurrency,
		Limiter:     rate.NewLimiter(rate.Limit(perSecond), concurrency),
	}
}

// ProbeAll measures every peer in place and sorts the slice by ascending
// latency, unreachable peers last. A canceled context marks the remaining
// peers unreachable rather than failing the whole run.
func (p *Prober) ProbeAll(ctx context.Context, peers []peer.Peer) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Concurrency)

	for i := range peers {
		i := i
		g.Go(func() error {
			if p.Limiter != nil {
				if err := p.Limiter.Wait(ctx); err != nil {
					peers[i].Latency, peers[i].Alive = peer.LatencyUnreachable, false
					return nil
				}
			}
			peers[i].Latency, peers[i].Alive = p.probe(ctx, peers[i].URI)
			return nil
		})
	}
	_ = g.Wait()

	peer.SortByLatency(peers)
}

// probe dials the peer's host over TCP. Peers advertised over quic or
// websocket transports answer on the same host and port, so a TCP
// handshake is a usable reachability and latency signal for all of them.
func (p *Prober) probe(ctx context.Context, uri string) (time.Duration, bool) {
	u, err := url.Parse(uri)
	if err != nil || u.Host == "" {
		return peer.LatencyUnreachable, false
	}

	dialCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	var d net.Dialer
	start := time.Now()
	conn, err := d.DialContext(dialCtx, "tcp", u.Host)
	if err != nil {
		log.Debugf("probe %s: %s", uri, err)
		return peer.LatencyUnreachable, false
	}
	elapsed := time.Since(start)
	conn.Close()
	return elapsed, true
}
