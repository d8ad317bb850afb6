package admin

import (
	"github.com/yggdrasil-community/peers-updater/lib/confedit"
)

// ApplyPeers makes the running node's peer set match the policy's
// selection: every current connection is dropped, then the capped,
// filtered candidates and the fixed extra addresses are added. Individual
// removepeer failures are logged and skipped, since a peer that is already
// gone is not worth aborting the update over; addpeer failures abort.
func ApplyPeers(c *Client, candidates []confedit.Candidate, pol confedit.Policy) error {
	current, err := c.GetPeers()
	if err != nil {
		return err
	}
	for _, rp := range current {
		if rp.Remote == "" {
			continue
		}
		if err := c.RemovePeer(rp.Remote); err != nil {
			log.WithError(err).Warnf("could not remove peer %s", rp.Remote)
		}
	}

	for _, cand := range confedit.Select(candidates, pol) {
		if err := c.AddPeer(cand.URI); err != nil {
			return err
		}
		log.Debugf("added peer %s", cand.URI)
	}
	for _, addr := range pol.ExtraAddresses() {
		if err := c.AddPeer(addr); err != nil {
			return err
		}
		log.Debugf("added extra peer %s", addr)
	}
	return nil
}
