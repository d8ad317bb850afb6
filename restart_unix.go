//go:build !windows

package main

import "os/exec"

// restartNode restarts the yggdrasil service so the patched configuration
// takes effect. Failures are not fatal; the file update already happened.
func restartNode() {
	if err := exec.Command("systemctl", "restart", "yggdrasil").Run(); err != nil {
		log.WithError(err).Warn("could not restart the yggdrasil service")
	}
}
