//go:build windows

package main

import "os/exec"

// restartNode restarts the yggdrasil service so the patched configuration
// takes effect. Failures are not fatal; the file update already happened.
func restartNode() {
	if err := exec.Command("net", "stop", "yggdrasil").Run(); err != nil {
		log.WithError(err).Warn("could not stop the yggdrasil service")
	}
	if err := exec.Command("net", "start", "yggdrasil").Run(); err != nil {
		log.WithError(err).Warn("could not start the yggdrasil service")
	}
}
