package config

import (
	"runtime"
	"time"
)

// DefaultDirectoryURL is the community peer directory, served by GitHub as
// a zip snapshot of the public-peers repository.
const DefaultDirectoryURL = "https://github.com/yggdrasil-network/public-peers/archive/refs/heads/master.zip"

const (
	DefaultProbeTimeout     = 5 * time.Second
	DefaultProbeConcurrency = 64

	// DefaultProbeRate paces probe dial attempts per second so a large
	// directory does not look like a SYN flood to the local router.
	DefaultProbeRate = 100
)

// DefaultYggdrasilConfPath returns the platform's standard location of
// yggdrasil.conf.
func DefaultYggdrasilConfPath() string {
	switch runtime.GOOS {
	case "windows":
		return `C:\ProgramData\Yggdrasil\yggdrasil.conf`
	case "freebsd", "openbsd":
		return "/usr/local/etc/yggdrasil.conf"
	default:
		return "/etc/yggdrasil.conf"
	}
}

// DefaultAdminSocket is where a stock Yggdrasil install listens for admin
// requests when the config does not say otherwise.
func DefaultAdminSocket() string {
	if runtime.GOOS == "windows" {
		return "tcp://localhost:9001"
	}
	return "unix:///var/run/yggdrasil/yggdrasil.sock"
}
