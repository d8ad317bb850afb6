package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// TestDefaultsRoundTrip verifies that every default set via setDefaults()
// is read back under the same key by NewUpdaterConfigFromViper.
func TestDefaultsRoundTrip(t *testing.T) {
	viper.Reset()
	setDefaults()

	cfg := NewUpdaterConfigFromViper()

	if cfg.DirectoryURL != DefaultDirectoryURL {
		t.Errorf("DirectoryURL = %q, want %q", cfg.DirectoryURL, DefaultDirectoryURL)
	}
	if cfg.ProbeTimeout != DefaultProbeTimeout {
		t.Errorf("ProbeTimeout = %v, want %v", cfg.ProbeTimeout, DefaultProbeTimeout)
	}
	if cfg.ProbeConcurrency != DefaultProbeConcurrency {
		t.Errorf("ProbeConcurrency = %d, want %d", cfg.ProbeConcurrency, DefaultProbeConcurrency)
	}
	if cfg.ProbeRate != DefaultProbeRate {
		t.Errorf("ProbeRate = %d, want %d", cfg.ProbeRate, DefaultProbeRate)
	}
	if cfg.AdminSocket != "" {
		t.Errorf("AdminSocket = %q, want empty override", cfg.AdminSocket)
	}
}

func TestConcurrencyClamped(t *testing.T) {
	viper.Reset()
	setDefaults()
	viper.Set("probe.concurrency", -3)

	cfg := NewUpdaterConfigFromViper()
	if cfg.ProbeConcurrency != 1 {
		t.Errorf("ProbeConcurrency = %d, want clamp to 1", cfg.ProbeConcurrency)
	}
}

func TestOverridesWinOverDefaults(t *testing.T) {
	viper.Reset()
	setDefaults()
	viper.Set("directory.url", "https://mirror.example.org/peers.zip")
	viper.Set("probe.timeout", 2*time.Second)

	cfg := NewUpdaterConfigFromViper()
	if cfg.DirectoryURL != "https://mirror.example.org/peers.zip" {
		t.Errorf("DirectoryURL override not honored: %q", cfg.DirectoryURL)
	}
	if cfg.ProbeTimeout != 2*time.Second {
		t.Errorf("ProbeTimeout override not honored: %v", cfg.ProbeTimeout)
	}
}

func TestDefaultYggdrasilConfPath(t *testing.T) {
	p := DefaultYggdrasilConfPath()
	if p == "" {
		t.Fatal("empty default conf path")
	}
	if !strings.Contains(strings.ToLower(p), "yggdrasil") {
		t.Errorf("suspicious default conf path %q", p)
	}
}

func TestBuildUpdaterDirPath(t *testing.T) {
	p := BuildUpdaterDirPath()
	if !strings.HasSuffix(p, BaseDirName) {
		t.Errorf("BuildUpdaterDirPath() = %q, want %q suffix", p, BaseDirName)
	}
}
