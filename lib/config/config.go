package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/yggdrasil-community/peers-updater/lib/util"
	"github.com/yggdrasil-community/peers-updater/lib/util/logger"
)

var (
	CfgFile string
	log     = logger.GetLogger()
)

const BaseDirName = ".peers-updater"

// UpdaterConfig holds the tool's own settings, distinct from the Yggdrasil
// configuration file being patched.
type UpdaterConfig struct {
	DirectoryURL     string
	ProbeTimeout     time.Duration
	ProbeConcurrency int
	ProbeRate        int
	// AdminSocket overrides the address discovered from the Yggdrasil
	// config's AdminListen key. Empty means no override.
	AdminSocket string
}

func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.peers-updater/
		viper.AddConfigPath(BuildUpdaterDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	// handle config file creating it if needed
	handleConfigFile()
}

func setDefaults() {
	viper.SetDefault("directory.url", DefaultDirectoryURL)
	viper.SetDefault("probe.timeout", DefaultProbeTimeout)
	viper.SetDefault("probe.concurrency", DefaultProbeConcurrency)
	viper.SetDefault("probe.rate", DefaultProbeRate)
	viper.SetDefault("admin.socket", "")
}

// NewUpdaterConfigFromViper creates an UpdaterConfig from current viper
// settings.
func NewUpdaterConfigFromViper() *UpdaterConfig {
	cfg := &UpdaterConfig{
		DirectoryURL:     viper.GetString("directory.url"),
		ProbeTimeout:     viper.GetDuration("probe.timeout"),
		ProbeConcurrency: viper.GetInt("probe.concurrency"),
		ProbeRate:        viper.GetInt("probe.rate"),
		AdminSocket:      viper.GetString("admin.socket"),
	}
	if cfg.ProbeConcurrency < 1 {
		log.Warnf("probe.concurrency %d is invalid, using 1", cfg.ProbeConcurrency)
		cfg.ProbeConcurrency = 1
	}
	return cfg
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	// Write current config file
	if err := viper.WriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildUpdaterDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func BuildUpdaterDirPath() string {
	return filepath.Join(util.UserHome(), BaseDirName)
}
