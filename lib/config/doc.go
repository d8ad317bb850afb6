// Package config manages the updater's own settings through viper.
//
// Settings live in $HOME/.peers-updater/config.yaml and cover the peer
// directory URL, probing behavior and an optional admin socket override.
// The Yggdrasil configuration file being patched is NOT read through this
// package; its default location is only computed here (per platform) and
// the file itself is handled as opaque text by lib/confedit.
package config
