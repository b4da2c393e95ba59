package config

import "os"

// Config holds application configuration loaded from environment variables.
// Log level and log file are read by the logger package directly.
type Config struct {
	MapFile      string // path to a YAML board definition; empty uses the built-in demo board
	SnapshotFile string // path to a JSON world snapshot
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		MapFile:      os.Getenv("RAILPLAN_MAP"),
		SnapshotFile: os.Getenv("RAILPLAN_SNAPSHOT"),
	}
}
