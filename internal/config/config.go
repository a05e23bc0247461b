// Package config loads server configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full server configuration.
type Config struct {
	// Addr is the listen address for the websocket and health endpoints.
	Addr string `env:"UNO_ADDR" envDefault:":8080"`
	// DBPath selects the sqlite file; empty keeps sessions in memory.
	DBPath string `env:"UNO_DB_PATH"`
	// Advertise enables SSDP discovery announcements on the local network.
	Advertise bool `env:"UNO_ADVERTISE" envDefault:"false"`
	// OriginAllowlist restricts websocket origins; empty allows same-host only.
	OriginAllowlist []string `env:"UNO_ORIGIN_ALLOWLIST" envSeparator:","`
	// MinPlayers and MaxPlayers bound new sessions created on this server.
	MinPlayers int `env:"UNO_MIN_PLAYERS" envDefault:"2"`
	MaxPlayers int `env:"UNO_MAX_PLAYERS" envDefault:"10"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MinPlayers < 2 || cfg.MinPlayers > cfg.MaxPlayers {
		return Config{}, fmt.Errorf("need 2 <= UNO_MIN_PLAYERS <= UNO_MAX_PLAYERS, got %d..%d",
			cfg.MinPlayers, cfg.MaxPlayers)
	}
	return cfg, nil
}
