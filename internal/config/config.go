// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every server knob. Environment variables are the source of
// truth; cmd/server exposes flags that override them.
type Config struct {
	// Port is the SSH listen port.
	Port int `env:"SOULMUD_PORT" envDefault:"2222"`

	// HostKeyPath is the PEM host key location (auto-generated if absent).
	HostKeyPath string `env:"SOULMUD_HOST_KEY" envDefault:"server_host_key"`

	// KeepInventory selects the death mode: true retains a dead player's
	// inventory (soulbound slots are cleared), false drops it on the floor
	// (soulbound entries never land).
	KeepInventory bool `env:"SOULMUD_KEEP_INVENTORY" envDefault:"false"`

	// Binders lists SSH usernames allowed to use the soulbind command.
	// The single entry "*" grants it to everyone.
	Binders []string `env:"SOULMUD_BINDERS" envSeparator:"," envDefault:"*"`

	// TickInterval is the wall-clock period between world ticks.
	TickInterval time.Duration `env:"SOULMUD_TICK_INTERVAL" envDefault:"500ms"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// MayBind reports whether the named user holds the binding permission.
func (c Config) MayBind(user string) bool {
	return slices.Contains(c.Binders, "*") || slices.Contains(c.Binders, user)
}
