// Package config loads game and server settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable. Zero Seed means "pick one from the clock".
type Config struct {
	Seed int64 `env:"DELVE_SEED" envDefault:"0"`

	MapWidth  int `env:"DELVE_MAP_WIDTH" envDefault:"80"`
	MapHeight int `env:"DELVE_MAP_HEIGHT" envDefault:"43"`
	MaxRooms  int `env:"DELVE_MAX_ROOMS" envDefault:"30"`
	RoomMin   int `env:"DELVE_ROOM_MIN" envDefault:"6"`
	RoomMax   int `env:"DELVE_ROOM_MAX" envDefault:"10"`
	FOVRadius int `env:"DELVE_FOV_RADIUS" envDefault:"8"`

	LogLevel  string `env:"DELVE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DELVE_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"DELVE_LOG_FILE" envDefault:"delve.log"`

	SSHPort    int    `env:"DELVE_SSH_PORT" envDefault:"2222"`
	SSHHostKey string `env:"DELVE_SSH_HOST_KEY" envDefault:"server_host_key"`

	RunLog bool `env:"DELVE_RUNLOG" envDefault:"true"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the floor generator cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.RoomMin < 3 || c.RoomMin > c.RoomMax {
		errs = append(errs, fmt.Errorf("room size range %d..%d is invalid", c.RoomMin, c.RoomMax))
	}
	if c.MapWidth <= c.RoomMax || c.MapHeight <= c.RoomMax {
		errs = append(errs, fmt.Errorf("map %dx%d cannot fit rooms of size %d", c.MapWidth, c.MapHeight, c.RoomMax))
	}
	if c.MaxRooms <= 0 {
		errs = append(errs, errors.New("max rooms must be positive"))
	}
	if c.FOVRadius <= 0 {
		errs = append(errs, errors.New("fov radius must be positive"))
	}
	if c.SSHPort <= 0 || c.SSHPort > 65535 {
		errs = append(errs, fmt.Errorf("ssh port %d out of range", c.SSHPort))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
