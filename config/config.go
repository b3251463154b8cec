package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all server settings
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Cors struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`

	Arena ArenaConfig `yaml:"arena"`
}

// ArenaConfig tunes the debate lifecycle. All durations are in minutes to
// match the command surface.
type ArenaConfig struct {
	ChallengeTTLMinutes     int `yaml:"challengeTtlMinutes"`
	MinDurationMinutes      int `yaml:"minDurationMinutes"`
	MaxDurationMinutes      int `yaml:"maxDurationMinutes"`
	DefaultDurationMinutes  int `yaml:"defaultDurationMinutes"`
	MaxActiveDebates        int `yaml:"maxActiveDebates"`
	LeaderboardSize         int `yaml:"leaderboardSize"`
	ExpiredRetentionMinutes int `yaml:"expiredRetentionMinutes"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 3000
	cfg.Cors.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.Arena = ArenaConfig{
		ChallengeTTLMinutes:     5,
		MinDurationMinutes:      5,
		MaxDurationMinutes:      60,
		DefaultDurationMinutes:  30,
		MaxActiveDebates:        3,
		LeaderboardSize:         10,
		ExpiredRetentionMinutes: 60,
	}
	return &cfg
}

// LoadConfig reads the configuration file and fills in defaults for any
// omitted values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults backfills zero values so a sparse file cannot disable the
// lifecycle timers.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Arena.ChallengeTTLMinutes == 0 {
		c.Arena.ChallengeTTLMinutes = d.Arena.ChallengeTTLMinutes
	}
	if c.Arena.MinDurationMinutes == 0 {
		c.Arena.MinDurationMinutes = d.Arena.MinDurationMinutes
	}
	if c.Arena.MaxDurationMinutes == 0 {
		c.Arena.MaxDurationMinutes = d.Arena.MaxDurationMinutes
	}
	if c.Arena.DefaultDurationMinutes == 0 {
		c.Arena.DefaultDurationMinutes = d.Arena.DefaultDurationMinutes
	}
	if c.Arena.MaxActiveDebates == 0 {
		c.Arena.MaxActiveDebates = d.Arena.MaxActiveDebates
	}
	if c.Arena.LeaderboardSize == 0 {
		c.Arena.LeaderboardSize = d.Arena.LeaderboardSize
	}
	if c.Arena.ExpiredRetentionMinutes == 0 {
		c.Arena.ExpiredRetentionMinutes = d.Arena.ExpiredRetentionMinutes
	}
}
