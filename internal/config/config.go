package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, loaded from the environment
type Config struct {
	// Redis connection
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Discord credentials
	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// AdminAccount may pause the arena and cancel any open duel
	AdminAccount string `env:"ADMIN_ACCOUNT"`

	// Stake bounds in base units; zero falls back to the service defaults
	MinStake uint64 `env:"MIN_STAKE"`
	MaxStake uint64 `env:"MAX_STAKE"`

	// RoundTimeout is how long a round may idle before forfeiture
	RoundTimeout time.Duration `env:"ROUND_TIMEOUT" envDefault:"24h"`

	// LogLevel is a zerolog level name (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
