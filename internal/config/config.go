package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process-level settings shared by every module.
type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`

	PostgresDSN   string `env:"POSTGRES_DSN,required,notEmpty"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return &cfg, nil
}
