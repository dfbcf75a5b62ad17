package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Locale  string        `yaml:"locale" env:"TOURPLAN_LOCALE" env-default:"en"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"TOURPLAN_DB_DRIVER" env-default:"sqlite"`
	DSN    string `yaml:"dsn" env:"TOURPLAN_DB_DSN" env-default:"tourplan.db"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"TOURPLAN_LOG_LEVEL" env-default:"info"`
}

// DefaultPath is the config file used when none is given.
const DefaultPath = "config.yaml"

// LoadFile reads configuration from path and environment variables.
// Priority: Env Vars > Config File > Defaults. A missing file falls back to
// environment variables and defaults; an unreadable or malformed one is an error.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	default:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	switch cfg.Storage.Driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	return &cfg, nil
}
