package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	Goroutines = 1
	LogLevel   = "info"
	OutputDir  = "experiments"
)

type Config struct {
	Goroutines     int    `env:"SHAPLEY_GOROUTINES" envDefault:"1"`
	Samples        int    `env:"SHAPLEY_SAMPLES" envDefault:"0"` // 0 selects exact enumeration
	Seed           uint64 `env:"SHAPLEY_SEED"`                   // 0 draws a fresh seed per run
	SkipInfeasible bool   `env:"SHAPLEY_SKIP_INFEASIBLE"`
	LogLevel       string `env:"SHAPLEY_LOG_LEVEL" envDefault:"info"`
	OutputDir      string `env:"SHAPLEY_OUTPUT_DIR" envDefault:"experiments"`
}

// Load reads the configuration from SHAPLEY_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SetupLogging points the global logger at stderr with the configured level.
func SetupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}
