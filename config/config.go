// Package config loads runtime settings from an optional .env file and the
// environment. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"hotel-reservation/hotel"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment variable names.
const (
	EnvStore    = "HOTEL_STORE"
	EnvSeedFile = "HOTEL_SEED_FILE"
	EnvLogLevel = "HOTEL_LOG_LEVEL"
)

// Config holds the settings for one run.
type Config struct {
	Store    string // "memory" or "sqlite"
	SeedFile string // YAML inventory; empty means the built-in rooms
	LogLevel string // zap level name
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{Store: hotel.StoreMemory, LogLevel: "warn"}
}

// Load reads envFile (a missing file is not an error) and then the process
// environment. Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if v, ok := lookup(EnvStore); ok {
		cfg.Store = v
	}
	if v, ok := lookup(EnvSeedFile); ok {
		cfg.SeedFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	return cfg, nil
}

// Validate rejects unknown store kinds and log levels.
func (c Config) Validate() error {
	switch hotel.NormalizeStoreKind(c.Store) {
	case hotel.StoreMemory, hotel.StoreSQLite:
	default:
		return fmt.Errorf("invalid store %q (want memory or sqlite)", c.Store)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// NewLogger builds a console-encoded zap logger writing to stderr.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Sampling = nil
	return zc.Build()
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
