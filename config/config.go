package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/relmatch/parallel"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure returned by Load and Validate.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the top-level relmatch configuration.
//
// Thread Safety: safe to read concurrently once loaded.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Parallel   ParallelConfig   `yaml:"parallel"`
	Unit       ParallelConfig   `yaml:"unit"`
	Store      StoreConfig      `yaml:"store"`
	Federation FederationConfig `yaml:"federation"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// ParallelConfig sizes one fan-out. See parallel.Limits.
type ParallelConfig struct {
	Threshold  int `yaml:"threshold" validate:"gte=1"`
	MaxWorkers int `yaml:"max_workers" validate:"gte=0"`
}

// StoreConfig locates the pattern store.
type StoreConfig struct {
	Dir      string `yaml:"dir" validate:"required_without=InMemory"`
	InMemory bool   `yaml:"in_memory"`
}

// FederationConfig names the federation the CLI acts on when no name
// argument is given. The name also labels logs and metrics.
type FederationConfig struct {
	Name string `yaml:"name" validate:"required,max=64"`
}

// Default returns the built-in configuration.
func Default() Config {
	l := parallel.DefaultLimits()

	return Config{
		Log:        LogConfig{Level: "info", Format: "text"},
		Parallel:   ParallelConfig{Threshold: l.Threshold, MaxWorkers: l.MaxWorkers},
		Unit:       ParallelConfig{Threshold: l.Threshold, MaxWorkers: l.MaxWorkers},
		Store:      StoreConfig{Dir: "relmatch.db"},
		Federation: FederationConfig{Name: "default"},
	}
}

// Load merges defaults, the YAML file at path (optional) and the
// environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	loadEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("RELMATCH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("RELMATCH_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	envInt("RELMATCH_PARALLEL_THRESHOLD", &cfg.Parallel.Threshold)
	envInt("RELMATCH_PARALLEL_MAX_WORKERS", &cfg.Parallel.MaxWorkers)
	envInt("RELMATCH_UNIT_THRESHOLD", &cfg.Unit.Threshold)
	envInt("RELMATCH_UNIT_MAX_WORKERS", &cfg.Unit.MaxWorkers)
	if v := os.Getenv("RELMATCH_STORE_DIR"); v != "" {
		cfg.Store.Dir = v
	}
	if v := os.Getenv("RELMATCH_STORE_IN_MEMORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Store.InMemory = b
		}
	}
	if v := os.Getenv("RELMATCH_FEDERATION_NAME"); v != "" {
		cfg.Federation.Name = v
	}
}

// envInt overwrites dst with the integer value of key; malformed values
// are ignored.
func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			*dst = i
		}
	}
}

// Validate checks the struct tags of every section.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Limits converts c into parallel.Limits using logger for fan-out records.
func (c ParallelConfig) Limits(logger *slog.Logger) parallel.Limits {
	return parallel.Limits{
		Threshold:  c.Threshold,
		MaxWorkers: c.MaxWorkers,
		Logger:     logger,
	}
}

// SlogLevel maps the configured level name to slog.Level. Unknown names map
// to slog.LevelInfo.
func (c LogConfig) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}

	return l
}

// Logger builds a slog.Logger writing to w.
func (c LogConfig) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
