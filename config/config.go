package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Default dispatch tuning.
const (
	DefaultQueueSize = 1024
	DefaultWorkers   = 8
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the root configuration document.
type Config struct {
	// Dispatch tunes the dispatcher's worker pool.
	Dispatch DispatchConfig `toml:"dispatch"`
}

// DispatchConfig tunes the dispatcher's worker pool.
type DispatchConfig struct {
	// QueueSize is the invocation queue capacity.
	QueueSize int `toml:"queue_size"`

	// Workers is the number of worker goroutines.
	Workers int `toml:"workers"`

	// SyncDelivery executes listeners inline instead of on the pool.
	SyncDelivery bool `toml:"sync_delivery"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Dispatch: DispatchConfig{
			QueueSize: DefaultQueueSize,
			Workers:   DefaultWorkers,
		},
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Dispatch.QueueSize <= 0 {
		return fmt.Errorf("%w: dispatch.queue_size must be positive, got %d",
			ErrInvalid, c.Dispatch.QueueSize)
	}
	if c.Dispatch.Workers <= 0 {
		return fmt.Errorf("%w: dispatch.workers must be positive, got %d",
			ErrInvalid, c.Dispatch.Workers)
	}
	return nil
}

// Load reads a TOML config file. A missing file yields defaults; a partial
// file overrides only the keys it names. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}
