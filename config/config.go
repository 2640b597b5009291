// Package config loads client settings from a litetable-client.toml file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/litetable/litetable-client/reader"
)

// RetryConfiguration controls how streamed reads are retried
type RetryConfiguration struct {
	MaxAttempts       int     `toml:"max_attempts"`
	InitialBackoffMS  int     `toml:"initial_backoff_ms"`
	BackoffMultiplier float64 `toml:"backoff_multiplier"`
	MaxBackoffMS      int     `toml:"max_backoff_ms"`
}

type Config struct {
	Debug     bool               `toml:"debug"`
	ReadRetry RetryConfiguration `toml:"read_retry"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	retry := reader.DefaultRetrySettings()
	return &Config{
		ReadRetry: RetryConfiguration{
			MaxAttempts:       retry.MaxAttempts,
			InitialBackoffMS:  int(retry.InitialBackoff / time.Millisecond),
			BackoffMultiplier: retry.BackoffMultiplier,
			MaxBackoffMS:      int(retry.MaxBackoff / time.Millisecond),
		},
	}
}

// Load reads the config file at path on top of the defaults. Unrecognized
// keys are an error; a typo in a retry knob should not silently fall back.
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unrecognized config option: %s", undecoded[0].String())
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errGrp []error
	if c.ReadRetry.MaxAttempts < 1 {
		errGrp = append(errGrp, errors.New("read_retry.max_attempts must be at least 1"))
	}
	if c.ReadRetry.InitialBackoffMS <= 0 {
		errGrp = append(errGrp, errors.New("read_retry.initial_backoff_ms must be positive"))
	}
	if c.ReadRetry.BackoffMultiplier < 1 {
		errGrp = append(errGrp, errors.New("read_retry.backoff_multiplier must be at least 1"))
	}
	return errors.Join(errGrp...)
}

// RetrySettings converts the file representation into the reader's settings.
func (c *Config) RetrySettings() reader.RetrySettings {
	return reader.RetrySettings{
		MaxAttempts:       c.ReadRetry.MaxAttempts,
		InitialBackoff:    time.Duration(c.ReadRetry.InitialBackoffMS) * time.Millisecond,
		BackoffMultiplier: c.ReadRetry.BackoffMultiplier,
		MaxBackoff:        time.Duration(c.ReadRetry.MaxBackoffMS) * time.Millisecond,
	}
}
