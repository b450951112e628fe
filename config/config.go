package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/twseq/qd/constants"
	"go.uber.org/zap"
)

// Config run configuration, optionally preset from a toml file.
// Command line flags override file values.
type Config struct {
	Symbols []string `toml:"symbols"`
	Years   int      `toml:"years"`
	Store   string   `toml:"store"`
	Delay   Duration `toml:"delay"`
}

// Duration toml text duration, eg "400ms" or "2s"
type Duration struct {
	time.Duration
}

// UnmarshalText implement toml text unmarshaling
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default return the compiled-in configuration
func Default() *Config {
	return &Config{
		Symbols: constants.DefaultSymbols,
		Years:   constants.DefaultLookbackYears,
		Store:   "csv:.",
		Delay:   Duration{Duration: constants.PoliteDelay},
	}
}

// Load read a toml config file over the defaults
func Load(path string) (*Config, error) {
	config := Default()
	_, err := toml.DecodeFile(path, config)
	if err != nil {
		zap.L().Error("load config file failed", zap.Error(err), zap.String("path", path))
		return nil, err
	}

	return config, nil
}
