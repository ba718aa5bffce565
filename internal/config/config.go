// Package config loads tstoken CLI configuration.
//
// Sources, lowest priority first: built-in defaults, a YAML file, then
// TSTOKEN_* environment variables. Command-line flags are applied on top by
// the command package.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

// EnvPrefix is the environment variable prefix.
// Nested keys use a double underscore: TSTOKEN_RANDOM__LENGTH -> random.length.
const EnvPrefix = "TSTOKEN_"

// Config is the CLI configuration.
type Config struct {
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Keyset is the path of a cleartext JSON keyset. When set, salts and
	// random strings are reproducible for that keyset.
	Keyset string `koanf:"keyset"`

	Random RandomConfig `koanf:"random"`
}

// RandomConfig configures the random subcommand.
type RandomConfig struct {
	Length int `koanf:"length"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Random:   RandomConfig{Length: 16},
	}
}

// Load reads path (skipped when empty) and the environment over Default().
func Load(path string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envTransformer := func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformer), nil); err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}

	// absent keys keep their defaults
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Random.Length < 0 {
		return fmt.Errorf("random.length must not be negative, got %d", c.Random.Length)
	}
	return nil
}
