// Package config loads the almanac CLI configuration from a TOML file.
//
// Example file:
//
//	log_level    = "debug"
//	log_format   = "json"
//	trace        = true
//	strict_chain = true
//
// Flags given on the command line override file values.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig indicates an unknown key or an out-of-range value.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log formats accepted by LogFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI settings.
type Config struct {
	// LogLevel is a logrus level name: panic, fatal, error, warn, info,
	// debug or trace.
	LogLevel string `toml:"log_level"`
	// LogFormat selects the logrus formatter: "text" or "json".
	LogFormat string `toml:"log_format"`
	// Trace logs the set after every stage.
	Trace bool `toml:"trace"`
	// StrictChain turns a broken category chain into an error instead of
	// a warning.
	StrictChain bool `toml:"strict_chain"`
	// Watch re-solves whenever the input file is written.
	Watch bool `toml:"watch"`
}

// Default returns the built-in settings: warn level, text format, no
// tracing, lenient chain check, no watching.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: FormatText,
	}
}

// Load reads path over Default(). Keys the file sets replace defaults;
// unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s in %s", ErrInvalidConfig, strings.Join(keys, ", "), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "panic", "fatal", "error", "warn", "warning", "info", "debug", "trace":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
