package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/luthersystems/elpsnum/num"
)

// Config is the contents of a configuration file.  Command line flags
// override any value it sets.
type Config struct {
	// PrintBase is the radix used to print integers and ratios.
	PrintBase int `yaml:"print-base"`
	// PrintRadix causes integers and ratios to print with a radix prefix.
	PrintRadix bool `yaml:"print-radix"`
	// LogLevel is a zerolog level name such as "debug" or "warn".
	LogLevel string `yaml:"log-level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		PrintBase: 10,
		LogLevel:  zerolog.LevelWarnValue,
	}
}

// LoadConfig reads the configuration file at path.  Fields missing from
// the file keep their default values and unknown fields are an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	config := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return config, nil
}

// Validate checks that the values of config are usable.
func (config *Config) Validate() error {
	if config.PrintBase < 2 || config.PrintBase > 36 {
		return fmt.Errorf("print-base %d is not between 2 and 36", config.PrintBase)
	}
	if _, err := zerolog.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	return nil
}

// PrintConfig returns the number printing configuration.
func (config *Config) PrintConfig() *num.PrintConfig {
	return num.NewPrintConfig(num.WithBase(config.PrintBase), num.WithRadix(config.PrintRadix))
}

// Logger returns a console logger writing to w at the configured level.
func (config *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
