package configs

import (
	"errors"
	"fmt"

	"github.com/compose-network/rollups-config/internal/logger"
)

var Values Config

type (
	OutputFormat string

	Config struct {
		LogLevel  string       `mapstructure:"log-level"`
		LogFormat string       `mapstructure:"log-format"`
		Output    OutputFormat `mapstructure:"output"`
	}
)

// Keys of the ambient settings, shared by flags, environment and config file.
const (
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyOutput    = "output"
)

const (
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
)

func (c *Config) Validate() error {
	var errs []error

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log-level: %w", err))
	}
	if c.LogFormat != logger.FormatJSON && c.LogFormat != logger.FormatText {
		errs = append(errs, errors.New("log-format must be either 'json' or 'text'"))
	}
	if c.Output != OutputFormatYAML && c.Output != OutputFormatJSON {
		errs = append(errs, errors.New("output must be either 'yaml' or 'json'"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}
