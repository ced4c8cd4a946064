package configs

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

//go:embed config.example.yaml
var exampleConfigYAML string

// loadDefaults parses the embedded example once. Blockchain keys are commented
// out there and never get defaults.
var loadDefaults = sync.OnceValues(func() (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(exampleConfigYAML)); err != nil {
		return Config{}, fmt.Errorf("failed to read embedded config.example.yaml: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode embedded config.example.yaml: %w", err)
	}
	return cfg, nil
})

// Defaults returns the ambient settings of the embedded config.example.yaml.
func Defaults() (Config, error) {
	return loadDefaults()
}

// MustDefaults returns embedded defaults or panics if they cannot be loaded.
func MustDefaults() Config {
	cfg, err := Defaults()
	if err != nil {
		panic(err)
	}
	return cfg
}

// ApplyDefaults registers the embedded defaults on v, below flags, environment and config file.
func ApplyDefaults(v *viper.Viper) error {
	cfg, err := Defaults()
	if err != nil {
		return err
	}

	for key, value := range map[string]string{
		KeyLogLevel:  cfg.LogLevel,
		KeyLogFormat: cfg.LogFormat,
		KeyOutput:    string(cfg.Output),
	} {
		v.SetDefault(key, value)
	}
	return nil
}
