package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/compose-network/rollups-config/configs"
	"github.com/compose-network/rollups-config/internal/logger"
	"github.com/compose-network/rollups-config/internal/resolve"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName        = "rollups-config"
	defaultEnvFile = ".env"
)

// newRootCmd creates the root command and binds its persistent flags to the global viper.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               appName,
		Short:             "CLI for resolving the blockchain configuration of a rollups node",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	defaults := configs.MustDefaults()

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file (default: config.yaml next to the binary, in . or ./configs)")
	flags.String("env-file", defaultEnvFile, "Path to a .env file loaded before reading the environment")
	flags.String(configs.KeyLogLevel, defaults.LogLevel, "Log level (debug, info, warn, error)")
	flags.String(configs.KeyLogFormat, defaults.LogFormat, "Log format (json or text)")

	for _, key := range []string{configs.KeyLogLevel, configs.KeyLogFormat} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	return rootCmd
}

// setup loads the environment and config file into viper, decodes and validates
// configs.Values and initialises the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := loadEnvFile(cmd); err != nil {
		return err
	}

	if err := configs.ApplyDefaults(viper.GetViper()); err != nil {
		return err
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := readConfigFile(cmd); err != nil {
		return err
	}

	if err := viper.Unmarshal(&configs.Values); err != nil {
		return fmt.Errorf("unable to decode application config: %w", err)
	}

	if err := configs.Values.Validate(); err != nil {
		return err
	}

	level, err := logger.ParseLevel(configs.Values.LogLevel)
	if err != nil {
		return err
	}
	logger.Initialize(level, configs.Values.LogFormat)

	if used := viper.ConfigFileUsed(); used != "" {
		slog.With("config_file", used).Debug("config file loaded")
	} else {
		slog.Debug("no config file found, will rely on flags, environment and defaults")
	}

	return nil
}

// loadEnvFile loads variables from the --env-file, or from .env when present.
// Variables already set in the environment are kept.
func loadEnvFile(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if !cmd.Flags().Changed("env-file") {
		if _, err := os.Stat(defaultEnvFile); err != nil {
			return nil
		}
		envFile = defaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load env file '%s': %w", envFile, err)
	}
	return nil
}

// readConfigFile reads the --config file, or looks for an optional config.yaml.
func readConfigFile(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file '%s': %w", path, err)
		}
		return nil
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if execPath, err := os.Executable(); err == nil {
		viper.AddConfigPath(filepath.Dir(execPath))
	}
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	// Flags and environment can provide all necessary configuration
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Join(err, errors.New("error reading config file"))
		}
	}

	return nil
}

func main() {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(resolve.CMD)

	if err := rootCmd.Execute(); err != nil {
		slog.With("err", err.Error()).Error("failed to execute root command")
		os.Exit(1)
	}
}
