package resolve

import (
	"fmt"
	"log/slog"

	"github.com/compose-network/rollups-config/configs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var CMD = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the dapp and rollups contract configuration",
	Long: `Resolve the dapp address, the dapp deploy block hash and the History, Authority
and InputBox contract addresses. Values given as flags, environment variables or
config file entries take precedence over the deployment files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("starting resolve command", slog.Any("config", configs.Values))

		if err := run(viper.GetViper(), configs.Values.Output, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("error occurred resolving blockchain config: %w", err)
		}

		slog.Info("blockchain config resolved successfully")

		return nil
	},
}
