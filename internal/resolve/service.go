package resolve

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/compose-network/rollups-config/configs"
	"github.com/compose-network/rollups-config/internal/blockchain"
	fsjson "github.com/compose-network/rollups-config/internal/infra/filesystem/json"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// resolvedConfig is the rendered form of blockchain.Config
type resolvedConfig struct {
	DappAddress         string `json:"dapp-address" yaml:"dapp-address"`
	DappDeployBlockHash string `json:"dapp-deploy-block-hash" yaml:"dapp-deploy-block-hash"`
	HistoryAddress      string `json:"history-address" yaml:"history-address"`
	AuthorityAddress    string `json:"authority-address" yaml:"authority-address"`
	InputBoxAddress     string `json:"input-box-address" yaml:"input-box-address"`
}

func run(v *viper.Viper, output configs.OutputFormat, w io.Writer) error {
	input := configs.CollectBlockchainInput(v)

	config, err := blockchain.NewResolver(fsjson.NewReader()).Resolve(input)
	if err != nil {
		return err
	}

	return render(w, output, config)
}

func render(w io.Writer, output configs.OutputFormat, config *blockchain.Config) error {
	view := resolvedConfig{
		DappAddress:         config.DappAddress.Hex(),
		DappDeployBlockHash: config.DappDeployBlockHash.Hex(),
		HistoryAddress:      config.HistoryAddress.Hex(),
		AuthorityAddress:    config.AuthorityAddress.Hex(),
		InputBoxAddress:     config.InputBoxAddress.Hex(),
	}

	switch output {
	case configs.OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(view); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
	case configs.OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(view); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format '%s'", output)
	}

	return nil
}
