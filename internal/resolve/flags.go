package resolve

import (
	"github.com/compose-network/rollups-config/configs"
	"github.com/spf13/viper"
)

// flagDef defines a string command-line flag bound to a viper key.
type flagDef struct {
	name         string
	viperKey     string
	defaultValue string
	description  string
}

var stringFlags = []flagDef{
	// Direct values
	{configs.KeyDappAddress, configs.KeyDappAddress, "", "DApp address"},
	{configs.KeyDappDeployBlockHash, configs.KeyDappDeployBlockHash, "", "DApp deploy block hash"},
	{configs.KeyHistoryAddress, configs.KeyHistoryAddress, "", "History contract address"},
	{configs.KeyAuthorityAddress, configs.KeyAuthorityAddress, "", "Authority contract address"},
	{configs.KeyInputBoxAddress, configs.KeyInputBoxAddress, "", "Input Box contract address"},

	// Deployment files
	{configs.KeyDappDeploymentFile, configs.KeyDappDeploymentFile, "", "Path to a file with the deployment json of the dapp"},
	{configs.KeyRollupsDeploymentFile, configs.KeyRollupsDeploymentFile, "", "Path to a file with the deployment json of the rollups"},

	// Rendering
	{configs.KeyOutput, configs.KeyOutput, string(configs.MustDefaults().Output), "Output format of the resolved config (yaml or json)"},
}

func init() {
	if err := declareFlags(stringFlags); err != nil {
		panic(err)
	}
}

// declareFlags declares the flags on CMD and binds each one to its viper key.
func declareFlags(flags []flagDef) error {
	for _, flag := range flags {
		CMD.Flags().String(flag.name, flag.defaultValue, flag.description)
		if err := viper.BindPFlag(flag.viperKey, CMD.Flags().Lookup(flag.name)); err != nil {
			return err
		}
	}
	return nil
}
