package configs

import (
	"github.com/compose-network/rollups-config/internal/blockchain"
	"github.com/spf13/viper"
)

// Keys of the blockchain values. Each one doubles as the flag name, and as the
// environment variable name once upper-cased with '-' replaced by '_'.
const (
	KeyDappAddress           = "dapp-address"
	KeyDappDeployBlockHash   = "dapp-deploy-block-hash"
	KeyHistoryAddress        = "history-address"
	KeyAuthorityAddress      = "authority-address"
	KeyInputBoxAddress       = "input-box-address"
	KeyDappDeploymentFile    = "dapp-deployment-file"
	KeyRollupsDeploymentFile = "rollups-deployment-file"
)

// CollectBlockchainInput gathers the raw blockchain values known to v.
// A key counts as supplied when v reports it set: a changed flag, a non-empty
// environment variable or a config file entry. Flag defaults do not count.
func CollectBlockchainInput(v *viper.Viper) blockchain.Input {
	return blockchain.Input{
		DappAddress:           lookup(v, KeyDappAddress),
		DappDeployBlockHash:   lookup(v, KeyDappDeployBlockHash),
		HistoryAddress:        lookup(v, KeyHistoryAddress),
		AuthorityAddress:      lookup(v, KeyAuthorityAddress),
		InputBoxAddress:       lookup(v, KeyInputBoxAddress),
		DappDeploymentFile:    lookup(v, KeyDappDeploymentFile),
		RollupsDeploymentFile: lookup(v, KeyRollupsDeploymentFile),
	}
}

func lookup(v *viper.Viper, key string) *string {
	if !v.IsSet(key) {
		return nil
	}

	value := v.GetString(key)
	return &value
}
