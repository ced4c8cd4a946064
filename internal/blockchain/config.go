// Package blockchain resolves the contract addresses and the deployment block hash
// a rollups node needs, merging direct values with the dapp and rollups deployment
// descriptor files.
package blockchain

import "github.com/ethereum/go-ethereum/common"

// Names of the resolved fields, as reported by ParseError and MissingConfigError.
const (
	FieldDappAddress         = "dapp_address"
	FieldDappDeployBlockHash = "dapp_deploy_block_hash"
	FieldHistoryAddress      = "history_address"
	FieldAuthorityAddress    = "authority_address"
	FieldInputBoxAddress     = "input_box_address"
)

type (
	// Input holds the raw values collected from flags, environment and config file.
	// A nil field was not supplied.
	Input struct {
		DappAddress         *string
		DappDeployBlockHash *string
		HistoryAddress      *string
		AuthorityAddress    *string
		InputBoxAddress     *string

		// DappDeploymentFile points to a ContractDeployment JSON document
		DappDeploymentFile *string
		// RollupsDeploymentFile points to a RollupsDeployment JSON document
		RollupsDeploymentFile *string
	}

	// Config is the fully resolved blockchain configuration.
	Config struct {
		DappAddress         common.Address
		DappDeployBlockHash common.Hash
		HistoryAddress      common.Address
		AuthorityAddress    common.Address
		InputBoxAddress     common.Address
	}
)
