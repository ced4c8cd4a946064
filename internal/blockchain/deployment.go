package blockchain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type (
	// ContractDeployment describes where a single contract was deployed.
	// It is the schema of the dapp deployment file and of each rollups contract entry.
	ContractDeployment struct {
		Address   *common.Address `json:"address"`
		BlockHash *common.Hash    `json:"blockHash"`
	}

	// RollupsContracts is the shared contract set of the rollups framework.
	RollupsContracts struct {
		History   *ContractDeployment `json:"History"`
		Authority *ContractDeployment `json:"Authority"`
		InputBox  *ContractDeployment `json:"InputBox"`
	}

	// RollupsDeployment is the schema of the rollups deployment file.
	// NOTE: only the contracts used here are modelled; other keys are ignored.
	RollupsDeployment struct {
		Contracts RollupsContracts `json:"contracts"`
	}
)

var errMissingContracts = errors.New(`missing field "contracts"`)

func (c *ContractDeployment) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}

	*c = ContractDeployment{}
	if err := decodeField(fields, "address", &c.Address); err != nil {
		return err
	}
	return decodeField(fields, "blockHash", &c.BlockHash)
}

func (c *RollupsContracts) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}

	*c = RollupsContracts{}
	if err := decodeField(fields, "History", &c.History); err != nil {
		return err
	}
	if err := decodeField(fields, "Authority", &c.Authority); err != nil {
		return err
	}
	return decodeField(fields, "InputBox", &c.InputBox)
}

// UnmarshalJSON requires the contracts object to be present.
func (d *RollupsDeployment) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}

	var contracts *RollupsContracts
	if err := decodeField(fields, "contracts", &contracts); err != nil {
		return err
	}
	if contracts == nil {
		return errMissingContracts
	}

	d.Contracts = *contracts
	return nil
}

// objectFields splits a JSON object into its raw members. null is rejected.
func objectFields(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("expected a JSON object, got null")
	}
	return fields, nil
}

// decodeField decodes the member named exactly key, leaving target untouched when absent.
// Keys are case-sensitive: "history" is not "History".
func decodeField(fields map[string]json.RawMessage, key string, target any) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

// address returns the deployed address, or nil when the entry or its address is absent.
func (c *ContractDeployment) address() *common.Address {
	if c == nil {
		return nil
	}
	return c.Address
}
