package blockchain

import (
	"errors"
	"log/slog"

	"github.com/compose-network/rollups-config/internal/infra/filesystem"
	"github.com/compose-network/rollups-config/internal/logger"
)

// Resolver merges direct values with deployment descriptor files into a Config
type Resolver struct {
	reader filesystem.Reader
	logger *slog.Logger
}

// NewResolver creates a new resolver reading deployment files through reader
func NewResolver(reader filesystem.Reader) *Resolver {
	return &Resolver{
		reader: reader,
		logger: logger.Named("blockchain_resolver"),
	}
}

// Resolve builds a Config from input. Direct values always take precedence over
// descriptor values. A referenced descriptor is read even when every field it could
// supply is already set, so a broken file fails resolution regardless.
func (r *Resolver) Resolve(input Input) (*Config, error) {
	dappAddress, err := parseOptional(FieldDappAddress, input.DappAddress, ParseAddress)
	if err != nil {
		return nil, err
	}
	dappDeployBlockHash, err := parseOptional(FieldDappDeployBlockHash, input.DappDeployBlockHash, ParseHash)
	if err != nil {
		return nil, err
	}
	historyAddress, err := parseOptional(FieldHistoryAddress, input.HistoryAddress, ParseAddress)
	if err != nil {
		return nil, err
	}
	authorityAddress, err := parseOptional(FieldAuthorityAddress, input.AuthorityAddress, ParseAddress)
	if err != nil {
		return nil, err
	}
	inputBoxAddress, err := parseOptional(FieldInputBoxAddress, input.InputBoxAddress, ParseAddress)
	if err != nil {
		return nil, err
	}

	if input.DappDeploymentFile != nil {
		var dapp ContractDeployment
		if err := r.read(*input.DappDeploymentFile, &dapp); err != nil {
			return nil, err
		}

		dappAddress = fallback(r.logger, FieldDappAddress, dappAddress, dapp.Address)
		dappDeployBlockHash = fallback(r.logger, FieldDappDeployBlockHash, dappDeployBlockHash, dapp.BlockHash)
	}

	if input.RollupsDeploymentFile != nil {
		var rollups RollupsDeployment
		if err := r.read(*input.RollupsDeploymentFile, &rollups); err != nil {
			return nil, err
		}

		contracts := rollups.Contracts
		historyAddress = fallback(r.logger, FieldHistoryAddress, historyAddress, contracts.History.address())
		authorityAddress = fallback(r.logger, FieldAuthorityAddress, authorityAddress, contracts.Authority.address())
		inputBoxAddress = fallback(r.logger, FieldInputBoxAddress, inputBoxAddress, contracts.InputBox.address())
	}

	required := []struct {
		name string
		set  bool
	}{
		{FieldDappAddress, dappAddress != nil},
		{FieldDappDeployBlockHash, dappDeployBlockHash != nil},
		{FieldHistoryAddress, historyAddress != nil},
		{FieldAuthorityAddress, authorityAddress != nil},
		{FieldInputBoxAddress, inputBoxAddress != nil},
	}
	for _, field := range required {
		if !field.set {
			return nil, &MissingConfigError{Name: field.name}
		}
	}

	return &Config{
		DappAddress:         *dappAddress,
		DappDeployBlockHash: *dappDeployBlockHash,
		HistoryAddress:      *historyAddress,
		AuthorityAddress:    *authorityAddress,
		InputBoxAddress:     *inputBoxAddress,
	}, nil
}

// read decodes the deployment file at path into target, mapping reader failures
// to ReadFileError and JSONReadError.
func (r *Resolver) read(path string, target any) error {
	r.logger.With("file_path", path).Debug("reading deployment file")

	err := r.reader.ReadJSON(path, target)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, filesystem.ErrOpenFile):
		return &ReadFileError{Path: path, Err: err}
	default:
		return &JSONReadError{Path: path, Err: err}
	}
}

// fallback keeps current when set, otherwise takes the descriptor value.
func fallback[T any](logger *slog.Logger, field string, current, fromFile *T) *T {
	if current != nil {
		return current
	}
	if fromFile != nil {
		logger.With("field", field).Debug("value taken from deployment file")
	}
	return fromFile
}
