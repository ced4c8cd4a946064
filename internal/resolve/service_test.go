package resolve

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/compose-network/rollups-config/configs"
	"github.com/compose-network/rollups-config/internal/blockchain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	dappAddressHex = "0x70ac08179605AF2D9e75782b8DEcDD3c22aA4D0C"
	blockHashHex   = "0x8f1c6ab1b6d1e8d3d1f1f5a0e1e0c3b1a9d7a3e4c4b6f8e2d1c0b9a8f7e6d5c4"

	rollupsDeploymentJSON = `{
		"contracts": {
			"History": {"address": "0xb6Eb78277C8a96Fb3f55BABef25eD0Bc5E5c95Fb"},
			"Authority": {"address": "0xf3D8ce181a502B54512908a32780eaa9183Ef31a"},
			"InputBox": {"address": "0x10dc33852b996A4C8A391d6Ed224FD89A3aD1ceE"}
		}
	}`
)

func expectedView() resolvedConfig {
	return resolvedConfig{
		DappAddress:         common.HexToAddress(dappAddressHex).Hex(),
		DappDeployBlockHash: blockHashHex,
		HistoryAddress:      common.HexToAddress("0xb6Eb78277C8a96Fb3f55BABef25eD0Bc5E5c95Fb").Hex(),
		AuthorityAddress:    common.HexToAddress("0xf3D8ce181a502B54512908a32780eaa9183Ef31a").Hex(),
		InputBoxAddress:     common.HexToAddress("0x10dc33852b996A4C8A391d6Ed224FD89A3aD1ceE").Hex(),
	}
}

func newViper(t *testing.T) *viper.Viper {
	t.Helper()

	rollupsFile := filepath.Join(t.TempDir(), "rollups.json")
	require.NoError(t, os.WriteFile(rollupsFile, []byte(rollupsDeploymentJSON), 0644))

	v := viper.New()
	v.Set(configs.KeyDappAddress, dappAddressHex)
	v.Set(configs.KeyDappDeployBlockHash, blockHashHex)
	v.Set(configs.KeyRollupsDeploymentFile, rollupsFile)
	return v
}

func TestRun_YAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(newViper(t), configs.OutputFormatYAML, &out))

	var got resolvedConfig
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, expectedView(), got)
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(newViper(t), configs.OutputFormatJSON, &out))

	var got resolvedConfig
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, expectedView(), got)
}

func TestRun_ResolutionError(t *testing.T) {
	v := newViper(t)
	v.Set(configs.KeyDappDeploymentFile, filepath.Join(t.TempDir(), "missing.json"))

	var out bytes.Buffer
	err := run(v, configs.OutputFormatYAML, &out)

	var readErr *blockchain.ReadFileError
	require.ErrorAs(t, err, &readErr)
	assert.Empty(t, out.String())
}

func TestRun_MissingConfig(t *testing.T) {
	var out bytes.Buffer
	err := run(viper.New(), configs.OutputFormatYAML, &out)

	var missingErr *blockchain.MissingConfigError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, blockchain.FieldDappAddress, missingErr.Name)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	var out bytes.Buffer
	err := render(&out, "toml", &blockchain.Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "toml")
}

func TestCMD_FlagsBound(t *testing.T) {
	for _, flag := range stringFlags {
		assert.NotNil(t, CMD.Flags().Lookup(flag.name), flag.name)
	}
	assert.Equal(t, "yaml", CMD.Flags().Lookup(configs.KeyOutput).DefValue)
}
