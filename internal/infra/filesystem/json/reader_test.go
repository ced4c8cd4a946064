package json

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/compose-network/rollups-config/internal/infra/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deployment.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReader_ReadJSON(t *testing.T) {
	type target struct {
		Address string `json:"address"`
	}

	tests := []struct {
		name    string
		content string
		want    target
		wantErr error
	}{
		{
			name:    "object",
			content: `{"address": "0x01"}`,
			want:    target{Address: "0x01"},
		},
		{
			name:    "trailing whitespace",
			content: "{\"address\": \"0x01\"}\n\n  \t",
			want:    target{Address: "0x01"},
		},
		{
			name:    "unknown keys ignored",
			content: `{"address": "0x01", "abi": []}`,
			want:    target{Address: "0x01"},
		},
		{
			name:    "empty file",
			content: "",
			wantErr: filesystem.ErrDecodeJSON,
		},
		{
			name:    "malformed",
			content: `{"address": `,
			wantErr: filesystem.ErrDecodeJSON,
		},
		{
			name:    "trailing value",
			content: `{"address": "0x01"} {}`,
			wantErr: filesystem.ErrDecodeJSON,
		},
		{
			name:    "wrong type",
			content: `{"address": 1}`,
			wantErr: filesystem.ErrDecodeJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			var got target
			err := NewReader().ReadJSON(path, &got)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, filesystem.ErrOpenFile)
				assert.Contains(t, err.Error(), path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReader_ReadJSON_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	var got map[string]any
	err := NewReader().ReadJSON(path, &got)

	require.ErrorIs(t, err, filesystem.ErrOpenFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, filesystem.ErrDecodeJSON)
	assert.Contains(t, err.Error(), path)
}
