package json

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/compose-network/rollups-config/internal/infra/filesystem"
)

// Reader handles file reading operations
type Reader struct{}

// NewReader creates a new filesystem reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadJSON opens the file at path and decodes exactly one JSON value from it into target.
// Errors wrap filesystem.ErrOpenFile or filesystem.ErrDecodeJSON.
func (r *Reader) ReadJSON(path string, target any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", filesystem.ErrOpenFile, path, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(bufio.NewReader(file))
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w from '%s': %w", filesystem.ErrDecodeJSON, path, err)
	}

	// only whitespace may follow the value
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after JSON value")
		}
		return fmt.Errorf("%w from '%s': %w", filesystem.ErrDecodeJSON, path, err)
	}

	return nil
}
