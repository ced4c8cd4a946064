package filesystem

import "errors"

var (
	// ErrOpenFile is wrapped by every error caused by a file that could not be opened or read.
	ErrOpenFile = errors.New("failed to open file")
	// ErrDecodeJSON is wrapped by every error caused by file contents that are not the expected JSON.
	ErrDecodeJSON = errors.New("failed to decode JSON")
)

type (
	Reader interface {
		ReadJSON(path string, target any) error
	}
)
