package blockchain

import "fmt"

type (
	// ParseError reports a direct value that is not a valid address or hash.
	ParseError struct {
		Field string
		Err   error
	}

	// JSONReadError reports a deployment file whose contents could not be decoded.
	JSONReadError struct {
		Path string
		Err  error
	}

	// ReadFileError reports a deployment file that could not be opened.
	ReadFileError struct {
		Path string
		Err  error
	}

	// MissingConfigError reports the first required field left unset after merging.
	MissingConfigError struct {
		Name string
	}
)

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *JSONReadError) Error() string {
	return fmt.Sprintf("json read error (%s): %v", e.Path, e.Err)
}

func (e *JSONReadError) Unwrap() error { return e.Err }

func (e *ReadFileError) Error() string {
	return fmt.Sprintf("read file error (%s): %v", e.Path, e.Err)
}

func (e *ReadFileError) Unwrap() error { return e.Err }

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Name)
}
