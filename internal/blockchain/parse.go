package blockchain

import (
	"encoding"

	"github.com/ethereum/go-ethereum/common"
)

// textValue is a value type whose pointer decodes itself from hex text.
type textValue[T any] interface {
	*T
	encoding.TextUnmarshaler
}

func parseText[T any, PT textValue[T]](s string) (T, error) {
	var v T
	if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ParseAddress parses a 0x-prefixed, 20-byte hex address.
// It accepts exactly what a JSON string decoded into common.Address accepts.
func ParseAddress(s string) (common.Address, error) {
	return parseText[common.Address](s)
}

// ParseHash parses a 0x-prefixed, 32-byte hex hash.
func ParseHash(s string) (common.Hash, error) {
	return parseText[common.Hash](s)
}

// parseOptional parses raw when present, reporting failures against field.
func parseOptional[T any](field string, raw *string, parse func(string) (T, error)) (*T, error) {
	if raw == nil {
		return nil, nil
	}

	v, err := parse(*raw)
	if err != nil {
		return nil, &ParseError{Field: field, Err: err}
	}
	return &v, nil
}
