package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField marks a required sidecar field that is absent or null.
	ErrMissingField = errors.New("missing required field")
	// ErrEmptyCatalog indicates the sidecar lists no formats at all.
	ErrEmptyCatalog = errors.New("no formats in catalog")
)

// SchemaError reports sidecar content that does not match the expected
// shape. Path names the offending field, e.g. "formats[3].ext".
type SchemaError struct {
	Path string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid info json at %s: %v", e.Path, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func missing(path string) *SchemaError {
	return &SchemaError{Path: path, Err: ErrMissingField}
}
