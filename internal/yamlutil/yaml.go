// Package yamlutil wraps YAML encoding to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrNilWriter      = errors.New("yamlutil: nil writer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// Encode writes v as a YAML document to w.
// Sequences are indented under their key so reports diff cleanly.
func Encode(w io.Writer, v any) error {
	if w == nil {
		return ErrNilWriter
	}
	enc := yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true))
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return enc.Close()
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
