// Package render writes evaluated symbols in text, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("render: unknown output format")

// Result is one evaluated symbol.
type Result struct {
	Symbol string    `json:"symbol" yaml:"symbol"`
	Args   []float64 `json:"args"   yaml:"args"`
	Method string    `json:"method" yaml:"method"`
	Value  float64   `json:"value"  yaml:"value"`
	Label  string    `json:"-"      yaml:"-"`
}

// Formats lists the accepted format names.
var Formats = []string{"text", "json", "yaml"}

// CheckFormat reports whether format is one Write accepts ("" means text).
func CheckFormat(format string) error {
	switch format {
	case "text", "", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Write encodes r to w in the given format.
func Write(w io.Writer, format string, r Result) error {
	switch format {
	case "text", "":
		_, err := fmt.Fprintf(w, "%s = %s\n", r.Label, strconv.FormatFloat(r.Value, 'g', 17, 64))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
