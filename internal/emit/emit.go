// Package emit streams projected records to an output writer, either as
// newline-delimited JSON or as a YAML document stream.
package emit

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/confsift/confsift/internal/project"
	"github.com/confsift/confsift/internal/scanner"
)

// Format selects the output encoding for projected records.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format spelled as text. The empty string means
// the default, JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported output format %q", s)
}

// Envelope wraps one record with its conf kind so stream consumers can
// route records without sniffing fields.
type Envelope struct {
	Kind   project.Kind   `json:"kind" yaml:"kind"`
	Record project.Record `json:"record" yaml:"record"`
}

// Write streams every record in results to w: one JSON object per line,
// or one YAML document per record. Files that failed to parse contribute
// nothing here; the caller reports them separately.
func Write(w io.Writer, format Format, results []scanner.FileResult) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		for _, fr := range results {
			for _, rec := range fr.Records {
				if err := enc.Encode(Envelope{Kind: fr.Kind, Record: rec}); err != nil {
					return fmt.Errorf("encode record from %s: %w", fr.Path, err)
				}
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		for _, fr := range results {
			for _, rec := range fr.Records {
				if err := enc.Encode(Envelope{Kind: fr.Kind, Record: rec}); err != nil {
					return fmt.Errorf("encode record from %s: %w", fr.Path, err)
				}
			}
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
