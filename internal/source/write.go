package source

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/swork/digraph-animator/internal/record"
)

// Write encodes raws as one document in format. Auto writes JSON.
func Write(w io.Writer, raws []record.Raw, format Format) error {
	if raws == nil {
		raws = []record.Raw{}
	}
	switch format {
	case JSON, Auto:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(raws); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(raws); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
