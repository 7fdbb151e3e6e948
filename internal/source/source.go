package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/swork/digraph-animator/internal/animerr"
	"github.com/swork/digraph-animator/internal/ctxlog"
	"github.com/swork/digraph-animator/internal/fsutil"
	"github.com/swork/digraph-animator/internal/record"
)

// Format names an input encoding.
type Format string

const (
	// Auto picks the format from the file extension, defaulting to JSON.
	Auto Format = ""
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a format name. The empty string means Auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Auto, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown input format %q: must be 'json' or 'yaml'", s)
	}
}

// Detect returns the format implied by path's extension.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// ReadFile reads the records stored at path. A path of "-" reads standard
// input. A directory is searched recursively for JSON and YAML files whose
// arrays are concatenated in lexical path order.
func ReadFile(ctx context.Context, path string, format Format) ([]record.Raw, error) {
	if path == "-" {
		if format == Auto {
			format = JSON
		}
		return Read(ctx, os.Stdin, format)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	if !info.IsDir() {
		return readOne(ctx, path, format)
	}

	files, err := fsutil.FindFilesByExtension(path, ".json", ".yaml", ".yml")
	if err != nil {
		return nil, fmt.Errorf("failed to list input directory: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Discovered input files.", "dir", path, "count", len(files))

	var raws []record.Raw
	for _, file := range files {
		more, err := readOne(ctx, file, format)
		if err != nil {
			return nil, err
		}
		raws = append(raws, more...)
	}
	return raws, nil
}

func readOne(ctx context.Context, path string, format Format) ([]record.Raw, error) {
	if format == Auto {
		format = Detect(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	raws, err := Read(ctx, f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return raws, nil
}

// Read decodes one document holding an array of records.
func Read(ctx context.Context, r io.Reader, format Format) ([]record.Raw, error) {
	var (
		items []any
		err   error
	)
	switch format {
	case JSON, Auto:
		items, err = decodeJSON(r)
	case YAML:
		items, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return nil, err
	}

	raws := make([]record.Raw, 0, len(items))
	for i, v := range items {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, animerr.New(animerr.ErrMalformedRecord, "record must be an object, got %T", v).WithIndex(i)
		}
		raws = append(raws, record.Raw(m))
	}

	ctxlog.FromContext(ctx).Debug("Input decoded.", "format", string(format), "records", len(raws))
	return raws, nil
}

func decodeJSON(r io.Reader) ([]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode JSON input: %w", err)
	}
	if dec.More() {
		return nil, errors.New("failed to decode JSON input: trailing data after the record array")
	}
	return items, nil
}

func decodeYAML(r io.Reader) ([]any, error) {
	var items []any
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode YAML input: %w", err)
	}
	return items, nil
}
