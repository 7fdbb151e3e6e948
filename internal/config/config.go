package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/swork/digraph-animator/internal/compat"
	"github.com/swork/digraph-animator/internal/ctxlog"
)

// File is the decoded content of a configuration file. Unset attributes are
// left empty.
type File struct {
	LogLevel      string            `hcl:"log_level,optional"`
	LogFormat     string            `hcl:"log_format,optional"`
	InputFormat   string            `hcl:"input_format,optional"`
	Compatibility map[string]string `hcl:"compatibility,optional"`
}

// Rules returns the built-in compatibility rules with the file's overrides
// applied.
func (f *File) Rules() compat.Rules {
	return compat.DefaultRules().Merge(compat.Rules(f.Compatibility))
}

// Load reads and decodes the configuration file at path, evaluating
// expressions against the process environment.
func Load(ctx context.Context, path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(ctx, src, path, os.Environ())
}

// Parse decodes configuration source. filename is used in diagnostics and
// environ, in os.Environ form, backs the env variable.
func Parse(ctx context.Context, src []byte, filename string, environ []string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing config file.", "file", filename)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}

	var f File
	diags = gohcl.DecodeBody(hclFile.Body, EvalContext(environ), &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}

	if err := compat.Rules(f.Compatibility).Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}

	logger.Debug("Config file decoded.",
		"file", filename,
		"log_level", f.LogLevel,
		"log_format", f.LogFormat,
		"input_format", f.InputFormat,
		"compatibility_rules", len(f.Compatibility),
	)
	return &f, nil
}

// EvalContext exposes environ to expressions as the env map.
func EvalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
