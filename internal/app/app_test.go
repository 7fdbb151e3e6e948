package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swork/digraph-animator/internal/animerr"
	"github.com/swork/digraph-animator/internal/compat"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "minimal", cfg: Config{InputPath: "in.json"}},
		{name: "missing input", cfg: Config{}, wantErr: "InputPath is a required"},
		{name: "bad input format", cfg: Config{InputPath: "x", InputFormat: "xml"}, wantErr: "unknown input format"},
		{name: "bad output format", cfg: Config{InputPath: "x", OutputFormat: "csv"}, wantErr: "output"},
		{name: "bad level", cfg: Config{InputPath: "x", LogLevel: "loud"}, wantErr: "invalid log level"},
		{name: "bad format", cfg: Config{InputPath: "x", LogFormat: "xml"}, wantErr: "invalid log format"},
		{name: "bad rule", cfg: Config{InputPath: "x", Rules: compat.Rules{"Node": "???"}}, wantErr: "invalid range"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, compat.DefaultRules(), cfg.Rules)
		})
	}
}

func TestApp_Run(t *testing.T) {
	input := `[
		{"Node": {"id": "A"}},
		{"Edge": {"id": "e1", "": "B", "directed": true}, "ref": "A"}
	]`

	t.Run("renders the model", func(t *testing.T) {
		cfg, err := NewConfig(Config{InputPath: writeInput(t, "graph.json", input)})
		require.NoError(t, err)
		a, out, logs := SetupAppTest(t, cfg)

		require.NoError(t, a.Run(context.Background()))
		require.NoError(t, a.Close(context.Background()))

		assert.JSONEq(t, `[
			{"id": "A", "Node": {}},
			{"id": "e1", "ref": "A", "Edge": {"": "B", "directed": true}},
			{"id": "B", "Node": {}}
		]`, out.String())
		assert.Contains(t, logs.String(), "Animation finished.")
		assert.Contains(t, logs.String(), "Synthesized implicit node.")
	})

	t.Run("summary and tracing", func(t *testing.T) {
		cfg, err := NewConfig(Config{
			InputPath: writeInput(t, "graph.json", input),
			Summary:   true,
			Trace:     true,
		})
		require.NoError(t, err)
		a, out, logs := SetupAppTest(t, cfg)

		require.NoError(t, a.Run(context.Background()))
		require.NoError(t, a.Close(context.Background()))

		assert.Equal(t, "items: 3\nnodes: 2 (1 implicit)\nedges: 1\nextensions: 0\ncontainers: 0\nother: 0\n", out.String())
		assert.Contains(t, logs.String(), "span=pass.generic")
		assert.Contains(t, logs.String(), "span=animate")
	})

	t.Run("yaml in, file out", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "out.yaml")
		cfg, err := NewConfig(Config{
			InputPath:    writeInput(t, "graph.yaml", "- ref: A\n  Edge: {\"\": B}\n"),
			OutputPath:   outPath,
			OutputFormat: "yaml",
		})
		require.NoError(t, err)
		a, out, _ := SetupAppTest(t, cfg)

		require.NoError(t, a.Run(context.Background()))

		assert.Empty(t, out.String())
		written, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(written), "ref: A")
		assert.Contains(t, string(written), "directed: false")
	})

	t.Run("file out replaces existing content", func(t *testing.T) {
		outPath := writeInput(t, "out.txt", "stale content that is longer than the summary output written over it\n")
		cfg, err := NewConfig(Config{
			InputPath:  writeInput(t, "graph.json", input),
			OutputPath: outPath,
			Summary:    true,
		})
		require.NoError(t, err)
		a, _, _ := SetupAppTest(t, cfg)

		require.NoError(t, a.Run(context.Background()))

		written, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, "items: 3\nnodes: 2 (1 implicit)\nedges: 1\nextensions: 0\ncontainers: 0\nother: 0\n", string(written))
	})

	t.Run("unwritable output path", func(t *testing.T) {
		cfg, err := NewConfig(Config{
			InputPath:  writeInput(t, "graph.json", input),
			OutputPath: filepath.Join(t.TempDir(), "missing", "out.json"),
		})
		require.NoError(t, err)
		a, out, _ := SetupAppTest(t, cfg)

		assert.ErrorContains(t, a.Run(context.Background()), "failed to create output")
		assert.Empty(t, out.String())
	})

	t.Run("animation errors are wrapped", func(t *testing.T) {
		cfg, err := NewConfig(Config{InputPath: writeInput(t, "bad.json", `[{"Edge": {"": "X"}}]`)})
		require.NoError(t, err)
		a, _, _ := SetupAppTest(t, cfg)

		err = a.Run(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, animerr.ErrMissingSource)
		assert.Contains(t, err.Error(), "animation failed")
	})

	t.Run("missing input", func(t *testing.T) {
		cfg, err := NewConfig(Config{InputPath: filepath.Join(t.TempDir(), "nope.json")})
		require.NoError(t, err)
		a, _, _ := SetupAppTest(t, cfg)

		assert.ErrorContains(t, a.Run(context.Background()), "failed to read input")
	})
}

func TestNewLogger(t *testing.T) {
	var buf SafeBuffer
	logger := newLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	logger = newLogger("nonsense", "text", &buf)
	assert.True(t, logger.Enabled(context.Background(), 0))
	assert.False(t, logger.Enabled(context.Background(), -4))
}
