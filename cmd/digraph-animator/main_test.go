package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	return path
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := writeFile(t, "graph.json", `[{"Node": {"id": "A"}}, {"ref": "A", "Edge": {"": "B"}}]`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"-summary", input})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "nodes: 2 (1 implicit)")
	require.Contains(t, errOut.String(), "Animation finished.")
}

func TestRun_AnimationError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The extension declares a version outside the default "=1" range.
	input := writeFile(t, "graph.json", `[{"Extension": {"": "ext1", "version": "2"}}]`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{input})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported version")
	require.Empty(t, out.String(), "no partial model should be written")
}

func TestRun_ConfigRelaxesRules(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := writeFile(t, "graph.json", `[{"Extension": {"": "ext1", "version": "2"}}]`)
	cfg := writeFile(t, "animator.hcl", `compatibility = { Extension = "^2" }`)
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-config", cfg, input})

	// --- Assert ---
	require.NoError(t, err)
	require.JSONEq(t, `[{"Extension": {"": "ext1", "version": "2"}}]`, out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
