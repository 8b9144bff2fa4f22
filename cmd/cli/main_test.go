package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_RegistersManifestTransforms(t *testing.T) {
	t.Parallel()

	manifest := `
	transform "unzip_jars" {
	  action = "Unzip"
	  from { format = "jar" }
	  to { format = "classes" }
	}
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "transforms.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(manifest), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"--log-level", "error", tempDir})

	require.NoError(t, err)
	require.Contains(t, out.String(), "1 transform(s) registered")
}

func TestRun_SurfacesParseErrors(t *testing.T) {
	t.Parallel()

	invalidHCL := `
	transform "broken" {
	  from {
	// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "transforms.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"--log-level", "error", tempDir})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
