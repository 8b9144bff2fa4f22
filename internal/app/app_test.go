package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/transmute/internal/app"
)

func writeManifest(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transforms.hcl"), []byte(source), 0o644))
	return dir
}

func TestApp_RunLoadsManifestsAndReports(t *testing.T) {
	t.Parallel()

	dir := writeManifest(t, `
	transform "unzip_jars" {
	  action = "Unzip"
	  from { format = "jar" }
	  to { format = "classes" }
	}
	`)

	var out bytes.Buffer
	application := app.NewApp(&out, &app.Config{
		ManifestsPath: dir,
		LogFormat:     "text",
		LogLevel:      "error",
	})

	require.NoError(t, application.Run(context.Background()))

	require.Equal(t, 1, application.Registry().Len())
	require.Contains(t, out.String(), "1 transform(s) registered")
	require.Contains(t, out.String(), "Unzip")

	// The built-in core actions are available without explicit modules.
	_, ok := application.Catalog().ByName("Minify")
	require.True(t, ok)
}

func TestApp_RunSurfacesConfigurationErrors(t *testing.T) {
	t.Parallel()

	dir := writeManifest(t, `
	transform "broken" {
	  action = "Unzip"
	  from { format = "jar" }
	}
	`)

	var out bytes.Buffer
	application := app.NewApp(&out, &app.Config{
		ManifestsPath: dir,
		LogFormat:     "text",
		LogLevel:      "error",
	})

	err := application.Run(context.Background())
	require.ErrorContains(t, err, "at least one 'to' attribute must be provided")
	require.Equal(t, 0, application.Registry().Len())
}

func TestApp_RunWithoutManifestsPathReportsEmptyRegistry(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	application := app.NewApp(&out, &app.Config{LogFormat: "text", LogLevel: "error"})

	require.NoError(t, application.Run(context.Background()))
	require.Contains(t, out.String(), "0 transform(s) registered")
}
