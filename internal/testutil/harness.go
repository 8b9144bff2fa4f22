// Package testutil provides shared fixtures for exercising the registration
// pipeline in tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/transmute/internal/action"
	"github.com/vk/transmute/internal/hcl"
	"github.com/vk/transmute/internal/registry"
)

// StubTransform is a stand-in transform implementation type.
type StubTransform struct{}

// OtherTransform is a second, distinct stand-in implementation type.
type OtherTransform struct{}

// StubParams is a typed parameter object bound to the Stub action.
type StubParams struct {
	Mode    string   `transform:"mode,input"`
	Sources []string `transform:"sources,input_files"`
	Ignored int
}

// NewCatalog returns a catalog with the stub actions registered: "Stub"
// (with StubParams bound to it) and "Other".
func NewCatalog(tb testing.TB) *action.Catalog {
	tb.Helper()
	catalog := action.NewCatalog()
	catalog.Register(&action.Action{Name: "Stub", Impl: reflect.TypeOf(StubTransform{})})
	catalog.Register(&action.Action{Name: "Other", Impl: reflect.TypeOf(OtherTransform{})})
	require.NoError(tb, catalog.BindParameters(reflect.TypeOf(StubParams{}), "Stub"))
	return catalog
}

// MustAction looks up a catalog action that the fixture is known to contain.
func MustAction(tb testing.TB, catalog *action.Catalog, name string) *action.Action {
	tb.Helper()
	act, ok := catalog.ByName(name)
	require.True(tb, ok, "fixture action %q missing from catalog", name)
	return act
}

// LoadManifestString writes the given manifest source to a temporary
// directory and loads it through the manifest loader.
func LoadManifestString(tb testing.TB, reg *registry.Registry, catalog *action.Catalog, source string) error {
	tb.Helper()
	dir := tb.TempDir()
	path := filepath.Join(dir, "manifest.hcl")
	require.NoError(tb, os.WriteFile(path, []byte(source), 0o644))
	return hcl.NewLoader().LoadTransformsRecursively(context.Background(), reg, catalog, dir)
}
