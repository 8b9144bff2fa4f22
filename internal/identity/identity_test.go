package identity_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/transmute/internal/action"
	"github.com/vk/transmute/internal/identity"
)

type unzip struct{}
type minify struct{}

func TestImplementationHash_StableAndCached(t *testing.T) {
	t.Parallel()

	hasher := identity.NewHasher()
	act := &action.Action{Name: "Unzip", Impl: reflect.TypeOf(unzip{}), Boundary: "core"}

	first := hasher.ImplementationHash(act)
	second := hasher.ImplementationHash(act)
	require.NotEmpty(t, first)
	require.Equal(t, first, second)

	// A fresh hasher computes the same digest: the hash is a pure function of
	// the action, not of the cache.
	require.Equal(t, first, identity.NewHasher().ImplementationHash(act))
}

func TestImplementationHash_DistinguishesImplementations(t *testing.T) {
	t.Parallel()

	hasher := identity.NewHasher()
	a := hasher.ImplementationHash(&action.Action{Name: "Unzip", Impl: reflect.TypeOf(unzip{}), Boundary: "core"})
	b := hasher.ImplementationHash(&action.Action{Name: "Minify", Impl: reflect.TypeOf(minify{}), Boundary: "core"})
	require.NotEqual(t, a, b)
}

func TestImplementationHash_SensitiveToBoundary(t *testing.T) {
	t.Parallel()

	hasher := identity.NewHasher()
	core := hasher.ImplementationHash(&action.Action{Name: "Unzip", Impl: reflect.TypeOf(unzip{}), Boundary: "core"})
	plugin := hasher.ImplementationHash(&action.Action{Name: "Unzip", Impl: reflect.TypeOf(unzip{}), Boundary: "plugin:imaging"})
	require.NotEqual(t, core, plugin, "identical code in different isolation boundaries must hash differently")
}
