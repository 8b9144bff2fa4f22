package action_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/transmute/internal/action"
)

type resize struct{}
type recompress struct{}

type resizeParams struct {
	Width int `transform:"width,input"`
}

func TestCatalog_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	catalog := action.NewCatalog()
	catalog.Register(&action.Action{Name: "Resize", Impl: reflect.TypeOf(resize{})})

	act, ok := catalog.ByName("Resize")
	require.True(t, ok)
	require.Equal(t, "Resize", act.Name)
	require.Equal(t, action.DefaultBoundary, act.Boundary, "empty boundary defaults to core")

	_, ok = catalog.ByName("Missing")
	require.False(t, ok)
}

func TestCatalog_DuplicateNamePanics(t *testing.T) {
	t.Parallel()

	catalog := action.NewCatalog()
	catalog.Register(&action.Action{Name: "Resize", Impl: reflect.TypeOf(resize{})})

	require.PanicsWithValue(t, "action with name 'Resize' already registered", func() {
		catalog.Register(&action.Action{Name: "Resize", Impl: reflect.TypeOf(recompress{})})
	})
}

func TestCatalog_BindParameters(t *testing.T) {
	t.Parallel()

	catalog := action.NewCatalog()
	catalog.Register(&action.Action{Name: "Resize", Impl: reflect.TypeOf(resize{})})
	require.NoError(t, catalog.BindParameters(reflect.TypeOf(resizeParams{}), "Resize"))

	act, ok := catalog.ForParameters(reflect.TypeOf(resizeParams{}))
	require.True(t, ok)
	require.Equal(t, "Resize", act.Name)

	// Pointer types normalize to their element type.
	act, ok = catalog.ForParameters(reflect.TypeOf(&resizeParams{}))
	require.True(t, ok)
	require.Equal(t, "Resize", act.Name)
}

func TestCatalog_BindParameters_UnknownAction(t *testing.T) {
	t.Parallel()

	catalog := action.NewCatalog()
	err := catalog.BindParameters(reflect.TypeOf(resizeParams{}), "Missing")
	require.ErrorContains(t, err, "no action named 'Missing' is registered")
}

func TestCatalog_BindParameters_Conflict(t *testing.T) {
	t.Parallel()

	catalog := action.NewCatalog()
	catalog.Register(&action.Action{Name: "Resize", Impl: reflect.TypeOf(resize{})})
	catalog.Register(&action.Action{Name: "Recompress", Impl: reflect.TypeOf(recompress{})})

	require.NoError(t, catalog.BindParameters(reflect.TypeOf(resizeParams{}), "Resize"))
	// Re-binding to the same action is idempotent.
	require.NoError(t, catalog.BindParameters(reflect.TypeOf(resizeParams{}), "Resize"))

	err := catalog.BindParameters(reflect.TypeOf(resizeParams{}), "Recompress")
	require.ErrorContains(t, err, "already bound to action 'Resize'")
}
