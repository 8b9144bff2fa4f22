package unzip_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/transmute/internal/action"
	"github.com/vk/transmute/internal/registry"
	"github.com/vk/transmute/modules/unzip"
)

func TestModule_TypedRegistration(t *testing.T) {
	t.Parallel()

	catalog := action.NewCatalog()
	(&unzip.Module{}).Register(catalog)
	reg := registry.New(catalog)

	err := reg.RegisterTransformParameters(context.Background(), reflect.TypeOf(unzip.Params{}), func(d *registry.TypedDraft) {
		d.From().SetString("format", "jar")
		d.To().SetString("format", "classes")
		params := d.Parameters().(*unzip.Params)
		params.RetainStructure = true
		params.Excludes = []string{"META-INF/*"}
	})
	require.NoError(t, err)

	transforms := reg.Transforms()
	require.Len(t, transforms, 1)
	require.Equal(t, "Unzip", transforms[0].Action.Name, "action resolved through the parameter-type binding")
	require.NotEmpty(t, transforms[0].Fragment.ValueSnapshot)
}
