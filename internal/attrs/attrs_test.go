package attrs_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/transmute/internal/attrs"
)

func TestContainer_FreezeSnapshotsContents(t *testing.T) {
	t.Parallel()

	container := attrs.NewContainer().SetString("format", "jar")
	predicate := container.Freeze()

	// Later writes to the container must not leak into the predicate.
	container.SetString("format", "zip")
	container.SetString("minified", "true")

	require.Equal(t, 1, predicate.Len())
	value, ok := predicate.Value("format")
	require.True(t, ok)
	require.Equal(t, "jar", value.AsString())
}

func TestContainer_SetReplacesValue(t *testing.T) {
	t.Parallel()

	container := attrs.NewContainer()
	container.SetString("format", "jar")
	container.SetString("format", "classes")

	predicate := container.Freeze()
	value, ok := predicate.Value("format")
	require.True(t, ok)
	require.Equal(t, "classes", value.AsString())
}

func TestPredicate_Names_Sorted(t *testing.T) {
	t.Parallel()

	predicate := attrs.NewContainer().
		SetString("minified", "true").
		SetString("format", "jar").
		Set("api", cty.BoolVal(false)).
		Freeze()

	require.Equal(t, []string{"api", "format", "minified"}, predicate.Names())
}

func TestPredicate_ContainsAllNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		from     *attrs.Container
		to       *attrs.Container
		expected bool
	}{
		{
			name:     "to is subset of from",
			from:     attrs.NewContainer().SetString("format", "jar").SetString("minified", "false"),
			to:       attrs.NewContainer().SetString("format", "classes"),
			expected: true,
		},
		{
			name:     "same names different values",
			from:     attrs.NewContainer().SetString("format", "jar"),
			to:       attrs.NewContainer().SetString("format", "classes"),
			expected: true,
		},
		{
			name:     "to introduces a new dimension",
			from:     attrs.NewContainer().SetString("format", "jar"),
			to:       attrs.NewContainer().SetString("format", "classes").SetString("minified", "true"),
			expected: false,
		},
		{
			name:     "empty to",
			from:     attrs.NewContainer().SetString("format", "jar"),
			to:       attrs.NewContainer(),
			expected: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, tc.from.Freeze().ContainsAllNames(tc.to.Freeze()))
		})
	}
}

func TestPredicate_String(t *testing.T) {
	t.Parallel()

	predicate := attrs.NewContainer().
		SetString("format", "jar").
		Set("count", cty.NumberIntVal(3)).
		Freeze()

	require.Equal(t, `{count: 3, format: "jar"}`, predicate.String())
}

func TestPredicate_ZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var predicate attrs.Predicate
	require.True(t, predicate.Empty())
	require.Empty(t, predicate.Names())
}
