package translation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langsheet/pkg/translation"
)

func TestFlattenOrderAndCount(t *testing.T) {
	t.Parallel()

	tree, err := translation.DecodeJSON(strings.NewReader(`{
		"app": {"title": "Hi", "body": "Text"},
		"zeta": "Z",
		"alpha": {"deep": {"er": "V"}}
	}`))
	require.NoError(t, err)

	entries := tree.Entries()
	require.Equal(t, []translation.Entry{
		{Key: "app.title", Value: "Hi"},
		{Key: "app.body", Value: "Text"},
		{Key: "zeta", Value: "Z"},
		{Key: "alpha.deep.er", Value: "V"},
	}, entries)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"flat", `{"a": "1", "b": "2"}`},
		{"nested", `{"a": {"b": {"c": "deep"}}, "d": "shallow"}`},
		{"empty values", `{"a": "", "b": {"c": ""}}`},
		{"unicode", `{"greet": "こんにちは {name}", "emoji": "✨"}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			orig, err := translation.DecodeJSON(strings.NewReader(tt.src))
			require.NoError(t, err)

			rebuilt := translation.Nest(orig.Entries())
			require.True(t, orig.Equal(rebuilt))
			require.True(t, rebuilt.Equal(orig))
		})
	}
}

func TestSetPathOverwritesConflicts(t *testing.T) {
	t.Parallel()

	t.Run("leaf replaced by branch", func(t *testing.T) {
		t.Parallel()

		tree := translation.NewTree()
		tree.SetPath([]string{"a"}, "scalar")
		tree.SetPath([]string{"a", "b"}, "nested")

		child, ok := tree.Child("a")
		require.True(t, ok)
		require.False(t, child.IsLeaf())

		leaf, ok := child.Child("b")
		require.True(t, ok)
		require.Equal(t, "nested", leaf.Value())
	})

	t.Run("branch replaced by leaf", func(t *testing.T) {
		t.Parallel()

		tree := translation.NewTree()
		tree.SetPath([]string{"a", "b"}, "nested")
		tree.SetPath([]string{"a"}, "scalar")

		child, ok := tree.Child("a")
		require.True(t, ok)
		require.True(t, child.IsLeaf())
		require.Equal(t, "scalar", child.Value())
	})

	t.Run("same path last write wins", func(t *testing.T) {
		t.Parallel()

		tree := translation.NewTree()
		tree.SetPath([]string{"k"}, "A")
		tree.SetPath([]string{"k"}, "B")

		leaf, ok := tree.Child("k")
		require.True(t, ok)
		require.Equal(t, "B", leaf.Value())
		require.Equal(t, 1, tree.Len())
	})

	t.Run("empty segments ignored", func(t *testing.T) {
		t.Parallel()

		tree := translation.NewTree()
		tree.SetPath(nil, "x")
		require.Zero(t, tree.Len())
	})
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		tree, err := translation.FromAny(map[string]any{
			"a": map[string]any{"b": "Hello"},
			"c": "World",
		})
		require.NoError(t, err)
		require.Equal(t, []translation.Entry{
			{Key: "a.b", Value: "Hello"},
			{Key: "c", Value: "World"},
		}, tree.Entries())
	})

	invalid := []struct {
		value    any
		name     string
		wantPath string
		wantType string
	}{
		{map[string]any{"a": []any{"x"}}, "array", "a", "Array"},
		{map[string]any{"a": map[string]any{"b": 42.0}}, "number", "a.b", "number"},
		{map[string]any{"a": true}, "boolean", "a", "boolean"},
		{map[string]any{"a": nil}, "null", "a", "null"},
		{[]any{"top"}, "array root", "", "Array"},
	}
	for _, tt := range invalid {
		tt := tt
		t.Run("invalid "+tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := translation.FromAny(tt.value)
			require.ErrorIs(t, err, translation.ErrInvalidStructure)

			var serr *translation.InvalidStructureError
			require.ErrorAs(t, err, &serr)
			require.Equal(t, tt.wantPath, serr.Path)
			require.Equal(t, tt.wantType, serr.Type)
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, err := translation.DecodeJSON(strings.NewReader(`{"x": "1", "y": {"z": "2"}}`))
	require.NoError(t, err)

	// Same content, different key order.
	b, err := translation.DecodeJSON(strings.NewReader(`{"y": {"z": "2"}, "x": "1"}`))
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := translation.DecodeJSON(strings.NewReader(`{"x": "1", "y": {"z": "changed"}}`))
	require.NoError(t, err)
	require.False(t, a.Equal(c))

	d, err := translation.DecodeJSON(strings.NewReader(`{"x": "1"}`))
	require.NoError(t, err)
	require.False(t, a.Equal(d))
}
