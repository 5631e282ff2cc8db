package translation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langsheet/pkg/translation"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("preserves key order", func(t *testing.T) {
		t.Parallel()

		tree, err := translation.DecodeJSON(strings.NewReader(`{"z": "1", "a": "2", "m": "3"}`))
		require.NoError(t, err)
		require.Equal(t, []string{"z", "a", "m"}, tree.Keys())
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := translation.DecodeJSON(strings.NewReader(`{"a": `))
		require.Error(t, err)
		require.NotErrorIs(t, err, translation.ErrInvalidStructure)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()

		_, err := translation.DecodeJSON(strings.NewReader(`{"a": "1"} {"b": "2"}`))
		require.Error(t, err)
	})

	invalid := []struct {
		name     string
		src      string
		wantPath string
		wantType string
	}{
		{"array value", `{"nav": {"items": ["a", "b"]}}`, "nav.items", "Array"},
		{"number value", `{"count": 5}`, "count", "number"},
		{"boolean value", `{"flag": true}`, "flag", "boolean"},
		{"null value", `{"gone": null}`, "gone", "null"},
		{"array root", `["a"]`, "", "Array"},
		{"string root", `"hello"`, "", "string"},
		{"number root", `42`, "", "number"},
	}
	for _, tt := range invalid {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := translation.DecodeJSON(strings.NewReader(tt.src))
			require.ErrorIs(t, err, translation.ErrInvalidStructure)

			var serr *translation.InvalidStructureError
			require.ErrorAs(t, err, &serr)
			require.Equal(t, tt.wantPath, serr.Path)
			require.Equal(t, tt.wantType, serr.Type)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		tree, err := translation.DecodeYAML(strings.NewReader("app:\n  title: Hello\n  body: Text\nfooter: Bye\n"))
		require.NoError(t, err)
		require.Equal(t, []translation.Entry{
			{Key: "app.title", Value: "Hello"},
			{Key: "app.body", Value: "Text"},
			{Key: "footer", Value: "Bye"},
		}, tree.Entries())
	})

	t.Run("quoted numbers stay strings", func(t *testing.T) {
		t.Parallel()

		tree, err := translation.DecodeYAML(strings.NewReader(`count: "5"`))
		require.NoError(t, err)
		leaf, ok := tree.Child("count")
		require.True(t, ok)
		require.Equal(t, "5", leaf.Value())
	})

	invalid := []struct {
		name     string
		src      string
		wantPath string
		wantType string
	}{
		{"sequence value", "items:\n  - a\n  - b\n", "items", "Array"},
		{"bare number", "count: 5\n", "count", "number"},
		{"bare bool", "flag: true\n", "flag", "boolean"},
		{"null value", "gone: null\n", "gone", "null"},
		{"sequence root", "- a\n- b\n", "", "Array"},
	}
	for _, tt := range invalid {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := translation.DecodeYAML(strings.NewReader(tt.src))
			require.ErrorIs(t, err, translation.ErrInvalidStructure)

			var serr *translation.InvalidStructureError
			require.ErrorAs(t, err, &serr)
			require.Equal(t, tt.wantPath, serr.Path)
			require.Equal(t, tt.wantType, serr.Type)
		})
	}
}
