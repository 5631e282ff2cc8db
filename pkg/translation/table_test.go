package translation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langsheet/pkg/translation"
)

func TestTableSetGet(t *testing.T) {
	t.Parallel()

	tbl := translation.NewTable()
	tbl.Set("b.key", "en", "B")
	tbl.Set("a.key", "en", "A")
	tbl.Set("a.key", "de", "A-de")

	require.Equal(t, []string{"b.key", "a.key"}, tbl.Keys())
	require.Equal(t, 2, tbl.Len())

	v, ok := tbl.Get("a.key", "de")
	require.True(t, ok)
	require.Equal(t, "A-de", v)

	_, ok = tbl.Get("a.key", "fr")
	require.False(t, ok)

	require.Equal(t, map[string]string{"en": "A", "de": "A-de"}, tbl.Languages("a.key"))
	require.Empty(t, tbl.Duplicates())
}

func TestTableDuplicates(t *testing.T) {
	t.Parallel()

	tbl := translation.NewTable()
	tbl.Set("k", "en", "first")
	tbl.Set("k", "en", "second")
	tbl.Set("k", "en", "third")
	tbl.Set("other", "en", "x")
	tbl.Set("other", "en", "y")

	// Repeats collapse to one duplicate entry per key, first-detected order.
	require.Equal(t, []string{"k", "other"}, tbl.Duplicates())

	// Last write wins.
	v, ok := tbl.Get("k", "en")
	require.True(t, ok)
	require.Equal(t, "third", v)
}

func TestTableDifferentLanguagesNotDuplicates(t *testing.T) {
	t.Parallel()

	tbl := translation.NewTable()
	tbl.Set("k", "en", "Hello")
	tbl.Set("k", "de", "Hallo")

	require.Empty(t, tbl.Duplicates())
}
