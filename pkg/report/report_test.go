package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langsheet/pkg/report"
	"github.com/dmitrymomot/langsheet/pkg/translation"
)

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"none", "Hello, World!", nil},
		{"single braces", "Hello {name}", []string{"name"}},
		{"double braces", "Hello {{name}}", []string{"name"}},
		{"inner whitespace", "Hello {{ name }}", []string{"name"}},
		{"multiple", "Hi {name}, you have {count} items", []string{"name", "count"}},
		{"repeats collapse", "{name} and {name} again", []string{"name"}},
		{"mixed syntax", "{a} then {{b}}", []string{"a", "b"}},
		{"whitespace only name", "empty {  } braces", nil},
		{"empty braces", "{}", nil},
		{"multi word name", "{user name}", []string{"user name"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, report.Placeholders(tt.value))
		})
	}
}

func TestGenerateMissing(t *testing.T) {
	t.Parallel()

	tbl := translation.NewTable()
	tbl.Set("a.b", "en", "Hi")

	rep := report.Generate(tbl, []string{"en", "de"})
	require.Equal(t, []report.MissingEntry{{Key: "a.b", Lang: "de"}}, rep.Missing)
	require.False(t, rep.Empty())
}

func TestGenerateEmptyValueIsMissing(t *testing.T) {
	t.Parallel()

	tbl := translation.NewTable()
	tbl.Set("a.b", "en", "Hi")
	tbl.Set("a.b", "de", "")

	rep := report.Generate(tbl, []string{"en", "de"})
	require.Equal(t, []report.MissingEntry{{Key: "a.b", Lang: "de"}}, rep.Missing)
}

func TestGenerateDuplicates(t *testing.T) {
	t.Parallel()

	tbl := translation.NewTable()
	tbl.Set("k", "en", "first")
	tbl.Set("k", "en", "second")

	rep := report.Generate(tbl, []string{"en"})
	require.Equal(t, []string{"k"}, rep.Duplicates)
}

func TestGeneratePlaceholderInconsistency(t *testing.T) {
	t.Parallel()

	t.Run("missing placeholder flagged", func(t *testing.T) {
		t.Parallel()

		tbl := translation.NewTable()
		tbl.Set("greeting", "de", "Hallo {name}, {count}")
		tbl.Set("greeting", "en", "Hello {name}")

		rep := report.Generate(tbl, []string{"de", "en"})
		require.Len(t, rep.Placeholders, 1)

		mismatch := rep.Placeholders[0]
		require.Equal(t, "greeting", mismatch.Key)
		require.ElementsMatch(t, []string{"name", "count"}, mismatch.ByLanguage["de"])
		require.ElementsMatch(t, []string{"name"}, mismatch.ByLanguage["en"])
	})

	t.Run("consistent placeholders pass", func(t *testing.T) {
		t.Parallel()

		tbl := translation.NewTable()
		tbl.Set("greeting", "de", "Hallo {{name}}")
		tbl.Set("greeting", "en", "Hello {name}")

		rep := report.Generate(tbl, []string{"de", "en"})
		require.Empty(t, rep.Placeholders)
	})

	t.Run("no placeholders anywhere", func(t *testing.T) {
		t.Parallel()

		tbl := translation.NewTable()
		tbl.Set("plain", "de", "Hallo")
		tbl.Set("plain", "en", "Hello")

		rep := report.Generate(tbl, []string{"de", "en"})
		require.Empty(t, rep.Placeholders)
		require.True(t, rep.Empty())
	})

	t.Run("absent language not compared", func(t *testing.T) {
		t.Parallel()

		tbl := translation.NewTable()
		tbl.Set("greeting", "en", "Hello {name}")

		rep := report.Generate(tbl, []string{"en", "de"})
		require.Empty(t, rep.Placeholders)
	})
}
