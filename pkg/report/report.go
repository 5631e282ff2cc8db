// Package report analyzes an aggregated translation table for data-quality
// issues: missing translations, duplicated keys, and interpolation
// placeholders that differ between languages. The analysis is purely
// informational; nothing here mutates the table or decides severity.
package report

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/langsheet/pkg/translation"
)

// MissingEntry identifies one (key, language) pair with no usable value.
type MissingEntry struct {
	Key  string
	Lang string
}

// PlaceholderMismatch records a key whose languages disagree on the
// placeholder set. ByLanguage lists every language's extracted set so the
// divergent one is visible at a glance.
type PlaceholderMismatch struct {
	ByLanguage map[string][]string
	Key        string
}

// Report is the outcome of analyzing a translation table.
type Report struct {
	Missing      []MissingEntry
	Duplicates   []string
	Placeholders []PlaceholderMismatch
}

// Empty reports whether the analysis found nothing to flag.
func (r Report) Empty() bool {
	return len(r.Missing) == 0 && len(r.Duplicates) == 0 && len(r.Placeholders) == 0
}

// Generate analyzes tbl against the given language codes.
//
// A (key, language) pair is missing when the language has no entry for the
// key or the entry is the empty string: an empty translation is
// operationally the same as an untranslated one. Duplicates are taken
// straight from the table's aggregation tracking. Placeholder analysis
// unions the placeholder names across each key's languages and flags the key
// when any language lacks a name that another language has; languages
// without an entry for the key are left out of that comparison.
func Generate(tbl *translation.Table, codes []string) Report {
	var rep Report

	for _, key := range tbl.Keys() {
		langs := tbl.Languages(key)

		for _, code := range codes {
			if v, ok := langs[code]; !ok || v == "" {
				rep.Missing = append(rep.Missing, MissingEntry{Key: key, Lang: code})
			}
		}

		if mismatch, ok := placeholderMismatch(key, langs, codes); ok {
			rep.Placeholders = append(rep.Placeholders, mismatch)
		}
	}

	rep.Duplicates = append(rep.Duplicates, tbl.Duplicates()...)

	return rep
}

func placeholderMismatch(key string, langs map[string]string, codes []string) (PlaceholderMismatch, bool) {
	byLanguage := make(map[string][]string)
	union := make(map[string]struct{})

	for _, code := range codes {
		value, ok := langs[code]
		if !ok {
			continue
		}
		names := Placeholders(value)
		byLanguage[code] = names
		for _, name := range names {
			union[name] = struct{}{}
		}
	}

	if len(union) == 0 {
		return PlaceholderMismatch{}, false
	}

	for _, names := range byLanguage {
		if len(names) < len(union) {
			return PlaceholderMismatch{Key: key, ByLanguage: byLanguage}, true
		}
	}

	return PlaceholderMismatch{}, false
}

// placeholderRe matches {name} and {{ name }} alike; the inner name stops
// before any nested brace.
var placeholderRe = regexp.MustCompile(`\{\{?([^{}]+?)\}\}?`)

// Placeholders extracts the set of placeholder names embedded in value, in
// first-appearance order. Whitespace around a name is trimmed and repeats
// within one value collapse.
func Placeholders(value string) []string {
	matches := placeholderRe.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil
	}
	return names
}
