// Package langcode validates language codes and maps them to display names.
//
// A language code identifies a language or locale in file names and
// spreadsheet headers. The accepted shape is a first segment of 2-3
// alphanumeric characters, optionally followed by one or more non-empty
// alphanumeric segments separated by "-" or "_":
//
//	en
//	pt-BR
//	zh_CN
//
// Anything else is rejected, including empty strings, bare separators, and
// path-traversal strings like "../en" (the separator characters fail the
// alphanumeric rule). Because codes frequently arrive from untrusted
// spreadsheet headers and end up in output file names, Validate is the first
// line of defense against directory traversal.
//
// # Display Names
//
// A Map associates codes with human-readable names for spreadsheet headers:
//
//	m := langcode.NewMap(map[string]string{"de": "German", "en": "English"})
//	m.DisplayName("de") // "German"
//	m.DisplayName("fr") // "fr" (no entry, code used verbatim)
//	m.Reverse()["German"] // "de"
//
// DefaultDisplayName derives an English name from the BCP 47 registry for
// codes the user map does not cover.
package langcode
