// Package langsheet converts localization data between per-language nested
// JSON/YAML documents and a single tabular spreadsheet.
//
// One direction aggregates a directory of language files (en.json, de.yaml,
// ...) into a sheet with one row per dotted translation key and one column
// per language. The other direction splits such a sheet back into one nested
// document per language. Values survive both directions byte for byte;
// malformed trees, unresolvable headers, and unsafe output paths abort a
// conversion before anything is written.
//
// # Exporting to a sheet
//
//	conv := langsheet.New(
//		langsheet.WithLanguageMap(map[string]string{"de": "German", "en": "English"}),
//		langsheet.WithLogger(log),
//	)
//
//	rep, err := conv.Export(ctx, "locales", "translations.xlsx")
//
// Passing an empty output path makes Export a dry run: files are read and
// analyzed, the quality report is returned, and nothing is written. The
// report flags missing translations, duplicated keys, and values whose
// interpolation placeholders differ between languages.
//
// # Importing from a sheet
//
//	err := conv.Import(ctx, "translations.xlsx", "Translations", "locales")
//
// Header cells may be language codes or display names from the language map.
// Duplicate keys in the sheet are a warning by default; WithFailOnDuplicates
// turns them into a hard error. Output files are written only through paths
// verified to stay inside the output directory.
package langsheet
