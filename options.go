package langsheet

import (
	"log/slog"

	"github.com/dmitrymomot/langsheet/pkg/langcode"
)

// Option configures a Converter.
type Option func(*Converter)

// WithLanguageMap sets the code-to-display-name mapping used for spreadsheet
// headers in both directions. Codes without an entry appear verbatim.
func WithLanguageMap(names map[string]string) Option {
	return func(c *Converter) {
		if len(names) > 0 {
			c.languageMap = langcode.NewMap(names)
		}
	}
}

// WithLogger sets the logger for progress and warnings.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSheetName sets the worksheet name used when writing .xlsx files and
// as the fallback worksheet when importing. Defaults to DefaultSheetName.
func WithSheetName(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.sheetName = name
		}
	}
}

// WithFailOnDuplicates escalates duplicate sheet keys from a warning to a
// hard error that aborts the import before any file is written.
// Defaults to false: duplicates are logged and the last row wins.
func WithFailOnDuplicates(fail bool) Option {
	return func(c *Converter) {
		c.failOnDuplicates = fail
	}
}

// WithReport controls whether Export analyzes the aggregated table for
// missing translations, duplicates, and placeholder inconsistencies.
// Defaults to true.
func WithReport(enabled bool) Option {
	return func(c *Converter) {
		c.report = enabled
	}
}

// WithConcurrency caps how many language files are decoded or written in
// parallel. Values below 1 are ignored. Defaults to the number of CPUs.
func WithConcurrency(n int) Option {
	return func(c *Converter) {
		if n > 0 {
			c.concurrency = n
		}
	}
}
