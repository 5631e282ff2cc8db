// Command langsheet converts between per-language translation files and a
// single spreadsheet.
//
// Usage:
//
//	langsheet export <src-dir> [sheet.xlsx|sheet.csv]
//	langsheet import <sheet.xlsx|sheet.csv> <out-dir>
//
// Export without an output path is a dry run: files are validated and the
// quality report is printed, nothing is written. Configuration comes from
// an optional YAML file (-config, default "langsheet.yaml") overridden by
// LANGSHEET_* environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/dmitrymomot/langsheet"
	"github.com/dmitrymomot/langsheet/internal/config"
	"github.com/dmitrymomot/langsheet/pkg/report"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("langsheet", flag.ExitOnError)
	configPath := fs.String("config", "langsheet.yaml", "path to YAML config file")
	sheetName := fs.String("sheet", "", "worksheet name (overrides config)")
	fs.Usage = usage(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *sheetName != "" {
		cfg.SheetName = *sheetName
	}

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: logLevel(cfg.LogLevel)}))

	conv := langsheet.New(
		langsheet.WithLanguageMap(cfg.LanguageMap),
		langsheet.WithLogger(log),
		langsheet.WithSheetName(cfg.SheetName),
		langsheet.WithFailOnDuplicates(cfg.FailOnDuplicates),
		langsheet.WithReport(cfg.Report),
		langsheet.WithConcurrency(cfg.Concurrency),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch fs.Arg(0) {
	case "export":
		if fs.Arg(1) == "" {
			return fmt.Errorf("export: source directory required")
		}
		rep, err := conv.Export(ctx, fs.Arg(1), fs.Arg(2))
		if err != nil {
			return err
		}
		if rep != nil {
			printReport(rep)
		}
		return nil

	case "import":
		if fs.Arg(1) == "" || fs.Arg(2) == "" {
			return fmt.Errorf("import: sheet path and output directory required")
		}
		return conv.Import(ctx, fs.Arg(1), cfg.SheetName, fs.Arg(2))

	case "":
		fs.Usage()
		return fmt.Errorf("command required")

	default:
		return fmt.Errorf("unknown command %q", fs.Arg(0))
	}
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  langsheet [flags] export <src-dir> [sheet.xlsx|sheet.csv]")
		fmt.Fprintln(os.Stderr, "  langsheet [flags] import <sheet.xlsx|sheet.csv> <out-dir>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printReport(rep *report.Report) {
	if rep.Empty() {
		fmt.Println("report: no issues found")
		return
	}

	for _, m := range rep.Missing {
		fmt.Printf("missing: %s [%s]\n", m.Key, m.Lang)
	}
	for _, key := range rep.Duplicates {
		fmt.Printf("duplicate: %s\n", key)
	}
	for _, p := range rep.Placeholders {
		fmt.Printf("placeholder mismatch: %s\n", p.Key)
		for lang, names := range p.ByLanguage {
			fmt.Printf("  %s: {%s}\n", lang, strings.Join(names, ", "))
		}
	}
	fmt.Printf("report: %d missing, %d duplicates, %d placeholder mismatches\n",
		len(rep.Missing), len(rep.Duplicates), len(rep.Placeholders))
}
