package langsheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/langsheet/pkg/langcode"
	"github.com/dmitrymomot/langsheet/pkg/pathsafe"
	"github.com/dmitrymomot/langsheet/pkg/report"
	"github.com/dmitrymomot/langsheet/pkg/spreadsheet"
	"github.com/dmitrymomot/langsheet/pkg/table"
	"github.com/dmitrymomot/langsheet/pkg/translation"
)

// DefaultSheetName is the worksheet name used when none is configured.
const DefaultSheetName = "Translations"

// Converter orchestrates conversions between language file directories and
// spreadsheets. It is immutable after New and safe for concurrent use; every
// conversion call is stateless and idempotent given identical inputs.
type Converter struct {
	languageMap      *langcode.Map
	logger           *slog.Logger
	sheetName        string
	concurrency      int
	failOnDuplicates bool
	report           bool
}

// New creates a Converter with the given options.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		sheetName:   DefaultSheetName,
		concurrency: runtime.GOMAXPROCS(0),
		report:      true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// languageFile is one discovered source document.
type languageFile struct {
	path string
	code string
	yaml bool
}

// Export aggregates every language file in srcDir into one sheet written to
// outPath (.xlsx or .csv). Columns are ordered lexicographically by language
// code; rows are ordered by key. An empty outPath makes the call a dry run:
// nothing is written and only the report is produced. The returned report is
// nil when reporting is disabled.
func (c *Converter) Export(ctx context.Context, srcDir, outPath string) (*report.Report, error) {
	log := c.logger.With(slog.String("run_id", uuid.NewString()))

	files, err := discoverLanguageFiles(srcDir)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "exporting language files",
		slog.Int("files", len(files)), slog.String("src", srcDir))

	// Decode in parallel; each worker owns one file. Aggregation happens
	// after the fan-in, in discovery order, so the table is deterministic.
	entries := make([][]translation.Entry, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tree, err := decodeLanguageFile(file)
			if err != nil {
				return err
			}
			entries[i] = tree.Entries()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tbl := translation.NewTable()
	codes := make([]string, 0, len(files))
	for i, file := range files {
		codes = append(codes, file.code)
		for _, e := range entries[i] {
			tbl.Set(e.Key, file.code, e.Value)
		}
	}
	sort.Strings(codes)

	var rep *report.Report
	if c.report {
		r := report.Generate(tbl, codes)
		rep = &r
	}

	if outPath == "" {
		log.InfoContext(ctx, "dry run, skipping write", slog.Int("keys", tbl.Len()))
		return rep, nil
	}

	codec, err := spreadsheet.ForPath(outPath)
	if err != nil {
		return nil, err
	}
	rows := table.Rows(tbl, codes, c.languageMap.DisplayName)
	if err := codec.Write(outPath, c.sheetName, rows); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "sheet written",
		slog.String("out", outPath), slog.Int("keys", tbl.Len()), slog.Int("languages", len(codes)))
	return rep, nil
}

// Import splits the sheet at sheetPath into one nested JSON document per
// language in outDir. sheetName selects the worksheet for .xlsx sources and
// is ignored for .csv. Header, language code, and output path validation all
// happen before the first file is written; duplicate keys follow the
// configured policy.
func (c *Converter) Import(ctx context.Context, sheetPath, sheetName, outDir string) error {
	log := c.logger.With(slog.String("run_id", uuid.NewString()))

	codec, err := spreadsheet.ForPath(sheetPath)
	if err != nil {
		return err
	}
	if sheetName == "" {
		sheetName = c.sheetName
	}

	rows, err := codec.Read(sheetPath, sheetName)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptySheet, sheetPath)
	}

	codes, err := table.ParseHeaders(rows[0], c.languageMap.Reverse())
	if err != nil {
		return err
	}

	result := table.ReadRows(rows, codes)
	if len(result.Duplicates) > 0 {
		if c.failOnDuplicates {
			return &DuplicateKeysError{Keys: result.Duplicates}
		}
		log.WarnContext(ctx, "duplicate keys in sheet, last row wins",
			slog.String("keys", strings.Join(result.Duplicates, ", ")))
	}

	// Resolve every output path up front so one bad code aborts the whole
	// import before anything touches the disk.
	paths := make(map[string]string, len(codes))
	for _, code := range codes {
		if err := langcode.Validate(code); err != nil {
			return err
		}
		path, err := pathsafe.JoinWithin(outDir, code+".json")
		if err != nil {
			return err
		}
		paths[code] = path
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("langsheet: creating output directory %q: %w", outDir, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for _, code := range codes {
		code := code
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return writeLanguageFile(paths[code], result.ByLanguage[code])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.InfoContext(ctx, "language files written",
		slog.String("out", outDir), slog.Int("languages", len(codes)), slog.Int("rows", len(rows)-1))
	return nil
}

func discoverLanguageFiles(srcDir string) ([]languageFile, error) {
	dirEntries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("langsheet: reading source directory %q: %w", srcDir, err)
	}

	byCode := make(map[string]string)
	var files []languageFile
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		code := strings.TrimSuffix(de.Name(), filepath.Ext(de.Name()))
		if err := langcode.Validate(code); err != nil {
			return nil, fmt.Errorf("file %q: %w", de.Name(), err)
		}
		if prev, ok := byCode[code]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateLanguageFile, prev, de.Name())
		}
		byCode[code] = de.Name()

		files = append(files, languageFile{
			path: filepath.Join(srcDir, de.Name()),
			code: code,
			yaml: ext == ".yaml" || ext == ".yml",
		})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoLanguageFiles, srcDir)
	}
	return files, nil
}

func decodeLanguageFile(file languageFile) (*translation.Tree, error) {
	f, err := os.Open(file.path)
	if err != nil {
		return nil, fmt.Errorf("langsheet: opening %q: %w", file.path, err)
	}
	defer f.Close()

	var tree *translation.Tree
	if file.yaml {
		tree, err = translation.DecodeYAML(f)
	} else {
		tree, err = translation.DecodeJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("file %q: %w", file.path, err)
	}
	return tree, nil
}

func writeLanguageFile(path string, tree *translation.Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("langsheet: creating %q: %w", path, err)
	}
	if err := tree.EncodeJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("langsheet: writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("langsheet: closing %q: %w", path, err)
	}
	return nil
}
