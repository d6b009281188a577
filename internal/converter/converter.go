// Package converter orchestrates the conversion pipeline: discover export
// files, group their records, and render per-group spreadsheets and printable
// lists plus the run-wide summary.
package converter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gookit/color"

	"github.com/skolat/bewerberlisten/internal/config"
	"github.com/skolat/bewerberlisten/internal/grouper"
	"github.com/skolat/bewerberlisten/internal/latex"
	"github.com/skolat/bewerberlisten/internal/logger"
	"github.com/skolat/bewerberlisten/internal/reader"
	"github.com/skolat/bewerberlisten/internal/xlsxwriter"
)

// Result contains statistics and status of a conversion run.
type Result struct {
	FilesFound     int
	FilesProcessed int
	FilesSkipped   int
	GroupsWritten  int
	RecordsTotal   int
	PDFsWritten    int
	Stats          []latex.GroupStat
	SummaryWritten bool
}

// Converter runs the conversion pipeline. Files are processed one at a time,
// groups one at a time; the only accumulating state is the summary stats.
type Converter struct {
	cfg      *config.Config
	log      *logger.Logger
	writer   *xlsxwriter.Writer
	compiler *latex.Compiler

	// pdfEnabled drops to false for the rest of the run once the engine
	// turns out to be missing, so every group still gets its spreadsheet.
	pdfEnabled  bool
	pdfsWritten int
}

// New creates a Converter with the given configuration.
func New(cfg *config.Config, log *logger.Logger) *Converter {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Converter{
		cfg:        cfg,
		log:        log,
		writer:     xlsxwriter.New(&cfg.Fields, &cfg.Grading),
		compiler:   latex.NewCompiler(&cfg.Latex, log),
		pdfEnabled: !cfg.Latex.Disabled,
	}
}

// Run discovers input files in name order and converts each one. A file that
// cannot be decoded aborts the run; every other per-file problem skips that
// file. After the last file, the summary PDF is written if any group was
// produced.
func (c *Converter) Run(ctx context.Context) (*Result, error) {
	files, err := c.discoverFiles()
	if err != nil {
		return nil, err
	}

	result := &Result{FilesFound: len(files)}
	if len(files) == 0 {
		fmt.Println("Keine CSV-Dateien gefunden.")
		return result, nil
	}

	fmt.Printf("%d CSV-Datei(en) gefunden:\n\n", len(files))

	for _, path := range files {
		fmt.Printf("Verarbeite: %s\n", filepath.Base(path))

		stats, err := c.processFile(ctx, path)
		if err != nil {
			if errors.Is(err, reader.ErrUndecodable) {
				return result, err
			}
			color.Red.Printf("  Fehler: %v — übersprungen.\n", err)
			c.log.Errorw("File processing failed", "file", path, "error", err)
			result.FilesSkipped++
			continue
		}
		if stats == nil {
			result.FilesSkipped++
			continue
		}

		result.FilesProcessed++
		result.GroupsWritten += len(stats)
		for _, s := range stats {
			result.RecordsTotal += s.Count
		}
		result.Stats = append(result.Stats, stats...)
	}

	if len(result.Stats) > 0 {
		if c.writeSummary(ctx, result) {
			result.SummaryWritten = true
			c.pdfsWritten++
			fmt.Printf("\n  -> %s  (%d Bildungsgänge)\n", c.cfg.Latex.SummaryFile, len(result.Stats))
		}
	}

	result.PDFsWritten = c.pdfsWritten
	fmt.Println("\nFertig.")
	return result, nil
}

// discoverFiles lists input files with the configured extension, sorted by
// name for deterministic processing order.
func (c *Converter) discoverFiles() ([]string, error) {
	pattern := filepath.Join(c.cfg.Input.Dir, "*"+c.cfg.Input.Extension)
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// processFile converts one export file. It returns the per-group stats, or
// (nil, nil) when the file is skipped for missing rows or a missing answers
// column.
func (c *Converter) processFile(ctx context.Context, path string) ([]latex.GroupStat, error) {
	log := c.log.WithFile(filepath.Base(path))

	table, err := reader.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.Debugw("Decoded input file", "encoding", table.Encoding, "records", len(table.Records))

	if len(table.Records) == 0 {
		fmt.Printf("  Keine Datensätze in %s — übersprungen.\n", path)
		log.Warn("No data rows, skipping file")
		return nil, nil
	}
	if !table.HasColumn(c.cfg.Fields.AnswersColumn) {
		fmt.Printf("  Spalte %q nicht gefunden in %s — übersprungen.\n", c.cfg.Fields.AnswersColumn, path)
		log.Warnw("Answers column missing, skipping file", "column", c.cfg.Fields.AnswersColumn)
		return nil, nil
	}

	groups := grouper.Split(table.Records, &c.cfg.Fields, &c.cfg.Grouping)
	outDir := filepath.Dir(path)

	var stats []latex.GroupStat
	for i := range groups {
		group := &groups[i]

		answerCols, err := c.writer.Write(group, filepath.Join(outDir, group.SafeName+".xlsx"))
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", group.Key, err)
		}
		color.Green.Printf("  -> %s.xlsx", group.SafeName)
		fmt.Printf("  (%d Bewerber, %d Noten-Spalten)\n", len(group.Records), answerCols)

		if c.renderPDF(ctx, group, outDir) {
			c.pdfsWritten++
			color.Green.Printf("  -> %s.pdf\n", group.SafeName)
		}

		stats = append(stats, latex.GroupStat{Label: group.Key, Count: len(group.Records)})
	}

	fmt.Printf("  Gesamt: %d Datensätze in %d Dateien\n", len(table.Records), len(stats))
	log.WithFields(map[string]interface{}{
		"records": len(table.Records),
		"groups":  len(stats),
	}).Debug("File converted")
	return stats, nil
}

// renderPDF builds and compiles the printable list for one group. A missing
// engine disables PDF output for the rest of the run with a single warning;
// any other compile problem only skips this group's PDF.
func (c *Converter) renderPDF(ctx context.Context, group *grouper.Group, outDir string) bool {
	if !c.pdfEnabled {
		return false
	}
	log := c.log.WithGroup(group.Key)

	source, err := latex.BuildGroupDocument(group, &c.cfg.Fields)
	if err != nil {
		log.Errorw("Failed to build group document", "error", err)
		return false
	}

	ok, err := c.compiler.Render(ctx, source, filepath.Join(outDir, group.SafeName+".pdf"))
	if errors.Is(err, latex.ErrEngineNotFound) {
		color.Yellow.Printf("    WARNUNG: %s nicht gefunden — nur .tex erzeugt.\n", c.cfg.Latex.Engine)
		log.Warnw("Typesetting engine not found, PDF output disabled for this run",
			"engine", c.cfg.Latex.Engine)
		c.pdfEnabled = false
		return false
	}
	if err != nil {
		log.Errorw("Failed to compile group document", "error", err)
		return false
	}
	return ok
}

// writeSummary renders and compiles the run-wide overview into the input
// directory.
func (c *Converter) writeSummary(ctx context.Context, result *Result) bool {
	if !c.pdfEnabled {
		return false
	}

	source, err := latex.BuildSummaryDocument(result.Stats)
	if err != nil {
		c.log.Errorw("Failed to build summary document", "error", err)
		return false
	}

	pdfName := c.cfg.Latex.SummaryFile
	if !strings.HasSuffix(pdfName, ".pdf") {
		pdfName += ".pdf"
	}

	ok, err := c.compiler.Render(ctx, source, filepath.Join(c.cfg.Input.Dir, pdfName))
	if errors.Is(err, latex.ErrEngineNotFound) {
		c.log.Warnw("Typesetting engine not found, summary skipped", "engine", c.cfg.Latex.Engine)
		return false
	}
	if err != nil {
		c.log.Errorw("Failed to compile summary document", "error", err)
		return false
	}
	return ok
}
