package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skolat/bewerberlisten/internal/config"
	"github.com/skolat/bewerberlisten/internal/converter"
	"github.com/skolat/bewerberlisten/internal/logger"
)

var (
	convertInputDir string
	convertSkipPDF  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert all applicant export files in the input directory",
	Long: `Convert scans the input directory for CSV export files and produces,
per Bildungsangebot, a styled XLSX spreadsheet and a printable PDF candidate
list, followed by one summary PDF for the whole run.

Files are processed in name order. A file whose bytes cannot be decoded with
any supported encoding aborts the run; a file without data rows or without
the answers column is skipped and processing continues.

Example:
  bewerberlisten convert --input-dir ./export
  bewerberlisten convert --skip-pdf -v`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertInputDir, "input-dir", "i", "",
		"Directory to scan for export files (default from config)")
	convertCmd.Flags().BoolVar(&convertSkipPDF, "skip-pdf", false,
		"Skip PDF generation, write spreadsheets only")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		convertInputDir, overrides.KeepArtifacts, convertSkipPDF)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	log.Infow("Starting conversion",
		"input_dir", cfg.Input.Dir,
		"config", GetConfigFile(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conv := converter.New(cfg, log)
	result, err := conv.Run(ctx)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Printf("\n=== Konvertierung abgeschlossen ===\n")
	fmt.Printf("Dateien gefunden:    %d\n", result.FilesFound)
	fmt.Printf("Dateien verarbeitet: %d\n", result.FilesProcessed)
	fmt.Printf("Dateien übersprungen: %d\n", result.FilesSkipped)
	fmt.Printf("Gruppen:             %d\n", result.GroupsWritten)
	fmt.Printf("Datensätze:          %d\n", result.RecordsTotal)

	return nil
}
