package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "bewerberlisten",
	Short: "Bewerberlisten aus CSV-Exporten erzeugen",
	Long: `A batch converter for semicolon-delimited applicant export files.

For every Bildungsangebot found in the exports it produces a styled XLSX
spreadsheet with one column per answered question, a printable PDF candidate
list typeset with pdflatex, and a run-wide summary PDF.

Features:
  - Encoding fallback (UTF-8 with BOM, UTF-8, Latin-1)
  - Dynamic answer columns with duplicate-key numbering and AV/SV grading
  - FG groups get the extra Schulgliederung column
  - PDF output degrades gracefully when pdflatex is missing`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "bewerberlisten.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Artifact retention
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Keep generated .tex and .log files")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel      string
	LogFormat     string
	KeepArtifacts bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:      logLevel,
		LogFormat:     logFormat,
		KeepArtifacts: verbose,
	}
}
