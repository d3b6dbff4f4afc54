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
	quick     bool
	verbose   bool
	workers   int
)

var rootCmd = &cobra.Command{
	Use:   "nanocheck",
	Short: "Nanopore run format checker",
	Long: `A CLI tool for auditing nanopore sequencing storage: it scans run
directories, classifies their read data formats, and recommends the
basecaller version matching each run's chemistry.

Features:
  - Format detection (pod5, multi/single-read fast5, fastq, archives)
  - Bounded directory sampling that tolerates 100k+ file runs
  - Flowcell and kit chemistry extraction with dorado recommendations
  - TSV export and bash conversion script generation`,
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
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "nanocheck.yaml",
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Scan overrides
	rootCmd.PersistentFlags().BoolVar(&quick, "quick", false,
		"Skip file counting and size computation")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Print per-run details and conversion hints")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0,
		"Override number of runs analyzed in parallel")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	Quick     bool
	Verbose   bool
	Workers   int
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Quick:     quick,
		Verbose:   verbose,
		Workers:   workers,
	}
}
