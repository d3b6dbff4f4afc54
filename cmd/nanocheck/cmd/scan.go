package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/druvus/nanopore-format-checker/internal/config"
	"github.com/druvus/nanopore-format-checker/internal/convert"
	"github.com/druvus/nanopore-format-checker/internal/logger"
	"github.com/druvus/nanopore-format-checker/internal/metadata"
	"github.com/druvus/nanopore-format-checker/internal/report"
	"github.com/druvus/nanopore-format-checker/internal/scanner"
	"github.com/druvus/nanopore-format-checker/internal/types"
)

var (
	tsvPath      string
	convertTo    string
	scriptOutput string
	outputDir    string
)

var scanCmd = &cobra.Command{
	Use:   "scan <target-folder>",
	Short: "Scan a storage folder and classify nanopore runs",
	Long: `Scan inspects every run directory (names starting with YYYYMMDD_) in
the target folder, detects its read data formats, extracts chemistry
metadata where possible, and prints a classification table.

Top-level archives with run-style names are reported as compressed runs.

Example:
  nanocheck scan /data/sequencing --tsv stats.tsv --convert-to pod5`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&tsvPath, "tsv", "",
		"Write per-run statistics to a TSV file")
	scanCmd.Flags().StringVar(&convertTo, "convert-to", "",
		"Generate a conversion script for the target format (pod5, single_fast5)")
	scanCmd.Flags().StringVar(&scriptOutput, "script-output", "",
		"Output path for the generated conversion script")
	scanCmd.Flags().StringVar(&outputDir, "output-dir", "",
		"Write converted data under this directory instead of the run folders")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	target := args[0]

	cfg, err := config.LoadIfExists(GetConfigFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Quick, overrides.Verbose, overrides.Workers)
	applyScanFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("'%s' is not a directory", target)
	}

	runDirs, archives, err := collectRuns(target)
	if err != nil {
		return fmt.Errorf("failed to list '%s': %w", target, err)
	}
	if len(runDirs) == 0 && len(archives) == 0 {
		cmd.Printf("No nanopore run directories found in '%s'\n", target)
		cmd.Println("  (Expected directories starting with YYYYMMDD_ pattern)")
		return nil
	}

	log.Infow("Starting scan",
		"target", target,
		"runs", len(runDirs),
		"archives", len(archives),
		"workers", cfg.Scan.Workers,
	)

	analyzer := scanner.NewAnalyzer(metadata.Default(), log,
		scanner.Options{Quick: cfg.Scan.Quick})
	results := analyzeAll(analyzer, target, runDirs, archives, cfg.Scan.Workers)

	out := cmd.OutOrStdout()
	report.Table(out, results, cfg.Report.Color)
	fmt.Fprintln(out)
	report.Summary(out, results)
	if cfg.Report.Verbose {
		report.Details(out, results)
		printHints(cmd, results)
	}

	if cfg.Report.TSVPath != "" {
		if err := writeTSVFile(cfg.Report.TSVPath, results); err != nil {
			return err
		}
		log.Infow("Wrote statistics TSV", "path", cfg.Report.TSVPath)
	}

	if cfg.Convert.Target != "" {
		scriptPath, err := writeConversionScript(cfg, results)
		if err != nil {
			return err
		}
		cmd.Printf("\nConversion script written to: %s\n", scriptPath)
		cmd.Printf("  Review and run: bash %s\n", scriptPath)
	}
	return nil
}

// applyScanFlags folds scan-command flags into the effective config.
func applyScanFlags(cfg *config.Config) {
	if tsvPath != "" {
		cfg.Report.TSVPath = tsvPath
	}
	if convertTo != "" {
		cfg.Convert.Target = convertTo
	}
	if scriptOutput != "" {
		cfg.Convert.ScriptOutput = scriptOutput
	}
	if outputDir != "" {
		cfg.Convert.OutputDir = outputDir
	}
}

// collectRuns lists run directories and run-named top-level archives in the
// target folder, both sorted by name.
func collectRuns(target string) (runDirs, archives []string, err error) {
	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			if scanner.IsRunDir(name) {
				runDirs = append(runDirs, name)
			}
		} else if scanner.IsArchiveName(name) && scanner.IsRunDir(name) {
			archives = append(archives, name)
		}
	}
	sort.Strings(runDirs)
	sort.Strings(archives)
	return runDirs, archives, nil
}

// analyzeAll runs the analyzer over every run directory with a bounded
// worker pool, then appends archive pseudo-runs. Result order matches the
// sorted input order regardless of scheduling.
func analyzeAll(analyzer *scanner.Analyzer, target string, runDirs, archives []string, workers int) *report.Results {
	recs := make([]*types.RunRecord, len(runDirs))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, name := range runDirs {
		g.Go(func() error {
			recs[i] = analyzer.AnalyzeRun(filepath.Join(target, name))
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	results := orderedmap.NewOrderedMap[string, *types.RunRecord]()
	for _, rec := range recs {
		results.Set(rec.Name, rec)
	}
	for _, name := range archives {
		rec := archiveRun(target, name)
		results.Set(rec.Name, rec)
	}
	return results
}

// archiveRun builds the pseudo-record for a top-level archive file.
func archiveRun(target, name string) *types.RunRecord {
	rec := types.NewRunRecord(scanner.TrimArchiveExt(name), filepath.Join(target, name))
	rec.AddFormat(types.FormatArchive, &types.FormatDetail{
		Directories:  []string{target},
		ArchiveFiles: []string{name},
		Note:         "Compressed archive; assumed single-read fast5",
	})
	return rec
}

// printHints prints manual conversion suggestions once per detected format.
func printHints(cmd *cobra.Command, results *report.Results) {
	seen := make(map[types.Format]bool)
	for el := results.Front(); el != nil; el = el.Next() {
		for _, f := range el.Value.Formats {
			if seen[f] {
				continue
			}
			seen[f] = true
			hints := convert.Hints(f)
			if len(hints) == 0 {
				continue
			}
			cmd.Printf("\n%s:\n", f)
			for _, h := range hints {
				cmd.Printf("  %s\n", h)
			}
		}
	}
}

func writeTSVFile(path string, results *report.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create TSV file: %w", err)
	}
	if err := report.WriteTSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeConversionScript(cfg *config.Config, results *report.Results) (string, error) {
	target, err := convert.ParseTarget(cfg.Convert.Target)
	if err != nil {
		return "", err
	}
	script := convert.Script(results, target, cfg.Convert.OutputDir, cfg.Convert.Threads)
	path := cfg.Convert.ScriptOutput
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		return "", fmt.Errorf("failed to write conversion script: %w", err)
	}
	return path, nil
}
