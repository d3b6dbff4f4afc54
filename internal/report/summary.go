package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/druvus/nanopore-format-checker/internal/types"
)

// Summary writes per-format run counts in detection priority order, then
// the grand totals.
func Summary(w io.Writer, results *Results) {
	counts := make(map[types.Format]int)
	var totalSize int64
	for el := results.Front(); el != nil; el = el.Next() {
		rec := el.Value
		for _, f := range rec.Formats {
			counts[f]++
		}
		totalSize += rec.TotalSizeBytes()
	}

	fmt.Fprintln(w, "Summary:")
	for _, f := range types.AllFormats() {
		if n := counts[f]; n > 0 {
			fmt.Fprintf(w, "  %-18s %d\n", f.String(), n)
		}
	}
	fmt.Fprintf(w, "  %-18s %d\n", "total runs", results.Len())
	if totalSize > 0 {
		fmt.Fprintf(w, "  %-18s %s\n", "total data", FormatSize(totalSize))
	}
}

// Details writes the verbose per-run breakdown below the table: one block
// per run with directories, notes, and diagnostics per detected format.
func Details(w io.Writer, results *Results) {
	for el := results.Front(); el != nil; el = el.Next() {
		rec := el.Value
		fmt.Fprintf(w, "\n%s (%s)\n", rec.Name, rec.Path)

		if rec.Chemistry != nil {
			fmt.Fprintf(w, "  chemistry: flowcell=%s kit=%s sample_rate=%d\n",
				orDash(rec.Chemistry.Flowcell), orDash(rec.Chemistry.Kit), rec.Chemistry.SampleRate)
		}
		if rec.Classification != nil {
			fmt.Fprintf(w, "  pore: %s  analyte: %s  dorado: %s  model: %s\n",
				orDash(rec.Classification.Pore), orDash(rec.Classification.Analyte),
				orDash(rec.Classification.DoradoVersion), orDash(rec.Classification.ModelHint))
			if rec.Classification.Note != "" {
				fmt.Fprintf(w, "  note: %s\n", rec.Classification.Note)
			}
		}

		for _, f := range rec.Formats {
			d := rec.Details[f]
			fmt.Fprintf(w, "  [%s]\n", f.String())
			if len(d.FolderVariants) > 0 {
				fmt.Fprintf(w, "    folders: %v\n", d.FolderVariants)
			}
			if d.Layout != "" {
				fmt.Fprintf(w, "    layout: %s\n", d.Layout)
			}
			if d.FileCount != nil {
				fmt.Fprintf(w, "    files: %d\n", *d.FileCount)
			}
			if d.DataSizeBytes != nil {
				approx := ""
				if d.SizeEstimated {
					approx = "~"
				}
				fmt.Fprintf(w, "    size: %s%s\n", approx, FormatSize(*d.DataSizeBytes))
			}
			if d.SampledFile != "" {
				fmt.Fprintf(w, "    sampled: %s\n", d.SampledFile)
			}
			if len(d.ArchiveFiles) > 0 {
				fmt.Fprintf(w, "    archives: %v\n", d.ArchiveFiles)
			}
			if d.Note != "" {
				fmt.Fprintf(w, "    note: %s\n", d.Note)
			}
			for _, reason := range d.Reasons {
				fmt.Fprintf(w, "    reason: %s\n", reason)
			}
			if len(d.SubdirNames) > 0 {
				fmt.Fprintf(w, "    subdirs: %v\n", d.SubdirNames)
			}
			for _, ext := range sortedKeys(d.FileExtensions) {
				fmt.Fprintf(w, "    ext %s: %d\n", ext, d.FileExtensions[ext])
			}
			for _, dir := range d.InaccessibleDirs {
				fmt.Fprintf(w, "    unreadable: %s\n", dir)
			}
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
