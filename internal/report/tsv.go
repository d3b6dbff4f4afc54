package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/druvus/nanopore-format-checker/internal/types"
)

// tsvHeader is the fixed column layout consumed by downstream pipelines.
// Order matters.
var tsvHeader = []string{
	"run_name",
	"format",
	"file_count",
	"data_size_bytes",
	"size_estimated",
	"directories",
	"notes",
	"flowcell_code",
	"sequencing_kit",
	"sample_rate",
	"pore_type",
	"dorado_version",
}

// WriteTSV emits one row per (run, format) pair. Chemistry columns repeat
// the run-level values on every row of that run; unknown values are empty.
func WriteTSV(w io.Writer, results *Results) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(tsvHeader); err != nil {
		return fmt.Errorf("failed to write TSV header: %w", err)
	}

	for el := results.Front(); el != nil; el = el.Next() {
		rec := el.Value
		for _, f := range rec.Formats {
			if err := cw.Write(tsvRow(rec, f)); err != nil {
				return fmt.Errorf("failed to write TSV row for %s: %w", rec.Name, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func tsvRow(rec *types.RunRecord, f types.Format) []string {
	d := rec.Details[f]

	fileCount := ""
	if d.FileCount != nil {
		fileCount = fmt.Sprintf("%d", *d.FileCount)
	}
	dataSize := ""
	if d.DataSizeBytes != nil {
		dataSize = fmt.Sprintf("%d", *d.DataSizeBytes)
	}
	estimated := "false"
	if d.SizeEstimated {
		estimated = "true"
	}

	notes := d.Note
	if len(d.Reasons) > 0 {
		if notes != "" {
			notes += "; "
		}
		notes += strings.Join(d.Reasons, "; ")
	}

	flowcell, kit, rate := "", "", ""
	if rec.Chemistry != nil {
		flowcell = rec.Chemistry.Flowcell
		kit = rec.Chemistry.Kit
		if rec.Chemistry.SampleRate > 0 {
			rate = fmt.Sprintf("%d", rec.Chemistry.SampleRate)
		}
	}
	pore, dorado := "", ""
	if rec.Classification != nil {
		pore = rec.Classification.Pore
		dorado = rec.Classification.DoradoVersion
	}

	return []string{
		rec.Name,
		f.String(),
		fileCount,
		dataSize,
		estimated,
		strings.Join(d.Directories, ";"),
		notes,
		flowcell,
		kit,
		rate,
		pore,
		dorado,
	}
}
