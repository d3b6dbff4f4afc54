package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/druvus/nanopore-format-checker/internal/types"
)

// Results holds analyzed runs keyed by run name, in scan order.
type Results = orderedmap.OrderedMap[string, *types.RunRecord]

var tableHeaders = []string{"RUN", "FORMATS", "FILES", "SIZE", "PORE", "DORADO"}

// Table writes an aligned console table of all runs. Colors are applied to
// the format column only when useColor is set.
func Table(w io.Writer, results *Results, useColor bool) {
	rows := make([][]string, 0, results.Len())
	recs := make([]*types.RunRecord, 0, results.Len())
	for el := results.Front(); el != nil; el = el.Next() {
		rows = append(rows, tableRow(el.Value))
		recs = append(recs, el.Value)
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow(w, tableHeaders, widths, nil)
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	writeRow(w, sep, widths, nil)

	for r, row := range rows {
		var colors []func(string) string
		if useColor {
			colors = rowColors(recs[r])
		}
		writeRow(w, row, widths, colors)
	}
}

func tableRow(rec *types.RunRecord) []string {
	formats := make([]string, 0, len(rec.Formats))
	for _, f := range rec.Formats {
		formats = append(formats, f.String())
	}

	files := "-"
	size := "-"
	if count, ok := totalFileCount(rec); ok {
		files = fmt.Sprintf("%d", count)
	}
	if total := rec.TotalSizeBytes(); total > 0 {
		size = FormatSize(total)
		if anyEstimated(rec) {
			size = "~" + size
		}
	}

	pore := "-"
	dorado := "-"
	if rec.Classification != nil {
		if rec.Classification.Pore != "" {
			pore = rec.Classification.Pore
		}
		if rec.Classification.DoradoVersion != "" {
			dorado = rec.Classification.DoradoVersion
		}
	}

	return []string{rec.Name, strings.Join(formats, ","), files, size, pore, dorado}
}

// totalFileCount sums known counts; ok is false when no format carried one.
func totalFileCount(rec *types.RunRecord) (int64, bool) {
	var total int64
	found := false
	for _, d := range rec.Details {
		if d.FileCount != nil {
			total += *d.FileCount
			found = true
		}
	}
	return total, found
}

func anyEstimated(rec *types.RunRecord) bool {
	for _, d := range rec.Details {
		if d.SizeEstimated {
			return true
		}
	}
	return false
}

// rowColors returns a per-column colorizer slice for one record: the
// formats column is tinted by the primary format, the dorado column by
// whether a recommendation exists.
func rowColors(rec *types.RunRecord) []func(string) string {
	if rec == nil {
		return nil
	}
	colors := make([]func(string) string, len(tableHeaders))
	colors[1] = formatColor(rec.Primary())
	if rec.Classification != nil && rec.Classification.DoradoVersion != "" {
		colors[5] = color.Green.Text
	}
	return colors
}

func formatColor(f types.Format) func(string) string {
	switch f {
	case types.FormatPod5:
		return color.Green.Text
	case types.FormatMultiFast5:
		return color.Cyan.Text
	case types.FormatSingleFast5:
		return color.Yellow.Text
	case types.FormatFast5Unknown, types.FormatUnknown:
		return color.Red.Text
	case types.FormatArchive:
		return color.Magenta.Text
	default:
		return nil
	}
}

// writeRow renders one row with runewidth-aware padding. colors, when
// non-nil, maps column index to a colorizer applied after padding is
// computed so escape codes never skew alignment.
func writeRow(w io.Writer, cells []string, widths []int, colors []func(string) string) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
		text := cell
		if colors != nil && colors[i] != nil {
			text = colors[i](cell)
		}
		parts[i] = text + pad
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
}
