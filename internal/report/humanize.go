// Package report renders run analysis results as console tables, summaries,
// and machine-readable TSV.
package report

import "fmt"

// sizeUnits in base-1024 steps.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize renders a byte count in human-readable base-1024 units.
// Sub-kilobyte values are printed without a decimal.
func FormatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}
