package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/druvus/nanopore-format-checker/internal/types"
)

func newResults(recs ...*types.RunRecord) *Results {
	results := orderedmap.NewOrderedMap[string, *types.RunRecord]()
	for _, rec := range recs {
		results.Set(rec.Name, rec)
	}
	return results
}

func pod5Record(name string, count, size int64) *types.RunRecord {
	rec := types.NewRunRecord(name, "/data/"+name)
	d := &types.FormatDetail{Directories: []string{"/data/" + name + "/pod5"}}
	d.SetFileCount(count)
	d.SetDataSize(size)
	rec.AddFormat(types.FormatPod5, d)
	return rec
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1 << 20, "1.0 MB"},
		{1 << 30, "1.0 GB"},
		{1 << 40, "1.0 TB"},
		{int64(3.5 * float64(1<<30)), "3.5 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.bytes), "bytes=%d", tt.bytes)
	}
}

func TestTableBasic(t *testing.T) {
	rec := pod5Record("20240101_run1", 42, 5<<20)
	rec.Classification = &types.ChemistryResult{Pore: "R10.4.1", DoradoVersion: ">=1.0"}

	var buf bytes.Buffer
	Table(&buf, newResults(rec), false)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3) // header, separator, one row

	assert.Contains(t, lines[0], "RUN")
	assert.Contains(t, lines[0], "DORADO")
	assert.Contains(t, lines[2], "20240101_run1")
	assert.Contains(t, lines[2], "pod5")
	assert.Contains(t, lines[2], "42")
	assert.Contains(t, lines[2], "5.0 MB")
	assert.Contains(t, lines[2], "R10.4.1")
	assert.Contains(t, lines[2], ">=1.0")
	assert.NotContains(t, out, "\x1b[", "plain mode must not emit escape codes")
}

func TestTableAlignment(t *testing.T) {
	short := pod5Record("a", 1, 1024)
	long := pod5Record("20240101_a_much_longer_run_name", 2, 2048)

	var buf bytes.Buffer
	Table(&buf, newResults(short, long), false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	// The FORMATS column starts at the same offset on every row.
	col := strings.Index(lines[0], "FORMATS")
	require.Positive(t, col)
	for _, line := range lines[2:] {
		assert.Equal(t, "pod5", line[col:col+4], "line: %q", line)
	}
}

func TestTableEstimatedAndMissing(t *testing.T) {
	est := pod5Record("20240101_est", 100, 1<<20)
	est.Details[types.FormatPod5].SizeEstimated = true

	unknown := types.NewRunRecord("20240101_unknown", "/data/u")
	unknown.AddFormat(types.FormatUnknown, &types.FormatDetail{Reasons: []string{"run directory is empty"}})

	var buf bytes.Buffer
	Table(&buf, newResults(est, unknown), false)

	out := buf.String()
	assert.Contains(t, out, "~1.0 MB")
	assert.Contains(t, out, "unknown")
	// The unknown run has no counts or chemistry.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "20240101_unknown") {
			assert.Contains(t, line, "-")
		}
	}
}

func TestTableColorGating(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, newResults(pod5Record("20240101_run1", 1, 1024)), true)
	// Color rendering may be stripped in non-TTY environments; the table
	// content must survive either way.
	assert.Contains(t, buf.String(), "20240101_run1")
}

func TestSummary(t *testing.T) {
	rec1 := pod5Record("20240101_a", 10, 1024)
	rec2 := pod5Record("20240101_b", 20, 2048)
	rec3 := types.NewRunRecord("20240101_c", "/data/c")
	rec3.AddFormat(types.FormatSingleFast5, &types.FormatDetail{})
	rec3.AddFormat(types.FormatFastq, &types.FormatDetail{})

	var buf bytes.Buffer
	Summary(&buf, newResults(rec1, rec2, rec3))

	out := buf.String()
	assert.Contains(t, out, "pod5")
	assert.Contains(t, out, "single_read_fast5")
	assert.Contains(t, out, "fastq")
	assert.Contains(t, out, "total runs")
	assert.Contains(t, out, "3")

	// Priority order: pod5 before single_read_fast5 before fastq.
	assert.Less(t, strings.Index(out, "pod5"), strings.Index(out, "single_read_fast5"))
	assert.Less(t, strings.Index(out, "single_read_fast5"), strings.Index(out, "fastq"))
}

func TestDetails(t *testing.T) {
	rec := pod5Record("20240101_run1", 5, 4096)
	rec.Details[types.FormatPod5].FolderVariants = []string{"pod5_fail", "pod5_pass"}
	rec.Details[types.FormatPod5].SampledFile = "/data/20240101_run1/pod5/a.pod5"
	rec.Chemistry = &types.RawChemistry{Flowcell: "FLO-MIN114", Kit: "SQK-LSK114", SampleRate: 5000}
	rec.Classification = &types.ChemistryResult{
		Pore: "R10.4.1", Analyte: "dna", DoradoVersion: ">=1.0", ModelHint: "sup",
	}

	var buf bytes.Buffer
	Details(&buf, newResults(rec))

	out := buf.String()
	assert.Contains(t, out, "FLO-MIN114")
	assert.Contains(t, out, "SQK-LSK114")
	assert.Contains(t, out, "sample_rate=5000")
	assert.Contains(t, out, "pod5_pass")
	assert.Contains(t, out, "sampled: /data/20240101_run1/pod5/a.pod5")
	assert.Contains(t, out, "model: sup")
}

func TestWriteTSVHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, newResults()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	cols := strings.Split(lines[0], "\t")
	assert.Equal(t, []string{
		"run_name", "format", "file_count", "data_size_bytes", "size_estimated",
		"directories", "notes", "flowcell_code", "sequencing_kit", "sample_rate",
		"pore_type", "dorado_version",
	}, cols)
}

func TestWriteTSVRows(t *testing.T) {
	rec := pod5Record("20240101_run1", 7, 9000)
	rec.AddFormat(types.FormatFastq, &types.FormatDetail{
		Directories: []string{"/data/20240101_run1/fastq_pass"},
		Note:        "Empty fastq folder(s) found",
	})
	rec.Chemistry = &types.RawChemistry{Flowcell: "FLO-MIN114", Kit: "SQK-LSK114", SampleRate: 5000}
	rec.Classification = &types.ChemistryResult{Pore: "R10.4.1", DoradoVersion: ">=1.0"}

	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, newResults(rec)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3) // header plus one row per format

	pod5Cols := strings.Split(lines[1], "\t")
	require.Len(t, pod5Cols, 12)
	assert.Equal(t, "20240101_run1", pod5Cols[0])
	assert.Equal(t, "pod5", pod5Cols[1])
	assert.Equal(t, "7", pod5Cols[2])
	assert.Equal(t, "9000", pod5Cols[3])
	assert.Equal(t, "false", pod5Cols[4])
	assert.Equal(t, "FLO-MIN114", pod5Cols[7])
	assert.Equal(t, "SQK-LSK114", pod5Cols[8])
	assert.Equal(t, "5000", pod5Cols[9])
	assert.Equal(t, "R10.4.1", pod5Cols[10])
	assert.Equal(t, ">=1.0", pod5Cols[11])

	fastqCols := strings.Split(lines[2], "\t")
	assert.Equal(t, "fastq", fastqCols[1])
	assert.Equal(t, "", fastqCols[2])
	assert.Equal(t, "Empty fastq folder(s) found", fastqCols[6])
	// Chemistry columns repeat on every row of the run.
	assert.Equal(t, "FLO-MIN114", fastqCols[7])
}

func TestWriteTSVReasonsJoined(t *testing.T) {
	rec := types.NewRunRecord("20240101_u", "/data/u")
	rec.AddFormat(types.FormatUnknown, &types.FormatDetail{
		Reasons: []string{"run directory is empty"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, newResults(rec)))

	assert.Contains(t, buf.String(), "run directory is empty")
}
