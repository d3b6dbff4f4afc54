package types

// FormatDetail describes one detected format within a run directory.
type FormatDetail struct {
	// Directories lists the absolute paths contributing to this format.
	Directories []string
	// FolderVariants holds the sorted unique base names of those directories
	// (e.g. "fast5_fail", "fast5_pass").
	FolderVariants []string

	// FileCount and DataSizeBytes are nil in quick mode, when the
	// contributing directories could not be read, or for formats that carry
	// no countable files (top-level archives).
	FileCount     *int64
	DataSizeBytes *int64
	// SizeEstimated is set when DataSizeBytes was extrapolated from a stat
	// sample instead of summed exactly.
	SizeEstimated bool

	// SampledFile is the full path of the one file used for size
	// classification and chemistry extraction, when a file was sampled.
	SampledFile string
	// Layout distinguishes the bare-file fast5 layouts: "root" for .fast5
	// files directly in the run directory, "numeric_subdirs" for files under
	// 0/, 1/, 2/ style subdirectories.
	Layout string

	// ArchiveFiles lists archive base names when the format was inferred
	// from compressed archives.
	ArchiveFiles []string

	Note             string
	InaccessibleDirs []string

	// Diagnostic fields, populated only for the unknown terminal state.
	Reasons        []string
	SubdirNames    []string
	FileExtensions map[string]int
}

// SetFileCount records an exact or estimated file count.
func (d *FormatDetail) SetFileCount(n int64) {
	d.FileCount = &n
}

// SetDataSize records the total data size in bytes.
func (d *FormatDetail) SetDataSize(n int64) {
	d.DataSizeBytes = &n
}

// RawChemistry holds the metadata attributes read from one sampled data file.
// Flowcell and Kit are normalized to uppercase; SampleRate is 0 when unknown.
type RawChemistry struct {
	Flowcell   string
	Kit        string
	SampleRate int
}

// Analyte values for ChemistryResult.
const (
	AnalyteDNA = "dna"
	AnalyteRNA = "rna"
)

// ChemistryResult is the normalized classification derived from RawChemistry.
type ChemistryResult struct {
	// Pore is the hardware generation tag ("R9.4.1", "R10.4.1", ...) or
	// "unknown" when no lookup matched.
	Pore    string
	Analyte string
	// DoradoVersion is the recommended basecaller version, empty when the
	// pore is unknown.
	DoradoVersion string
	// ModelHint is the suggested basecalling model quality tier.
	ModelHint string
	// Note carries a human-readable caveat, e.g. for legacy sample rates.
	Note string
}

// RunRecord is the per-run analysis result.
//
// Formats is ordered by detection priority; Details maps each detected tag
// to its FormatDetail. Chemistry and Classification are nil unless metadata
// extraction succeeded from a sampled file. A record is populated during one
// AnalyzeRun call and treated as immutable afterwards.
type RunRecord struct {
	Name    string
	Path    string
	Formats []Format
	Details map[Format]*FormatDetail

	Chemistry      *RawChemistry
	Classification *ChemistryResult
}

// NewRunRecord creates an empty record for the given run directory.
func NewRunRecord(name, path string) *RunRecord {
	return &RunRecord{
		Name:    name,
		Path:    path,
		Details: make(map[Format]*FormatDetail),
	}
}

// AddFormat appends a format tag with its detail, preserving detection order.
func (r *RunRecord) AddFormat(f Format, d *FormatDetail) {
	r.Formats = append(r.Formats, f)
	if d == nil {
		d = &FormatDetail{}
	}
	r.Details[f] = d
}

// HasFormat reports whether the run carries the given format tag.
func (r *RunRecord) HasFormat(f Format) bool {
	for _, tag := range r.Formats {
		if tag == f {
			return true
		}
	}
	return false
}

// Primary returns the first detected format, or FormatUnknown for an empty
// record.
func (r *RunRecord) Primary() Format {
	if len(r.Formats) == 0 {
		return FormatUnknown
	}
	return r.Formats[0]
}

// TotalSizeBytes sums the known data sizes across all detected formats.
func (r *RunRecord) TotalSizeBytes() int64 {
	var total int64
	for _, d := range r.Details {
		if d.DataSizeBytes != nil {
			total += *d.DataSizeBytes
		}
	}
	return total
}
