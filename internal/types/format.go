// Package types defines the data model shared by the scanner, chemistry
// classifier, and reporting layers.
package types

// Format identifies a read data format detected inside a run directory.
type Format string

const (
	FormatPod5         Format = "pod5"
	FormatMultiFast5   Format = "multi_read_fast5"
	FormatSingleFast5  Format = "single_read_fast5"
	FormatFast5Unknown Format = "fast5_unknown"
	FormatFastq        Format = "fastq"
	FormatArchive      Format = "compressed_archive"
	FormatUnknown      Format = "unknown"
)

// AllFormats returns every format tag in detection priority order.
// Used for summary rendering so counts always appear in a stable order.
func AllFormats() []Format {
	return []Format{
		FormatPod5,
		FormatMultiFast5,
		FormatSingleFast5,
		FormatFast5Unknown,
		FormatFastq,
		FormatArchive,
		FormatUnknown,
	}
}

// IsFast5 reports whether the format is one of the fast5 sub-variants.
func (f Format) IsFast5() bool {
	return f == FormatMultiFast5 || f == FormatSingleFast5 || f == FormatFast5Unknown
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}
