package scanner

import "github.com/druvus/nanopore-format-checker/internal/types"

// MultiReadThreshold is the file size, in bytes, at and above which a fast5
// container is classified as multi-read. Single-read files typically run
// 1-50 KB while multi-read containers bundle hundreds of reads per file, so
// size is a reliable proxy that avoids opening the HDF5 structure of every
// sampled file. This is a heuristic, not a guarantee.
const MultiReadThreshold = 1 << 20

// ClassifyBySize decides the fast5 sub-variant from a sampled file's size.
func ClassifyBySize(size int64) types.Format {
	if size >= MultiReadThreshold {
		return types.FormatMultiFast5
	}
	return types.FormatSingleFast5
}
