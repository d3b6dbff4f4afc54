package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// defaultSizeSample is how many files are stat'ed before switching from
// exact summation to extrapolation.
const defaultSizeSample = 64

// EstimateDirSize counts files matching any of the given extensions under
// dir, recursively, and totals their sizes. Counting reads only entry names;
// at most sampleSize files are stat'ed. When more files match than were
// sampled, the total is extrapolated from the sample mean and estimated is
// true. Unreadable subdirectories are skipped. Compound extensions like
// ".fastq.gz" are supported.
func EstimateDirSize(dir string, sampleSize int, exts ...string) (count, size int64, estimated bool) {
	if sampleSize <= 0 {
		sampleSize = defaultSizeSample
	}

	var sampled, sampledBytes int64
	var walk func(d string)
	walk = func(d string) {
		_ = iterDir(d, func(e os.DirEntry) bool {
			if e.IsDir() {
				walk(filepath.Join(d, e.Name()))
				return true
			}
			if !matchesExt(e.Name(), exts) {
				return true
			}
			count++
			if sampled < int64(sampleSize) {
				if info, err := e.Info(); err == nil {
					sampled++
					sampledBytes += info.Size()
				}
			}
			return true
		})
	}
	walk(dir)

	if count == 0 || sampled == 0 {
		return count, 0, false
	}
	if count > sampled {
		mean := float64(sampledBytes) / float64(sampled)
		return count, int64(mean * float64(count)), true
	}
	return count, sampledBytes, false
}

func matchesExt(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
