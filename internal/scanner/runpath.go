// Package scanner locates nanopore run directories, discovers their format
// structure, and assembles per-run analysis records.
package scanner

import (
	"io"
	"os"
	"regexp"
	"strings"
)

// runDirPattern matches the instrument naming convention: an 8-digit date
// stamp followed by an underscore.
var runDirPattern = regexp.MustCompile(`^\d{8}_`)

// IsRunDir reports whether a directory name denotes a collectable run.
// Pure string predicate, no I/O.
func IsRunDir(name string) bool {
	return runDirPattern.MatchString(name)
}

// archiveExts lists recognized archive suffixes, longest first so
// TrimArchiveExt strips ".tar.gz" before ".gz".
var archiveExts = []string{".tar.gz", ".tgz", ".tar", ".gz"}

// IsArchiveName reports whether a file name has an archive extension.
func IsArchiveName(name string) bool {
	for _, ext := range archiveExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// TrimArchiveExt strips the archive extension from a file name, yielding
// the run name for top-level archives.
func TrimArchiveExt(name string) string {
	for _, ext := range archiveExts {
		if strings.HasSuffix(name, ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

var (
	numericDirPattern = regexp.MustCompile(`^\d+$`)
	barcodeDirPattern = regexp.MustCompile(`^barcode\d+$`)
)

// Format-indicating directory names: the bare format name or the name with
// a suffix variant (fast5_pass, fast5_fail, pod5_skip, ...).

func isPod5DirName(name string) bool {
	return name == "pod5" || strings.HasPrefix(name, "pod5_")
}

func isFast5DirName(name string) bool {
	return name == "fast5" || strings.HasPrefix(name, "fast5_")
}

func isFastqDirName(name string) bool {
	return name == "fastq" || strings.HasPrefix(name, "fastq_")
}

// scanBatchSize bounds how many directory entries are fetched per syscall
// batch. Iteration can stop after any batch, so sampling a directory with
// 100k+ files never lists it in full.
const scanBatchSize = 128

// iterDir streams the entries of dir to fn in batches; fn returns false to
// stop early. The returned error is non-nil only when the directory itself
// cannot be opened.
func iterDir(dir string, fn func(entry os.DirEntry) bool) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	for {
		entries, err := f.ReadDir(scanBatchSize)
		for _, e := range entries {
			if !fn(e) {
				return nil
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			// Mid-iteration failure: keep what was seen so far.
			return nil
		}
	}
}

// checkReadable reports whether a directory can be opened for listing.
func checkReadable(dir string) bool {
	f, err := os.Open(dir)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
