package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// Sample is one representative data file.
type Sample struct {
	Path string
	Size int64
	// FromSubdir is set when the file came from a barcode or numeric
	// subdirectory rather than the sampled directory itself.
	FromSubdir bool
}

// SampleFile retrieves exactly one file with the given extension from dir
// without listing the directory in full. When dir holds no matching file
// but contains barcode-style or numeric subdirectories, it descends one
// level into them. Returns (nil, nil) when nothing matched; the error is
// non-nil only when dir itself is unreadable.
func SampleFile(dir, ext string) (*Sample, error) {
	var sample *Sample
	var subdirs []string

	err := iterDir(dir, func(e os.DirEntry) bool {
		name := e.Name()
		if e.IsDir() {
			if barcodeDirPattern.MatchString(name) || numericDirPattern.MatchString(name) {
				subdirs = append(subdirs, filepath.Join(dir, name))
			}
			return true
		}
		if strings.HasSuffix(name, ext) {
			if info, ierr := e.Info(); ierr == nil {
				sample = &Sample{Path: filepath.Join(dir, name), Size: info.Size()}
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if sample != nil {
		return sample, nil
	}

	for _, sub := range subdirs {
		if s := firstFileWithExt(sub, ext); s != nil {
			s.FromSubdir = true
			return s, nil
		}
	}
	return nil, nil
}

// firstFileWithExt returns the first matching file directly inside dir, or
// nil. Unreadable directories yield nil.
func firstFileWithExt(dir, ext string) *Sample {
	var sample *Sample
	_ = iterDir(dir, func(e os.DirEntry) bool {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			return true
		}
		if info, err := e.Info(); err == nil {
			sample = &Sample{Path: filepath.Join(dir, e.Name()), Size: info.Size()}
			return false
		}
		return true
	})
	return sample
}
