package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// MaxDiscoveryDepth bounds how many directory levels below the run root are
// searched for format-indicating subdirectories.
const MaxDiscoveryDepth = 5

// Layout values for bare fast5 files found outside a fast5/ subdirectory.
const (
	LayoutRoot           = "root"
	LayoutNumericSubdirs = "numeric_subdirs"
)

// StructureIndex categorizes everything one discovery walk found under a
// run root.
type StructureIndex struct {
	Pod5Dirs  []string
	Fast5Dirs []string
	FastqDirs []string

	// Archives holds archive files found anywhere within the walk depth.
	Archives []string

	// BareFast5 is the first .fast5 file found directly in the run root or
	// inside an immediate numeric-named subdirectory (the legacy
	// single-read layout); BareFast5Layout records which.
	BareFast5         *Sample
	BareFast5Layout   string
	HasNumericSubdirs bool

	// Unreadable lists directories the walk could not open. RootUnreadable
	// is set when the run root itself is inaccessible.
	Unreadable     []string
	RootUnreadable bool
}

// Discover runs one breadth-first walk over the run directory, bounded to
// MaxDiscoveryDepth levels. Format-indicating directories are leaves: the
// walk records them and never descends into their contents, so traversal
// cost is bounded by directory count, not file count. Permission errors are
// recorded, never raised.
func Discover(runRoot string) *StructureIndex {
	idx := &StructureIndex{}

	type queueItem struct {
		path  string
		depth int
	}
	queue := []queueItem{{path: runRoot, depth: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		err := iterDir(item.path, func(e os.DirEntry) bool {
			name := e.Name()
			full := filepath.Join(item.path, name)

			if e.IsDir() {
				switch {
				case isPod5DirName(name):
					idx.Pod5Dirs = append(idx.Pod5Dirs, full)
				case isFast5DirName(name):
					idx.Fast5Dirs = append(idx.Fast5Dirs, full)
				case isFastqDirName(name):
					idx.FastqDirs = append(idx.FastqDirs, full)
				case item.depth == 0 && numericDirPattern.MatchString(name):
					// Legacy single-read layout: 0/, 1/, 2/ holding one
					// read per file. Peek for a sample, do not walk.
					idx.HasNumericSubdirs = true
					if idx.BareFast5 == nil {
						if s := firstFileWithExt(full, ".fast5"); s != nil {
							idx.BareFast5 = s
							idx.BareFast5Layout = LayoutNumericSubdirs
						}
					}
				default:
					if item.depth+1 < MaxDiscoveryDepth {
						queue = append(queue, queueItem{path: full, depth: item.depth + 1})
					}
				}
				return true
			}

			if IsArchiveName(name) {
				idx.Archives = append(idx.Archives, full)
			} else if item.depth == 0 && idx.BareFast5 == nil && strings.HasSuffix(name, ".fast5") {
				if info, ierr := e.Info(); ierr == nil {
					idx.BareFast5 = &Sample{Path: full, Size: info.Size()}
					idx.BareFast5Layout = LayoutRoot
				}
			}
			return true
		})
		if err != nil {
			if item.depth == 0 {
				idx.RootUnreadable = true
				return idx
			}
			idx.Unreadable = append(idx.Unreadable, item.path)
		}
	}
	return idx
}
