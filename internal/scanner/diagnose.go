package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/druvus/nanopore-format-checker/internal/types"
)

// diagnoseEntryBudget caps how many directory entries the deep scan for
// misplaced data files will visit before giving up.
const diagnoseEntryBudget = 5000

// Diagnose explains why no known format was found under runRoot. It records
// the top-level subdirectory names, a census of file extensions, any
// unreadable subdirectories, and whether data files exist in unexpected
// places. The scan is budgeted so a huge unknown tree cannot stall a scan.
func Diagnose(runRoot string) *types.FormatDetail {
	detail := &types.FormatDetail{
		FileExtensions: map[string]int{},
	}

	var subdirs []string
	empty := true
	err := iterDir(runRoot, func(e os.DirEntry) bool {
		empty = false
		if e.IsDir() {
			subdirs = append(subdirs, e.Name())
		} else {
			detail.FileExtensions[extKey(e.Name())]++
		}
		return true
	})
	if err != nil {
		detail.Reasons = append(detail.Reasons, "permission denied reading run directory")
		return detail
	}
	if empty {
		detail.Reasons = append(detail.Reasons, "run directory is empty")
		return detail
	}

	sort.Strings(subdirs)
	detail.SubdirNames = subdirs
	for _, name := range subdirs {
		full := filepath.Join(runRoot, name)
		if !checkReadable(full) {
			detail.InaccessibleDirs = append(detail.InaccessibleDirs, full)
		}
	}
	if len(detail.InaccessibleDirs) > 0 {
		detail.Reasons = append(detail.Reasons,
			fmt.Sprintf("permission denied on %d subdirectory(s)", len(detail.InaccessibleDirs)))
	}

	misplaced, stopped := findMisplacedData(runRoot)
	if len(misplaced) > 0 {
		detail.Reasons = append(detail.Reasons,
			fmt.Sprintf("data files found outside standard folders: %s", strings.Join(misplaced, ", ")))
	}
	if stopped {
		detail.Reasons = append(detail.Reasons, "sampling stopped; directory too large to scan fully")
	}
	if len(detail.Reasons) == 0 {
		detail.Reasons = append(detail.Reasons, "no fast5, pod5, fastq or archive content recognized")
	}
	return detail
}

// findMisplacedData walks the tree breadth-first looking for .fast5 or
// .pod5 files outside the standard bucket directories. It returns the
// directories holding such files (relative to root, sorted) and whether
// the entry budget was exhausted before the walk finished.
func findMisplacedData(root string) ([]string, bool) {
	budget := diagnoseEntryBudget
	seen := make(map[string]bool)
	queue := []string{root}
	stopped := false

	for len(queue) > 0 && !stopped {
		dir := queue[0]
		queue = queue[1:]
		_ = iterDir(dir, func(e os.DirEntry) bool {
			budget--
			if budget <= 0 {
				stopped = true
				return false
			}
			name := e.Name()
			if e.IsDir() {
				if !isPod5DirName(name) && !isFast5DirName(name) && !isFastqDirName(name) {
					queue = append(queue, filepath.Join(dir, name))
				}
				return true
			}
			ext := strings.ToLower(filepath.Ext(name))
			if ext == ".fast5" || ext == ".pod5" {
				rel, err := filepath.Rel(root, dir)
				if err != nil {
					rel = dir
				}
				seen[rel] = true
			}
			return true
		})
	}

	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs, stopped
}

func extKey(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return "(no extension)"
	}
	return ext
}
