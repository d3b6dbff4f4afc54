package scanner

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/druvus/nanopore-format-checker/internal/chemistry"
	"github.com/druvus/nanopore-format-checker/internal/logger"
	"github.com/druvus/nanopore-format-checker/internal/metadata"
	"github.com/druvus/nanopore-format-checker/internal/types"
)

// Options controls per-run analysis behavior.
type Options struct {
	// Quick skips file counting and size computation.
	Quick bool
}

// Analyzer inspects run directories and produces RunRecords. It holds no
// mutable state beyond read-only collaborators, so one Analyzer may be
// shared across concurrent AnalyzeRun calls for distinct run roots.
type Analyzer struct {
	readers *metadata.Registry
	log     *logger.Logger
	opts    Options
}

// NewAnalyzer creates an analyzer. Nil readers or logger fall back to the
// defaults (no native metadata readers, info-level logging).
func NewAnalyzer(readers *metadata.Registry, log *logger.Logger, opts Options) *Analyzer {
	if readers == nil {
		readers = metadata.Default()
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Analyzer{readers: readers, log: log, opts: opts}
}

// AnalyzeRun inspects one run directory and returns its record.
//
// Detection priority: pod5 directories, fast5 directories, bare fast5 files
// (run root or numeric subdirectories), compressed archives, unknown. fastq
// directories are recorded additionally whichever branch fires. The method
// never fails: unreadable directories and malformed metadata surface as
// per-run diagnostics on the record.
func (a *Analyzer) AnalyzeRun(runRoot string) *types.RunRecord {
	rec := types.NewRunRecord(filepath.Base(runRoot), runRoot)
	log := a.log.WithRun(rec.Name)

	idx := Discover(runRoot)
	if idx.RootUnreadable {
		log.Warnf("run directory unreadable: %s", runRoot)
		rec.AddFormat(types.FormatUnknown, &types.FormatDetail{
			Reasons: []string{"permission denied reading run directory"},
		})
		return rec
	}

	// Chemistry comes from the first successful extraction in priority
	// order; pod5 outranks fast5.
	var chem *types.RawChemistry

	if len(idx.Pod5Dirs) > 0 {
		chem = a.addPod5(rec, idx, chem)
	}
	if len(idx.Fast5Dirs) > 0 {
		chem = a.addFast5Dirs(rec, idx, chem)
	} else if idx.BareFast5 != nil {
		chem = a.addBareFast5(rec, idx, chem)
	}
	if len(idx.FastqDirs) > 0 {
		a.addFastq(rec, idx)
	}
	if !hasReadData(rec) && len(idx.Archives) > 0 {
		a.addArchives(rec, idx)
	}
	if len(rec.Formats) == 0 {
		log.Debugf("no known format under %s, collecting diagnostics", runRoot)
		rec.AddFormat(types.FormatUnknown, Diagnose(runRoot))
	}

	if chem != nil {
		rec.Chemistry = chem
		result := chemistry.Classify(*chem)
		rec.Classification = &result
		log.Debugf("chemistry: flowcell=%s kit=%s rate=%d pore=%s",
			chem.Flowcell, chem.Kit, chem.SampleRate, result.Pore)
	}
	return rec
}

// hasReadData reports whether any raw read data format was detected.
// fastq does not count: basecalled output alone does not rule archives out.
func hasReadData(rec *types.RunRecord) bool {
	for _, f := range rec.Formats {
		if f == types.FormatPod5 || f.IsFast5() {
			return true
		}
	}
	return false
}

func (a *Analyzer) addPod5(rec *types.RunRecord, idx *StructureIndex, chem *types.RawChemistry) *types.RawChemistry {
	detail := &types.FormatDetail{
		Directories:    idx.Pod5Dirs,
		FolderVariants: variantNames(idx.Pod5Dirs),
	}

	sample, unreadable := sampleAcross(idx.Pod5Dirs, ".pod5")
	detail.InaccessibleDirs = unreadable
	if sample != nil {
		detail.SampledFile = sample.Path
		if chem == nil {
			chem = a.readers.Extract(sample.Path, types.FormatPod5)
		}
	}

	if !a.opts.Quick {
		count, size, estimated := estimateAcross(idx.Pod5Dirs, ".pod5")
		detail.SetFileCount(count)
		detail.SetDataSize(size)
		detail.SizeEstimated = estimated
		if len(unreadable) > 0 {
			detail.Note = fmt.Sprintf("Permission denied on %d pod5 dir(s)", len(unreadable))
		} else if count == 0 {
			detail.Note = "Empty pod5 folder(s) found"
		}
	} else if len(unreadable) > 0 {
		detail.Note = fmt.Sprintf("Permission denied on %d pod5 dir(s)", len(unreadable))
	}

	rec.AddFormat(types.FormatPod5, detail)
	return chem
}

func (a *Analyzer) addFast5Dirs(rec *types.RunRecord, idx *StructureIndex, chem *types.RawChemistry) *types.RawChemistry {
	detail := &types.FormatDetail{
		Directories:    idx.Fast5Dirs,
		FolderVariants: variantNames(idx.Fast5Dirs),
	}

	sample, unreadable := sampleAcross(idx.Fast5Dirs, ".fast5")
	detail.InaccessibleDirs = unreadable

	if sample == nil {
		// Directories exist but yielded no file: single vs multi cannot
		// be decided.
		if len(unreadable) > 0 {
			detail.Note = fmt.Sprintf("Permission denied on %d fast5 dir(s); format unknown", len(unreadable))
		} else {
			detail.Note = "Empty fast5 folder(s) found; format unknown"
		}
		rec.AddFormat(types.FormatFast5Unknown, detail)
		return chem
	}

	format := ClassifyBySize(sample.Size)
	detail.SampledFile = sample.Path
	if format == types.FormatSingleFast5 {
		if sample.FromSubdir {
			detail.Note = "fast5 folder contains subdirs with single-read files"
		} else {
			detail.Note = "fast5 folder contains single-read files"
		}
	}
	if !a.opts.Quick {
		count, size, estimated := estimateAcross(idx.Fast5Dirs, ".fast5")
		detail.SetFileCount(count)
		detail.SetDataSize(size)
		detail.SizeEstimated = estimated
	}
	if chem == nil {
		chem = a.readers.Extract(sample.Path, format)
	}

	rec.AddFormat(format, detail)
	return chem
}

func (a *Analyzer) addBareFast5(rec *types.RunRecord, idx *StructureIndex, chem *types.RawChemistry) *types.RawChemistry {
	sample := idx.BareFast5
	format := ClassifyBySize(sample.Size)

	// The sampled path is stored fully qualified: downstream sampling
	// breaks on a bare file name without its directory.
	detail := &types.FormatDetail{
		Directories: []string{rec.Path},
		Layout:      idx.BareFast5Layout,
		SampledFile: sample.Path,
	}
	if !a.opts.Quick {
		count, size, estimated := EstimateDirSize(rec.Path, defaultSizeSample, ".fast5")
		detail.SetFileCount(count)
		detail.SetDataSize(size)
		detail.SizeEstimated = estimated
	}
	if chem == nil {
		chem = a.readers.Extract(sample.Path, format)
	}

	rec.AddFormat(format, detail)
	return chem
}

func (a *Analyzer) addFastq(rec *types.RunRecord, idx *StructureIndex) {
	detail := &types.FormatDetail{
		Directories:    idx.FastqDirs,
		FolderVariants: variantNames(idx.FastqDirs),
	}

	var unreadable []string
	for _, d := range idx.FastqDirs {
		if !checkReadable(d) {
			unreadable = append(unreadable, d)
		}
	}
	detail.InaccessibleDirs = unreadable

	if !a.opts.Quick {
		count, size, estimated := estimateAcross(idx.FastqDirs, ".fastq", ".fastq.gz", ".fq", ".fq.gz")
		detail.SetFileCount(count)
		detail.SetDataSize(size)
		detail.SizeEstimated = estimated
		if len(unreadable) > 0 {
			detail.Note = fmt.Sprintf("Permission denied on %d fastq dir(s)", len(unreadable))
		} else if count == 0 {
			detail.Note = "Empty fastq folder(s) found"
		}
	} else if len(unreadable) > 0 {
		detail.Note = fmt.Sprintf("Permission denied on %d fastq dir(s)", len(unreadable))
	}

	rec.AddFormat(types.FormatFastq, detail)
}

func (a *Analyzer) addArchives(rec *types.RunRecord, idx *StructureIndex) {
	names := make([]string, 0, len(idx.Archives))
	for _, p := range idx.Archives {
		names = append(names, filepath.Base(p))
	}
	rec.AddFormat(types.FormatArchive, &types.FormatDetail{
		Directories:  []string{rec.Path},
		ArchiveFiles: names,
		Note:         "Compressed archives found; assumed single-read fast5",
	})
}

// sampleAcross samples one file from the first readable directory in
// discovery order, then probes the remaining directories for readability
// without listing them.
func sampleAcross(dirs []string, ext string) (*Sample, []string) {
	var sample *Sample
	var unreadable []string
	for _, d := range dirs {
		if sample != nil {
			if !checkReadable(d) {
				unreadable = append(unreadable, d)
			}
			continue
		}
		s, err := SampleFile(d, ext)
		if err != nil {
			unreadable = append(unreadable, d)
			continue
		}
		if s != nil {
			sample = s
		}
	}
	return sample, unreadable
}

// estimateAcross sums file counts and sizes over several directories. The
// estimated flag is set when any directory's size was extrapolated.
func estimateAcross(dirs []string, exts ...string) (count, size int64, estimated bool) {
	for _, d := range dirs {
		c, s, est := EstimateDirSize(d, defaultSizeSample, exts...)
		count += c
		size += s
		estimated = estimated || est
	}
	return count, size, estimated
}

// variantNames returns the sorted unique base names of the given paths.
func variantNames(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	var names []string
	for _, d := range dirs {
		name := filepath.Base(d)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
