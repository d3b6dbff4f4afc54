// Package convert generates bash scripts and console hints for moving runs
// between nanopore read formats.
package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/druvus/nanopore-format-checker/internal/types"
)

// Target is a conversion destination format.
type Target string

const (
	TargetPod5        Target = "pod5"
	TargetSingleFast5 Target = "single_fast5"
)

// ParseTarget validates a target format name.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetPod5, TargetSingleFast5:
		return Target(s), nil
	default:
		return "", fmt.Errorf("unsupported conversion target %q (want pod5 or single_fast5)", s)
	}
}

// DefaultThreads is the worker count passed to the conversion tools.
const DefaultThreads = 20

// Script renders a bash conversion script for every analyzed run not
// already in the target format. When outputDir is empty, converted data is
// written alongside the originals inside each run folder; otherwise it goes
// to outputDir/<run_name>/<format>/, leaving the source tree untouched.
func Script(results *orderedmap.OrderedMap[string, *types.RunRecord], target Target, outputDir string, threads int) string {
	if threads <= 0 {
		threads = DefaultThreads
	}

	lines := []string{
		"#!/usr/bin/env bash",
		"# Auto-generated nanopore format conversion script",
		fmt.Sprintf("# Target format: %s", target),
		"set -euo pipefail",
		"",
	}

	for el := results.Front(); el != nil; el = el.Next() {
		rec := el.Value
		outBase := rec.Path
		if outputDir != "" {
			outBase = filepath.Join(outputDir, rec.Name)
		}

		for _, f := range rec.Formats {
			if string(f) == string(target) {
				continue // already in target format
			}
			switch {
			case target == TargetPod5 && f == types.FormatMultiFast5:
				lines = append(lines, multiToPod5(rec, outBase, threads)...)
			case target == TargetPod5 && f == types.FormatSingleFast5:
				lines = append(lines, singleToPod5(rec, outBase, threads)...)
			case target == TargetSingleFast5 && f == types.FormatMultiFast5:
				lines = append(lines, multiToSingle(rec, outBase, threads)...)
			case f == types.FormatArchive:
				lines = append(lines, archiveNotice(rec)...)
			}
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

// multiToPod5 converts a whole run folder of multi-read fast5 directly.
func multiToPod5(rec *types.RunRecord, outBase string, threads int) []string {
	out := filepath.Join(outBase, "pod5")
	return []string{
		fmt.Sprintf("echo 'Converting %s (multi_read_fast5 -> pod5)...'", rec.Name),
		fmt.Sprintf("mkdir -p '%s'", out),
		fmt.Sprintf("pod5 convert fast5 '%s/' --output '%s/' --recursive --threads %d", rec.Path, out, threads),
		"",
	}
}

// singleToPod5 needs two steps: the pod5 converter cannot read single-read
// containers, so reads are first bundled into multi-read files under a
// temporary directory.
func singleToPod5(rec *types.RunRecord, outBase string, threads int) []string {
	tmp := filepath.Join(outBase, "multi_fast5_tmp")
	out := filepath.Join(outBase, "pod5")
	return []string{
		fmt.Sprintf("echo 'Converting %s (single_read_fast5 -> pod5) in two steps...'", rec.Name),
		fmt.Sprintf("mkdir -p '%s'", tmp),
		fmt.Sprintf("single_to_multi_fast5 -i '%s' -s '%s' -t %d --recursive", rec.Path, tmp, threads),
		fmt.Sprintf("mkdir -p '%s'", out),
		fmt.Sprintf("pod5 convert fast5 '%s/' --output '%s/' --recursive --threads %d", tmp, out, threads),
		"",
	}
}

func multiToSingle(rec *types.RunRecord, outBase string, threads int) []string {
	out := filepath.Join(outBase, "single_fast5")
	return []string{
		fmt.Sprintf("echo 'Converting %s (multi_read_fast5 -> single_fast5)...'", rec.Name),
		fmt.Sprintf("mkdir -p '%s'", out),
		fmt.Sprintf("multi_to_single_fast5 --input_path '%s' --save_path '%s' --recursive -t %d", rec.Path, out, threads),
		"",
	}
}

func archiveNotice(rec *types.RunRecord) []string {
	d := rec.Details[types.FormatArchive]
	lines := []string{
		fmt.Sprintf("# %s: extract archives before conversion (assumed single-read fast5)", rec.Name),
	}
	for _, name := range d.ArchiveFiles {
		lines = append(lines, fmt.Sprintf("#   tar -xzf '%s'", filepath.Join(rec.Path, name)))
	}
	lines = append(lines, "")
	return lines
}

// Hints returns the manual conversion suggestions printed in verbose mode
// for one detected format.
func Hints(f types.Format) []string {
	switch f {
	case types.FormatMultiFast5:
		return []string{
			"To pod5:          pod5 convert fast5 ./fast5_dir/ --output ./pod5_dir/",
			"To single_fast5:  multi_to_single_fast5 --input_path multi/ --save_path single/",
		}
	case types.FormatSingleFast5:
		return []string{
			"To pod5 (two steps): single_to_multi_fast5 --input_path single/ --save_path multi/",
			"                     pod5 convert fast5 multi/ --output ./pod5_dir/",
		}
	case types.FormatPod5:
		return []string{
			"To fast5:         pod5 convert to_fast5 input.pod5 --output ./fast5_dir/",
			"Inspect:          pod5 inspect reads input.pod5",
			"Merge:            pod5 merge output.pod5 input1.pod5 input2.pod5",
		}
	case types.FormatArchive:
		return []string{
			"Extract first:    tar -xzf archive.tar.gz, then re-scan",
		}
	default:
		return nil
	}
}
