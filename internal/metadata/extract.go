package metadata

import (
	"errors"
	"strconv"
	"strings"

	"github.com/druvus/nanopore-format-checker/internal/types"
)

var errUnavailable = errors.New("metadata reader unavailable")

// singleReadGroup is the well-known attribute group of single-read fast5
// files. Multi-read files instead hold one top-level group per read, all
// with identical schema, so the first child group stands in for the file.
const singleReadGroup = "UniqueGlobalKey"

// attrRef names one attribute lookup relative to the per-read base group.
type attrRef struct {
	group string
	name  string
}

// Fallback chains for fast5 extraction, tried in order, first hit wins.
// The attribute vocabulary changed across MinKNOW releases: flowcell_type
// and sequencing_kit are the modern context_tags names, experiment_kit the
// historical one, and tracking_id carries the product code on instruments
// that never filled context_tags. channel_id/sampling_rate is the last
// resort signal for files with no identifying codes at all.
var (
	fast5FlowcellChain = []attrRef{
		{"context_tags", "flowcell_type"},
		{"tracking_id", "flow_cell_product_code"},
	}
	fast5KitChain = []attrRef{
		{"context_tags", "sequencing_kit"},
		{"context_tags", "experiment_kit"},
	}
	fast5RateChain = []attrRef{
		{"context_tags", "sample_frequency"},
		{"tracking_id", "sample_frequency"},
		{"channel_id", "sampling_rate"},
	}
)

// Extract reads chemistry attributes from the sampled file for the given
// format. It returns nil on any failure: unavailable reader, unreadable or
// malformed file, or no identifying fields present. Errors never propagate;
// chemistry extraction must not abort format detection.
func (r *Registry) Extract(path string, format types.Format) *types.RawChemistry {
	switch {
	case format == types.FormatPod5:
		return r.extractPod5(path)
	case format.IsFast5():
		return r.extractFast5(path)
	default:
		return nil
	}
}

func (r *Registry) extractFast5(path string) *types.RawChemistry {
	if !r.fast5.Available() {
		return nil
	}
	src, err := r.fast5.Open(path)
	if err != nil {
		return nil
	}
	defer src.Close()

	base := readGroupBase(src)
	if base == "" {
		return nil
	}

	chem := types.RawChemistry{
		Flowcell:   lookupString(src, base, fast5FlowcellChain),
		Kit:        lookupString(src, base, fast5KitChain),
		SampleRate: lookupRate(src, base, fast5RateChain),
	}
	if chem.Flowcell == "" && chem.Kit == "" && chem.SampleRate == 0 {
		return nil
	}
	return &chem
}

func (r *Registry) extractPod5(path string) *types.RawChemistry {
	if !r.pod5.Available() {
		return nil
	}
	info, err := r.pod5.FirstRunInfo(path)
	if err != nil || info == nil {
		return nil
	}

	chem := types.RawChemistry{
		Flowcell: firstNonEmpty(
			normalize(info.FlowcellProductCode),
			normalize(info.TrackingID["flow_cell_product_code"]),
			normalize(info.ContextTags["flowcell_type"]),
		),
		Kit: firstNonEmpty(
			normalize(info.SequencingKit),
			normalize(info.ContextTags["sequencing_kit"]),
			normalize(info.ContextTags["experiment_kit"]),
		),
	}
	chem.SampleRate = int(info.SampleRate)
	if chem.SampleRate <= 0 {
		chem.SampleRate = parseRate(info.ContextTags["sample_frequency"])
	}
	if chem.Flowcell == "" && chem.Kit == "" && chem.SampleRate == 0 {
		return nil
	}
	return &chem
}

// readGroupBase picks the per-read attribute group: the well-known
// single-read group when present, otherwise the first top-level group.
func readGroupBase(src AttributeSource) string {
	groups := src.Groups()
	for _, g := range groups {
		if g == singleReadGroup {
			return g
		}
	}
	if len(groups) > 0 {
		return groups[0]
	}
	return ""
}

// lookupString walks a fallback chain and returns the first non-empty
// normalized string value.
func lookupString(src AttributeSource, base string, chain []attrRef) string {
	for _, ref := range chain {
		if raw, ok := src.Attr(base+"/"+ref.group, ref.name); ok {
			if s := normalize(decodeString(raw)); s != "" {
				return s
			}
		}
	}
	return ""
}

// lookupRate walks a fallback chain and returns the first positive rate.
func lookupRate(src AttributeSource, base string, chain []attrRef) int {
	for _, ref := range chain {
		if raw, ok := src.Attr(base+"/"+ref.group, ref.name); ok {
			if rate := coerceRate(raw); rate > 0 {
				return rate
			}
		}
	}
	return 0
}

// decodeString converts a raw attribute value to a string. Historical files
// store strings as byte arrays.
func decodeString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return ""
	}
}

// normalize trims and uppercases a code so it matches the uppercase-keyed
// lookup tables.
func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// coerceRate converts a raw attribute value to a sample rate in Hz. Real
// files store rates as byte strings ("4000"), decimal strings ("4000.0"),
// or native numerics; anything non-numeric yields 0.
func coerceRate(v interface{}) int {
	switch n := v.(type) {
	case int:
		return clampRate(n)
	case int32:
		return clampRate(int(n))
	case int64:
		return clampRate(int(n))
	case uint32:
		return int(n)
	case uint64:
		return clampRate(int(n))
	case float32:
		return clampRate(int(n))
	case float64:
		return clampRate(int(n))
	case string:
		return parseRate(n)
	case []byte:
		return parseRate(string(n))
	default:
		return 0
	}
}

func parseRate(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return clampRate(int(f))
}

func clampRate(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
