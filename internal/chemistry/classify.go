package chemistry

import (
	"strings"

	"github.com/druvus/nanopore-format-checker/internal/types"
)

// Notes attached to legacy chemistry recommendations.
const (
	noteLegacyPore = "pore not supported from dorado 1.0; use dorado 0.9.6"
	noteLegacyRate = "4 kHz data; dorado 1.0 requires 5 kHz, use dorado 0.9.6"
	noteLegacyRNA  = "RNA002 support ended with dorado 0.9.6"
)

// Classify derives the pore generation, analyte, and recommended dorado
// version from raw run metadata. Pure function, no I/O.
//
// Evidence priority: flowcell code outranks kit code, kit code outranks the
// sample-rate fallback, and the sample-rate fallback applies only when both
// codes are empty. A non-empty but unrecognized code therefore yields
// "unknown" rather than a rate-based guess.
func Classify(raw types.RawChemistry) types.ChemistryResult {
	result := types.ChemistryResult{
		Pore:      PoreUnknown,
		Analyte:   types.AnalyteDNA,
		ModelHint: DefaultModelHint,
	}
	if strings.HasPrefix(raw.Kit, rnaKitPrefix) {
		result.Analyte = types.AnalyteRNA
	}

	// RNA kits pin the recommendation regardless of pore resolution.
	switch raw.Kit {
	case KitRNA004:
		result.Pore = lookupPore(raw.Flowcell, raw.Kit, raw.SampleRate)
		result.Analyte = types.AnalyteRNA
		result.DoradoVersion = doradoCurrent
		return result
	case KitRNA002:
		result.Pore = lookupPore(raw.Flowcell, raw.Kit, raw.SampleRate)
		result.Analyte = types.AnalyteRNA
		result.DoradoVersion = doradoLegacy
		result.Note = noteLegacyRNA
		return result
	}

	result.Pore = lookupPore(raw.Flowcell, raw.Kit, raw.SampleRate)

	switch result.Pore {
	case PoreR941, PoreR103:
		result.DoradoVersion = doradoLegacy
		result.Note = noteLegacyPore
	case PoreR104:
		if raw.SampleRate >= 5000 {
			result.DoradoVersion = doradoCurrent
		} else {
			result.DoradoVersion = doradoLegacy
			result.Note = noteLegacyRate
		}
	case PoreR1041, PoreRNA004:
		result.DoradoVersion = doradoCurrent
	}
	return result
}

// lookupPore resolves the pore generation: flowcell table first, then kit
// table, then the sample-rate fallback when no code-based evidence exists.
func lookupPore(flowcell, kit string, sampleRate int) string {
	if pore, ok := FlowcellPore[flowcell]; ok {
		return pore
	}
	if pore, ok := KitPore[kit]; ok {
		return pore
	}
	if flowcell == "" && kit == "" {
		// Converted pod5 files from old fast5 runs often carry only the
		// sample rate. 5 kHz acquisition only ever shipped on R10.4.1.
		if sampleRate == 5000 {
			return PoreR1041
		}
		return PoreR941
	}
	return PoreUnknown
}
