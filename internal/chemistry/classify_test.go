package chemistry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/druvus/nanopore-format-checker/internal/types"
)

func TestClassifyR1041At5kHz(t *testing.T) {
	result := Classify(types.RawChemistry{Flowcell: "FLO-MIN114", Kit: "SQK-LSK114", SampleRate: 5000})

	assert.Equal(t, "R10.4.1", result.Pore)
	assert.Equal(t, ">=1.0", result.DoradoVersion)
	assert.Equal(t, types.AnalyteDNA, result.Analyte)
	assert.Equal(t, "sup", result.ModelHint)
	assert.Empty(t, result.Note)
}

func TestClassifyR941(t *testing.T) {
	result := Classify(types.RawChemistry{Flowcell: "FLO-MIN106", Kit: "SQK-LSK109", SampleRate: 4000})

	assert.Equal(t, "R9.4.1", result.Pore)
	assert.Equal(t, "0.9.6", result.DoradoVersion)
	assert.Contains(t, result.Note, "0.9.6")
}

func TestClassifyR1041At4kHzLegacy(t *testing.T) {
	result := Classify(types.RawChemistry{Flowcell: "FLO-MIN114", Kit: "SQK-LSK114", SampleRate: 4000})

	// R10.4.1 flowcell, but 4 kHz acquisition forces the legacy basecaller.
	assert.Equal(t, "R10.4.1", result.Pore)
	assert.Equal(t, "0.9.6", result.DoradoVersion)
	assert.NotEmpty(t, result.Note)
}

func TestClassifyR103(t *testing.T) {
	result := Classify(types.RawChemistry{Flowcell: "FLO-MIN111", SampleRate: 4000})

	assert.Equal(t, "R10.3", result.Pore)
	assert.Equal(t, "0.9.6", result.DoradoVersion)
}

func TestClassifyR104RateDependent(t *testing.T) {
	at5k := Classify(types.RawChemistry{Flowcell: "FLO-MIN112", Kit: "SQK-LSK114", SampleRate: 5000})
	assert.Equal(t, "R10.4", at5k.Pore)
	assert.Equal(t, ">=1.0", at5k.DoradoVersion)

	at4k := Classify(types.RawChemistry{Flowcell: "FLO-MIN112", SampleRate: 4000})
	assert.Equal(t, "R10.4", at4k.Pore)
	assert.Equal(t, "0.9.6", at4k.DoradoVersion)
}

func TestClassifyRNA004(t *testing.T) {
	result := Classify(types.RawChemistry{Kit: "SQK-RNA004", SampleRate: 4000})

	assert.Equal(t, types.AnalyteRNA, result.Analyte)
	assert.Equal(t, ">=1.0", result.DoradoVersion)
}

func TestClassifyRNA004Flowcell(t *testing.T) {
	result := Classify(types.RawChemistry{Flowcell: "FLO-MIN004RA", Kit: "SQK-RNA004", SampleRate: 4000})

	assert.Equal(t, "RNA004", result.Pore)
	assert.Equal(t, types.AnalyteRNA, result.Analyte)
	assert.Equal(t, ">=1.0", result.DoradoVersion)
}

func TestClassifyRNA002(t *testing.T) {
	result := Classify(types.RawChemistry{Flowcell: "FLO-MIN106", Kit: "SQK-RNA002", SampleRate: 3000})

	assert.Equal(t, types.AnalyteRNA, result.Analyte)
	assert.Equal(t, "0.9.6", result.DoradoVersion)
	assert.NotEmpty(t, result.Note)
}

func TestClassifyHDFlowcell(t *testing.T) {
	result := Classify(types.RawChemistry{Flowcell: "FLO-MIN114HD", Kit: "SQK-LSK114", SampleRate: 5000})

	assert.Equal(t, "R10.4.1", result.Pore)
	assert.Equal(t, ">=1.0", result.DoradoVersion)
}

func TestClassifyKitFallback(t *testing.T) {
	result := Classify(types.RawChemistry{Kit: "SQK-LSK109", SampleRate: 4000})

	assert.Equal(t, "R9.4.1", result.Pore)
	assert.Equal(t, "0.9.6", result.DoradoVersion)
}

func TestClassifyKitFallbackR1041(t *testing.T) {
	result := Classify(types.RawChemistry{Kit: "SQK-RBK114-24", SampleRate: 5000})

	assert.Equal(t, "R10.4.1", result.Pore)
	assert.Equal(t, ">=1.0", result.DoradoVersion)
}

func TestClassifyUnrecognizedCodes(t *testing.T) {
	// Non-empty but unrecognized codes must NOT trigger the sample-rate
	// fallback.
	result := Classify(types.RawChemistry{Flowcell: "FLO-PROTOTYPE", Kit: "SQK-BETA", SampleRate: 5000})

	assert.Equal(t, "unknown", result.Pore)
	assert.Empty(t, result.DoradoVersion)
	assert.Empty(t, result.Note)
}

func TestClassifySampleRateFallback(t *testing.T) {
	at5k := Classify(types.RawChemistry{SampleRate: 5000})
	assert.Equal(t, "R10.4.1", at5k.Pore)
	assert.Equal(t, ">=1.0", at5k.DoradoVersion)

	at4k := Classify(types.RawChemistry{SampleRate: 4000})
	assert.Equal(t, "R9.4.1", at4k.Pore)
	assert.Equal(t, "0.9.6", at4k.DoradoVersion)

	at3k := Classify(types.RawChemistry{SampleRate: 3000})
	assert.Equal(t, "R9.4.1", at3k.Pore)

	atZero := Classify(types.RawChemistry{})
	assert.Equal(t, "R9.4.1", atZero.Pore)
}

func TestTableValuesAreKnownPores(t *testing.T) {
	known := map[string]bool{
		PoreR941: true, PoreR103: true, PoreR104: true,
		PoreR1041: true, PoreRNA004: true,
	}
	for code, pore := range FlowcellPore {
		assert.True(t, known[pore], "flowcell %s maps to unhandled pore %s", code, pore)
	}
	for code, pore := range KitPore {
		assert.True(t, known[pore], "kit %s maps to unhandled pore %s", code, pore)
	}
}
