// Package chemistry maps raw run metadata (flowcell code, sequencing kit,
// sample rate) to a pore generation and a recommended dorado version.
package chemistry

// Pore generation tags.
const (
	PoreR941    = "R9.4.1"
	PoreR103    = "R10.3"
	PoreR104    = "R10.4"
	PoreR1041   = "R10.4.1"
	PoreRNA004  = "RNA004"
	PoreUnknown = "unknown"
)

// Kit codes handled specially by Classify.
const (
	KitRNA002 = "SQK-RNA002"
	KitRNA004 = "SQK-RNA004"

	rnaKitPrefix = "SQK-RNA"
)

// Dorado version recommendations.
const (
	doradoLegacy  = "0.9.6"
	doradoCurrent = ">=1.0"
)

// DefaultModelHint is the basecalling model quality tier recommended for all
// pores. Single hook for future per-pore overrides.
const DefaultModelHint = "sup"

// FlowcellPore maps flowcell product codes to pore generations. Keys are
// uppercase; lookups are exact-match. Covers MinION/GridION (FLO-MIN),
// Flongle (FLO-FLG), and PromethION (FLO-PRO) product lines.
var FlowcellPore = map[string]string{
	// R9.4.1
	"FLO-MIN106":    PoreR941,
	"FLO-MIN106D":   PoreR941,
	"FLO-MINSP6":    PoreR941,
	"FLO-FLG001":    PoreR941,
	"FLO-PRO001":    PoreR941,
	"FLO-PRO002":    PoreR941,
	"FLO-PRO002M":   PoreR941,
	"FLO-PRO002ECO": PoreR941,
	// R10.3
	"FLO-MIN111": PoreR103,
	"FLO-PRO111": PoreR103,
	// R10.4
	"FLO-MIN112": PoreR104,
	"FLO-FLG112": PoreR104,
	"FLO-PRO112": PoreR104,
	// R10.4.1
	"FLO-MIN114":   PoreR1041,
	"FLO-MIN114HD": PoreR1041,
	"FLO-FLG114":   PoreR1041,
	"FLO-FLG114HD": PoreR1041,
	"FLO-PRO114":   PoreR1041,
	"FLO-PRO114M":  PoreR1041,
	"FLO-PRO114HD": PoreR1041,
	// RNA004
	"FLO-MIN004RA": PoreRNA004,
	"FLO-PRO004RA": PoreRNA004,
}

// KitPore maps sequencing kit codes to pore generations. Consulted only when
// the flowcell lookup misses; flowcell evidence always outranks kit evidence.
var KitPore = map[string]string{
	// R9.4.1 era kits
	"SQK-LSK108":    PoreR941,
	"SQK-LSK109":    PoreR941,
	"SQK-LSK109-XL": PoreR941,
	"SQK-LSK110":    PoreR941,
	"SQK-LSK110-XL": PoreR941,
	"SQK-RBK001":    PoreR941,
	"SQK-RBK004":    PoreR941,
	"SQK-RBK110-96": PoreR941,
	"SQK-RAD002":    PoreR941,
	"SQK-RAD003":    PoreR941,
	"SQK-RAD004":    PoreR941,
	"SQK-RPB004":    PoreR941,
	"SQK-PCB109":    PoreR941,
	"SQK-PCB110":    PoreR941,
	"SQK-PCS109":    PoreR941,
	"SQK-PCS110":    PoreR941,
	"SQK-DCS109":    PoreR941,
	"SQK-CS9109":    PoreR941,
	"SQK-16S024":    PoreR941,
	"SQK-PSK004":    PoreR941,
	"SQK-NBD103":    PoreR941,
	"SQK-NBD104":    PoreR941,
	"VSK-VSK002":    PoreR941,
	"SQK-RNA001":    PoreR941,
	"SQK-RNA002":    PoreR941,
	// R10.4.1 era kits
	"SQK-LSK114":    PoreR1041,
	"SQK-LSK114-XL": PoreR1041,
	"SQK-RBK114-24": PoreR1041,
	"SQK-RBK114-96": PoreR1041,
	"SQK-RAD114":    PoreR1041,
	"SQK-RPB114-24": PoreR1041,
	"SQK-NBD114-24": PoreR1041,
	"SQK-NBD114-96": PoreR1041,
	"SQK-PCB114-24": PoreR1041,
	"SQK-PCS114":    PoreR1041,
	"SQK-ULK114":    PoreR1041,
	"SQK-16S114-24": PoreR1041,
	// RNA004
	"SQK-RNA004": PoreRNA004,
}
