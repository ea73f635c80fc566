package output

import (
	"strings"

	"github.com/inodb/vibe-mutclass/internal/classify"
)

// SOToMAFClassification converts an SO consequence term to a MAF Variant_Classification.
// normal and mutant distinguish Frame_Shift_Del from Frame_Shift_Ins.
func SOToMAFClassification(consequence, normal, mutant string) string {
	// Use the first (highest-impact) term if comma-separated
	primary := consequence
	if idx := strings.Index(consequence, ","); idx >= 0 {
		primary = consequence[:idx]
	}
	primary = strings.TrimSpace(primary)

	switch primary {
	case classify.ConsequenceMissenseVariant:
		return "Missense_Mutation"
	case classify.ConsequenceStopGained:
		return "Nonsense_Mutation"
	case classify.ConsequenceSynonymousVariant:
		return "Silent"
	case classify.ConsequenceFrameshiftVariant:
		if len(normal) > len(mutant) {
			return "Frame_Shift_Del"
		}
		return "Frame_Shift_Ins"
	case classify.ConsequenceInframeDeletion:
		return "In_Frame_Del"
	case classify.ConsequenceInframeInsertion:
		return "In_Frame_Ins"
	case classify.ConsequenceStopLost:
		return "Nonstop_Mutation"
	default:
		return primary
	}
}

// VariantType returns the MAF variant type of a pair: SNP, DNP, TNP, ONP, INS or DEL.
// Equal-length pairs are typed by the number of differing bases;
// identical sequences yield an empty string.
func VariantType(normal, mutant string) string {
	if len(normal) < len(mutant) {
		return "INS"
	}
	if len(normal) > len(mutant) {
		return "DEL"
	}

	diff := 0
	for i := 0; i < len(normal); i++ {
		if normal[i] != mutant[i] {
			diff++
		}
	}
	switch diff {
	case 0:
		return ""
	case 1:
		return "SNP"
	case 2:
		return "DNP"
	case 3:
		return "TNP"
	default:
		return "ONP"
	}
}
