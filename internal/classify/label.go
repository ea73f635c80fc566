package classify

import "strings"

// Classification labels.
const (
	LabelFrameshiftInsertion = "frameshift insertion"
	LabelFrameshiftDeletion  = "frameshift deletion"
	LabelInframeInsertion    = "in-frame insertion"
	LabelInframeDeletion     = "in-frame deletion"
	LabelSynonymous          = "Synonymous mutation"
	LabelMissenseDifferent   = "Missense substitution led to replacement with different properties"
	LabelMissenseSimilar     = "Missense substitution led to replacement with similar properties"
	LabelNonsense            = "Nonsense mutation"
	LabelStopLost            = "Loss of stop codon detected following substitution"
)

// Labels lists every classification label in reporting order.
var Labels = []string{
	LabelFrameshiftInsertion,
	LabelFrameshiftDeletion,
	LabelInframeInsertion,
	LabelInframeDeletion,
	LabelSynonymous,
	LabelMissenseDifferent,
	LabelMissenseSimilar,
	LabelNonsense,
	LabelStopLost,
}

// LabelRank returns the position of label in Labels,
// or len(Labels) for labels not in the list.
func LabelRank(label string) int {
	for i, l := range Labels {
		if l == label {
			return i
		}
	}
	return len(Labels)
}

// Impact levels for consequences.
const (
	ImpactHigh     = "HIGH"
	ImpactModerate = "MODERATE"
	ImpactLow      = "LOW"
	ImpactModifier = "MODIFIER"
)

// Consequence types (Sequence Ontology terms).
const (
	ConsequenceFrameshiftVariant = "frameshift_variant"
	ConsequenceInframeInsertion  = "inframe_insertion"
	ConsequenceInframeDeletion   = "inframe_deletion"
	ConsequenceSynonymousVariant = "synonymous_variant"
	ConsequenceMissenseVariant   = "missense_variant"
	ConsequenceStopGained        = "stop_gained"
	ConsequenceStopLost          = "stop_lost"
)

// ConsequenceOf returns the SO consequence term for a classification label.
// Returns an empty string for unrecognized labels.
func ConsequenceOf(label string) string {
	switch label {
	case LabelFrameshiftInsertion, LabelFrameshiftDeletion:
		return ConsequenceFrameshiftVariant
	case LabelInframeInsertion:
		return ConsequenceInframeInsertion
	case LabelInframeDeletion:
		return ConsequenceInframeDeletion
	case LabelSynonymous:
		return ConsequenceSynonymousVariant
	case LabelMissenseDifferent, LabelMissenseSimilar:
		return ConsequenceMissenseVariant
	case LabelNonsense:
		return ConsequenceStopGained
	case LabelStopLost:
		return ConsequenceStopLost
	default:
		return ""
	}
}

// GetImpact returns the impact level for a given consequence type.
// For comma-separated consequences, returns the highest impact among all terms.
func GetImpact(consequence string) string {
	best := ImpactModifier
	for rest := consequence; rest != ""; {
		term := rest
		if i := strings.IndexByte(rest, ','); i >= 0 {
			term = rest[:i]
			rest = rest[i+1:]
		} else {
			rest = ""
		}
		var impact string
		switch term {
		case ConsequenceFrameshiftVariant, ConsequenceStopGained, ConsequenceStopLost:
			impact = ImpactHigh
		case ConsequenceMissenseVariant, ConsequenceInframeInsertion, ConsequenceInframeDeletion:
			impact = ImpactModerate
		case ConsequenceSynonymousVariant:
			impact = ImpactLow
		default:
			impact = ImpactModifier
		}
		if ImpactRank(impact) > ImpactRank(best) {
			best = impact
		}
	}
	return best
}

// ImpactRank returns numeric rank for impact comparison (higher = more severe).
func ImpactRank(impact string) int {
	switch impact {
	case ImpactHigh:
		return 3
	case ImpactModerate:
		return 2
	case ImpactLow:
		return 1
	default:
		return 0
	}
}
