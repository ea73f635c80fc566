package classify

// Result holds a classification and the data it was derived from.
type Result struct {
	ID              string     // Caller-supplied pair identifier
	Normal          string     // Normal nucleotide sequence
	Mutant          string     // Mutant nucleotide sequence
	NormalProtein   string     // Translated normal sequence, empty for indels
	MutantProtein   string     // Translated mutant sequence, empty for indels
	Mutations       []Mutation // Differing amino acids, missense only
	AminoAcidChange string     // Mutations formatted as "G/C,A/W", empty if none
	Label           string     // Classification label
	Consequence     string     // SO consequence term
	Impact          string     // HIGH, MODERATE, LOW
	Cached          bool       // Result was served from a ResultCache

	skipCache bool // cache lookup failed; do not write back
}

// Classify returns the classification label for a normal/mutant pair.
// Pairs of different length are indels; equal-length pairs are substitutions.
func Classify(normal, mutant string) string {
	if len(normal) != len(mutant) {
		return ClassifyIndel(normal, mutant)
	}
	return ClassifySubstitution(normal, mutant)
}

// ClassifyIndel classifies a length-changing pair as a frameshift or
// in-frame insertion or deletion.
func ClassifyIndel(normal, mutant string) string {
	delta := len(mutant) - len(normal)

	// A zero remainder is the same under any sign convention.
	if delta%3 != 0 {
		if delta > 0 {
			return LabelFrameshiftInsertion
		}
		return LabelFrameshiftDeletion
	}
	if delta > 0 {
		return LabelInframeInsertion
	}
	return LabelInframeDeletion
}

// ClassifySubstitution classifies an equal-length pair by comparing
// the translations of both sequences.
func ClassifySubstitution(normal, mutant string) string {
	label, _ := classifyProteins(TranslateSequence(normal), TranslateSequence(mutant))
	return label
}

// classifyProteins decides the substitution label from two translations.
// The aligned mutations are returned for the missense branch only.
func classifyProteins(normalAA, mutantAA string) (string, []Mutation) {
	if mutantAA == normalAA {
		return LabelSynonymous, nil
	}

	switch {
	case len(mutantAA) == len(normalAA):
		mutations := AlignSequences(normalAA, mutantAA)
		for _, m := range mutations {
			// Two unknown properties compare equal.
			if PropertyOf(m.Normal) != PropertyOf(m.Mutant) {
				return LabelMissenseDifferent, mutations
			}
		}
		return LabelMissenseSimilar, mutations
	case len(mutantAA) < len(normalAA):
		return LabelNonsense, nil
	default:
		return LabelStopLost, nil
	}
}

// Explain classifies a pair like Classify and returns the full Result.
func Explain(normal, mutant string) *Result {
	r := &Result{
		Normal: normal,
		Mutant: mutant,
	}

	if len(normal) != len(mutant) {
		r.Label = ClassifyIndel(normal, mutant)
	} else {
		r.NormalProtein = TranslateSequence(normal)
		r.MutantProtein = TranslateSequence(mutant)
		r.Label, r.Mutations = classifyProteins(r.NormalProtein, r.MutantProtein)
		if len(r.Mutations) > 0 {
			r.AminoAcidChange = FormatMutations(r.Mutations)
		}
	}

	r.Consequence = ConsequenceOf(r.Label)
	r.Impact = GetImpact(r.Consequence)
	return r
}
