// Package classify provides mutation classification for nucleotide sequence pairs.
package classify

import "strings"

// Stop is the sentinel returned for codons missing from the codon table.
// It terminates translation and never appears in a translated sequence.
const Stop byte = '*'

// Reduced codon table: DNA codon to amino acid (single letter).
// Any codon not listed here translates to Stop.
var codonTable = map[string]byte{
	"AAA": 'A',
	"TTT": 'C',
	"ATG": 'M',
	"CTA": 'G',
	"CTG": 'G',
	"AAT": 'W',
}

// TranslateCodon translates a DNA codon to its amino acid.
// Returns Stop for codons not in the table, including malformed ones.
// Lookup is case-sensitive; input is not validated.
func TranslateCodon(codon string) byte {
	if aa, ok := codonTable[codon]; ok {
		return aa
	}
	return Stop
}

// TranslateSequence translates a DNA sequence to amino acids, reading
// non-overlapping codons from offset 0. Translation ends at the first codon
// that maps to Stop; the sentinel itself is not included. Trailing bases
// that do not form a complete codon are ignored.
func TranslateSequence(seq string) string {
	n := (len(seq) / 3) * 3

	var result strings.Builder
	result.Grow(n / 3)

	for i := 0; i < n; i += 3 {
		aa := TranslateCodon(seq[i : i+3])
		if aa == Stop {
			return result.String()
		}
		result.WriteByte(aa)
	}

	return result.String()
}

