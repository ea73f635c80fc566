package classify

import (
	"fmt"
	"strings"
)

// Mutation is a pair of differing amino acids at one aligned position.
type Mutation struct {
	Normal byte
	Mutant byte
}

// String returns the change in "N/M" form.
func (m Mutation) String() string {
	return string([]byte{m.Normal, '/', m.Mutant})
}

// AlignSequences compares two equal-length amino acid sequences position by
// position and returns the differing pairs in position order.
// It panics if the sequences differ in length.
func AlignSequences(normal, mutant string) []Mutation {
	if len(normal) != len(mutant) {
		panic(fmt.Sprintf("classify: align sequences of unequal length %d and %d", len(normal), len(mutant)))
	}

	var mutations []Mutation
	for i := 0; i < len(normal); i++ {
		if normal[i] != mutant[i] {
			mutations = append(mutations, Mutation{Normal: normal[i], Mutant: mutant[i]})
		}
	}
	return mutations
}

// FormatMutations joins mutations as "N/M,N/M"; "-" if there are none.
func FormatMutations(mutations []Mutation) string {
	if len(mutations) == 0 {
		return "-"
	}
	var b strings.Builder
	for i, m := range mutations {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(m.String())
	}
	return b.String()
}
