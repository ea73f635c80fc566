// Package pairs reads batches of normal/mutant sequence pairs.
package pairs

// Pair is a normal/mutant nucleotide sequence pair to classify.
type Pair struct {
	ID     string // Pair identifier (from input, or pair_<line>)
	Normal string // Normal nucleotide sequence
	Mutant string // Mutant nucleotide sequence
}

// PairParser is the interface for parsers that read sequence pairs.
type PairParser interface {
	// Next reads the next pair.
	// Returns nil, nil when there are no more pairs.
	Next() (*Pair, error)

	// Close closes the parser and releases resources.
	Close() error

	// LineNumber returns the current line number being processed.
	LineNumber() int
}
