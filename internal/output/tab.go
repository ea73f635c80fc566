// Package output provides classification output formatters.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/inodb/vibe-mutclass/internal/classify"
)

// TabWriter writes classification results in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Pair_ID",
			"Normal",
			"Mutant",
			"Normal_protein",
			"Mutant_protein",
			"Amino_acids",
			"Classification",
			"Consequence",
			"IMPACT",
			"Variant_Classification",
			"Variant_Type",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single result.
func (tw *TabWriter) Write(r *classify.Result) error {
	values := []string{
		orDash(r.ID),
		orDash(r.Normal),
		orDash(r.Mutant),
		orDash(r.NormalProtein),
		orDash(r.MutantProtein),
		orDash(r.AminoAcidChange),
		r.Label,
		orDash(r.Consequence),
		orDash(r.Impact),
		orDash(SOToMAFClassification(r.Consequence, r.Normal, r.Mutant)),
		orDash(VariantType(r.Normal, r.Mutant)),
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
