package output

import (
	"fmt"
	"io"
	"slices"

	"github.com/inodb/vibe-mutclass/internal/classify"
)

// Summary counts results per classification label.
// It wraps another writer so it can sit in a ClassifyAll pipeline.
type Summary struct {
	next   classify.ResultWriter
	order  []string
	counts map[string]int
	cached int
	total  int
}

// NewSummary creates a Summary that forwards every call to next.
// next may be nil to only count.
func NewSummary(next classify.ResultWriter) *Summary {
	return &Summary{
		next:   next,
		counts: make(map[string]int),
	}
}

// WriteHeader forwards the header to the wrapped writer.
func (s *Summary) WriteHeader() error {
	if s.next == nil {
		return nil
	}
	return s.next.WriteHeader()
}

// Write counts the result and forwards it.
func (s *Summary) Write(r *classify.Result) error {
	if _, ok := s.counts[r.Label]; !ok {
		s.order = append(s.order, r.Label)
	}
	s.counts[r.Label]++
	s.total++
	if r.Cached {
		s.cached++
	}
	if s.next == nil {
		return nil
	}
	return s.next.Write(r)
}

// Flush flushes the wrapped writer.
func (s *Summary) Flush() error {
	if s.next == nil {
		return nil
	}
	return s.next.Flush()
}

// Count returns the number of results with the given label.
func (s *Summary) Count(label string) int {
	return s.counts[label]
}

// Total returns the number of results seen.
func (s *Summary) Total() int {
	return s.total
}

// WriteSummary prints per-label counts in classify.Labels order.
// Labels outside that list follow in first-seen order.
func (s *Summary) WriteSummary(w io.Writer) {
	labels := slices.Clone(s.order)
	slices.SortStableFunc(labels, func(a, b string) int {
		return classify.LabelRank(a) - classify.LabelRank(b)
	})

	fmt.Fprintf(w, "\nClassification Summary\n")
	fmt.Fprintf(w, "======================\n")
	fmt.Fprintf(w, "Total pairs: %d (cached: %d)\n\n", s.total, s.cached)
	for _, label := range labels {
		n := s.counts[label]
		pct := 0.0
		if s.total > 0 {
			pct = float64(n) / float64(s.total) * 100
		}
		fmt.Fprintf(w, "  %-70s %6d (%5.1f%%)\n", label, n, pct)
	}
}
