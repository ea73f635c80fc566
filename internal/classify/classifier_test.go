package classify

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/inodb/vibe-mutclass/internal/pairs"
)

// memCache is an in-memory ResultCache.
type memCache struct {
	mu        sync.Mutex
	results   map[[2]string]*Result
	written   []*Result
	lookupErr error
}

func newMemCache() *memCache {
	return &memCache{results: make(map[[2]string]*Result)}
}

func (m *memCache) LookupResult(normal, mutant string) (*Result, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookupErr != nil {
		return nil, false, m.lookupErr
	}
	r, ok := m.results[[2]string{normal, mutant}]
	if !ok {
		return nil, false, nil
	}
	cp := *r
	return &cp, true, nil
}

func (m *memCache) WriteResults(results []*Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range results {
		if _, ok := m.results[[2]string{r.Normal, r.Mutant}]; ok {
			return fmt.Errorf("duplicate key %s/%s", r.Normal, r.Mutant)
		}
	}
	m.written = append(m.written, results...)
	for _, r := range results {
		m.results[[2]string{r.Normal, r.Mutant}] = r
	}
	return nil
}

// sliceWriter collects results in memory.
type sliceWriter struct {
	header   bool
	results  []*Result
	flushed  bool
	writeErr error
}

func (w *sliceWriter) WriteHeader() error {
	w.header = true
	return nil
}

func (w *sliceWriter) Write(r *Result) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.results = append(w.results, r)
	return nil
}

func (w *sliceWriter) Flush() error {
	w.flushed = true
	return nil
}

const testPairs = `# id	normal	mutant
fs_del	ATCTTTACG	ATCTTTCG
if_del	ATCTTTACG	ATCTTT
syn	AAATTTATGCTA	AAATTTATGCTG
non	AAATTTATGCTA	AAATTTATGCCG
lost	AAATTTATGCCG	AAATTTATGCTA
mis_diff	AAATTTATGCTA	AAATTTATGTTT
mis_sim	AAATTTATGCTA	AAATTTATGAAA
`

func TestClassifier_ClassifyAll(t *testing.T) {
	c := NewClassifier()
	c.SetWorkers(3)
	w := &sliceWriter{}

	err := c.ClassifyAll(pairs.NewParserFromReader(strings.NewReader(testPairs)), w)
	require.NoError(t, err)
	assert.True(t, w.flushed)

	want := []struct {
		id    string
		label string
	}{
		{"fs_del", LabelFrameshiftDeletion},
		{"if_del", LabelInframeDeletion},
		{"syn", LabelSynonymous},
		{"non", LabelNonsense},
		{"lost", LabelStopLost},
		{"mis_diff", LabelMissenseDifferent},
		{"mis_sim", LabelMissenseSimilar},
	}
	require.Len(t, w.results, len(want))
	for i, exp := range want {
		assert.Equal(t, exp.id, w.results[i].ID)
		assert.Equal(t, exp.label, w.results[i].Label, exp.id)
		assert.False(t, w.results[i].Cached)
	}
}

func TestClassifier_ClassifyAll_ParseError(t *testing.T) {
	c := NewClassifier()
	w := &sliceWriter{}

	input := "a\tAAA\tAAT\nbroken\n"
	err := c.ClassifyAll(pairs.NewParserFromReader(strings.NewReader(input)), w)
	require.Error(t, err)

	var pe *pairs.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Len(t, w.results, 1)
}

func TestClassifier_ClassifyAll_WriteError(t *testing.T) {
	c := NewClassifier()
	w := &sliceWriter{writeErr: errors.New("disk full")}

	err := c.ClassifyAll(pairs.NewParserFromReader(strings.NewReader(testPairs)), w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestClassifier_Cache(t *testing.T) {
	cache := newMemCache()
	c := NewClassifier()
	c.SetCache(cache)

	// First run computes and stores every pair.
	first := &sliceWriter{}
	require.NoError(t, c.ClassifyAll(pairs.NewParserFromReader(strings.NewReader(testPairs)), first))
	assert.Len(t, cache.written, 7)
	for _, r := range first.results {
		assert.False(t, r.Cached)
	}

	// Second run is served from the cache and writes nothing new.
	second := &sliceWriter{}
	require.NoError(t, c.ClassifyAll(pairs.NewParserFromReader(strings.NewReader(testPairs)), second))
	assert.Len(t, cache.written, 7)
	require.Len(t, second.results, 7)
	for i, r := range second.results {
		assert.True(t, r.Cached)
		assert.Equal(t, first.results[i].ID, r.ID)
		assert.Equal(t, first.results[i].Label, r.Label)
	}
}

func TestClassifier_CacheLookupErrorFallsBack(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	cache := newMemCache()
	cache.lookupErr = errors.New("connection lost")

	c := NewClassifier()
	c.SetCache(cache)
	c.SetLogger(zap.New(core))

	r := c.ClassifyPair(&pairs.Pair{ID: "p1", Normal: "AAATTTATGCTA", Mutant: "AAATTTATGCCG"})
	assert.Equal(t, LabelNonsense, r.Label)
	assert.False(t, r.Cached)
	assert.Equal(t, 1, logs.FilterMessage("result cache lookup failed").Len())
}

func TestClassifier_CacheLookupErrorSkipsWriteBack(t *testing.T) {
	cache := newMemCache()
	stored := &Result{Normal: "AAATTTATGCTA", Mutant: "AAATTTATGCCG", Label: LabelNonsense}
	require.NoError(t, cache.WriteResults([]*Result{stored}))
	cache.written = nil
	cache.lookupErr = errors.New("connection lost")

	c := NewClassifier()
	c.SetCache(cache)

	w := &sliceWriter{}
	require.NoError(t, c.ClassifyAll(pairs.NewParserFromReader(strings.NewReader("p1\tAAATTTATGCTA\tAAATTTATGCCG\n")), w))
	require.Len(t, w.results, 1)
	assert.Equal(t, LabelNonsense, w.results[0].Label)
	assert.Empty(t, cache.written)
}

// failingParser yields one error after a fixed number of lines.
type failingParser struct {
	line int
	err  error
}

func (p *failingParser) Next() (*pairs.Pair, error) { return nil, p.err }
func (p *failingParser) Close() error               { return nil }
func (p *failingParser) LineNumber() int            { return p.line }

func TestClassifier_ReadErrorReportsLine(t *testing.T) {
	readErr := errors.New("unexpected EOF")

	err := NewClassifier().ClassifyAll(&failingParser{line: 4, err: readErr}, &sliceWriter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "after line 4")
}

func TestClassifier_LogsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	c := NewClassifier()
	c.SetLogger(zap.New(core))

	require.NoError(t, c.ClassifyAll(pairs.NewParserFromReader(strings.NewReader(testPairs)), &sliceWriter{}))

	entries := logs.FilterMessage("classification finished").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(7), entries[0].ContextMap()["pairs"])
}
