package classify

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/inodb/vibe-mutclass/internal/pairs"
)

// ResultCache stores previously computed results keyed by sequence pair.
type ResultCache interface {
	LookupResult(normal, mutant string) (*Result, bool, error)
	WriteResults(results []*Result) error
}

// ResultWriter defines the interface for writing results.
type ResultWriter interface {
	WriteHeader() error
	Write(r *Result) error
	Flush() error
}

// Classifier classifies batches of sequence pairs.
type Classifier struct {
	cache   ResultCache
	workers int
	logger  *zap.Logger
}

// NewClassifier creates a new classifier without a result cache.
func NewClassifier() *Classifier {
	return &Classifier{
		logger: zap.NewNop(),
	}
}

// SetCache sets the cache consulted before classifying and updated after.
func (c *Classifier) SetCache(rc ResultCache) {
	c.cache = rc
}

// SetWorkers sets the worker count for ClassifyAll. Zero uses runtime.NumCPU().
func (c *Classifier) SetWorkers(n int) {
	c.workers = n
}

// SetLogger sets the logger for warning and info messages.
func (c *Classifier) SetLogger(l *zap.Logger) {
	c.logger = l
}

// ClassifyPair classifies a single pair, consulting the cache if set.
// A failed cache lookup is logged and the pair is classified directly.
func (c *Classifier) ClassifyPair(p *pairs.Pair) *Result {
	lookupFailed := false
	if c.cache != nil {
		cached, ok, err := c.cache.LookupResult(p.Normal, p.Mutant)
		if err != nil {
			c.logger.Warn("result cache lookup failed",
				zap.String("id", p.ID),
				zap.Error(err))
			lookupFailed = true
		} else if ok {
			cached.ID = p.ID
			cached.Normal = p.Normal
			cached.Mutant = p.Mutant
			cached.Cached = true
			return cached
		}
	}

	r := Explain(p.Normal, p.Mutant)
	r.ID = p.ID
	// The pair may already be stored; writing it again would violate the key.
	r.skipCache = lookupFailed
	return r
}

// ClassifyAll classifies all pairs from a parser and writes results in input order.
func (c *Classifier) ClassifyAll(parser pairs.PairParser, writer ResultWriter) error {
	workers := c.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	items := make(chan WorkItem, 2*workers)
	var parseErr error

	go func() {
		defer close(items)
		seq := 0
		for {
			p, err := parser.Next()
			if err != nil {
				parseErr = fmt.Errorf("read pair after line %d: %w", parser.LineNumber(), err)
				return
			}
			if p == nil {
				return
			}
			items <- WorkItem{Seq: seq, Pair: p}
			seq++
		}
	}()

	results := c.ParallelClassify(items, workers)

	var (
		total   int
		cached  int
		pending []*Result
	)
	if err := OrderedCollect(results, func(r WorkResult) error {
		total++
		if r.Result.Cached {
			cached++
		} else if c.cache != nil && !r.Result.skipCache {
			pending = append(pending, r.Result)
		}
		if err := writer.Write(r.Result); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}

	if parseErr != nil {
		return parseErr
	}

	if c.cache != nil && len(pending) > 0 {
		if err := c.cache.WriteResults(pending); err != nil {
			return fmt.Errorf("write result cache: %w", err)
		}
	}

	c.logger.Info("classification finished",
		zap.Int("pairs", total),
		zap.Int("cached", cached),
		zap.Int("new", total-cached))

	return writer.Flush()
}
