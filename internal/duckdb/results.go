package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-mutclass/internal/classify"
)

// resultKey is the composite key for deduplicating results before writing.
type resultKey struct {
	normal, mutant string
}

// LabelCount is the number of stored results for one label.
type LabelCount struct {
	Label string
	Count int64
}

// WriteResults batch-inserts classification results using the Appender API.
// Duplicate (normal, mutant) entries are deduplicated before writing.
func (s *Store) WriteResults(results []*classify.Result) error {
	if len(results) == 0 {
		return nil
	}

	seen := make(map[resultKey]bool, len(results))
	deduped := make([]*classify.Result, 0, len(results))
	for _, r := range results {
		k := resultKey{r.Normal, r.Mutant}
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, r)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "classification_results")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range deduped {
		if err := appender.AppendRow(
			r.Normal, r.Mutant, r.Label, r.Consequence, r.Impact,
			r.NormalProtein, r.MutantProtein, r.AminoAcidChange,
		); err != nil {
			return fmt.Errorf("append result: %w", err)
		}
	}

	return appender.Flush()
}

// LookupResult returns a previously stored result for a sequence pair.
// The boolean is false if the pair has not been stored.
func (s *Store) LookupResult(normal, mutant string) (*classify.Result, bool, error) {
	rows, err := s.db.Query(`SELECT
		label, consequence, impact, normal_protein, mutant_protein, amino_acids
		FROM classification_results
		WHERE normal=? AND mutant=?`,
		normal, mutant)
	if err != nil {
		return nil, false, fmt.Errorf("query result: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, fmt.Errorf("iterate results: %w", err)
		}
		return nil, false, nil
	}

	r := &classify.Result{Normal: normal, Mutant: mutant}
	if err := rows.Scan(
		&r.Label, &r.Consequence, &r.Impact,
		&r.NormalProtein, &r.MutantProtein, &r.AminoAcidChange,
	); err != nil {
		return nil, false, fmt.Errorf("scan result: %w", err)
	}
	return r, true, nil
}

// ClearResults removes all stored results.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM classification_results")
	return err
}

// CountByLabel returns the number of stored results per label, ordered by label.
func (s *Store) CountByLabel() ([]LabelCount, error) {
	rows, err := s.db.Query(`SELECT label, count(*) FROM classification_results
		GROUP BY label ORDER BY label`)
	if err != nil {
		return nil, fmt.Errorf("query label counts: %w", err)
	}
	defer rows.Close()

	var counts []LabelCount
	for rows.Next() {
		var lc LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, fmt.Errorf("scan label count: %w", err)
		}
		counts = append(counts, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate label counts: %w", err)
	}
	return counts, nil
}

// SearchByLabel returns all stored results with the given label.
func (s *Store) SearchByLabel(label string) ([]*classify.Result, error) {
	rows, err := s.db.Query(`SELECT
		normal, mutant, label, consequence, impact, normal_protein, mutant_protein, amino_acids
		FROM classification_results
		WHERE label=?
		ORDER BY normal, mutant`, label)
	if err != nil {
		return nil, fmt.Errorf("query label: %w", err)
	}
	defer rows.Close()

	var results []*classify.Result
	for rows.Next() {
		var r classify.Result
		if err := rows.Scan(
			&r.Normal, &r.Mutant, &r.Label, &r.Consequence, &r.Impact,
			&r.NormalProtein, &r.MutantProtein, &r.AminoAcidChange,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Cached = true
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return results, nil
}
