package duckdb

import (
	"fmt"
	"os"
	"time"
)

// FileFingerprint holds stat-based identity for a file.
type FileFingerprint struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// StatFile creates a FileFingerprint from an on-disk file.
func StatFile(path string) (FileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileFingerprint{}, err
	}
	return FileFingerprint{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Run records one batch classification of an input file.
type Run struct {
	Input FileFingerprint
	Pairs int64
}

func (s *Store) ensureRunSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS batch_runs (
		path VARCHAR,
		size BIGINT,
		mod_time TIMESTAMP,
		pairs BIGINT
	)`)
	return err
}

// RecordRun stores the fingerprint of a classified input file.
func (s *Store) RecordRun(fp FileFingerprint, pairs int) error {
	_, err := s.db.Exec(`INSERT INTO batch_runs (path, size, mod_time, pairs) VALUES (?, ?, ?, ?)`,
		fp.Path, fp.Size, dbTime(fp.ModTime), int64(pairs))
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Runs returns all recorded runs in insertion order.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`SELECT path, size, mod_time, pairs FROM batch_runs`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.Input.Path, &r.Input.Size, &r.Input.ModTime, &r.Pairs); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// HasRun returns true if a run with the same fingerprint was recorded.
func (s *Store) HasRun(fp FileFingerprint) (bool, error) {
	var n int64
	err := s.db.QueryRow(`SELECT count(*) FROM batch_runs WHERE path=? AND size=? AND mod_time=?`,
		fp.Path, fp.Size, dbTime(fp.ModTime)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query run: %w", err)
	}
	return n > 0, nil
}

// dbTime converts t to the precision DuckDB stores for TIMESTAMP columns.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
