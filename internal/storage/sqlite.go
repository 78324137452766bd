package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore indexes run metadata in a single sqlite database so runs
// scattered across data directories stay queryable from one place.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveRun(ctx context.Context, meta RunMetadata) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	metricsJSON, err := json.Marshal(meta.Metrics)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, potential, sampler, timestamp, seed, steps, deposits, biased, metrics)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			potential = excluded.potential,
			sampler = excluded.sampler,
			timestamp = excluded.timestamp,
			seed = excluded.seed,
			steps = excluded.steps,
			deposits = excluded.deposits,
			biased = excluded.biased,
			metrics = excluded.metrics
	`, meta.ID, meta.Potential, meta.Sampler, meta.Timestamp.Format(time.RFC3339Nano), meta.Seed, meta.Steps, meta.Deposits, meta.Biased, string(metricsJSON))
	return err
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (RunMetadata, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return RunMetadata{}, false, err
	}

	var meta RunMetadata
	var ts, metricsJSON string
	err = db.QueryRowContext(ctx, `
		SELECT id, potential, sampler, timestamp, seed, steps, deposits, biased, metrics
		FROM runs WHERE id = ?
	`, id).Scan(&meta.ID, &meta.Potential, &meta.Sampler, &ts, &meta.Seed, &meta.Steps, &meta.Deposits, &meta.Biased, &metricsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunMetadata{}, false, nil
		}
		return RunMetadata{}, false, err
	}

	if meta.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
		return RunMetadata{}, false, err
	}
	if err := json.Unmarshal([]byte(metricsJSON), &meta.Metrics); err != nil {
		return RunMetadata{}, false, err
	}
	return meta, true, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context) ([]RunMetadata, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, potential, sampler, timestamp, seed, steps, deposits, biased, metrics
		FROM runs ORDER BY timestamp DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]RunMetadata, 0)
	for rows.Next() {
		var meta RunMetadata
		var ts, metricsJSON string
		if err := rows.Scan(&meta.ID, &meta.Potential, &meta.Sampler, &ts, &meta.Seed, &meta.Steps, &meta.Deposits, &meta.Biased, &metricsJSON); err != nil {
			return nil, err
		}
		if meta.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(metricsJSON), &meta.Metrics); err != nil {
			return nil, err
		}
		runs = append(runs, meta)
	}

	return runs, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			potential TEXT NOT NULL,
			sampler TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			seed INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			deposits INTEGER NOT NULL,
			biased INTEGER NOT NULL,
			metrics TEXT NOT NULL
		);
	`)
	return err
}
