// Package history keeps a small local record of completed runs. Only the
// aggregate summary is stored; the run ledger itself is never persisted.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/invoice-organizer/internal/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	started_at    TEXT NOT NULL,
	finished_at   TEXT NOT NULL,
	input_folder  TEXT NOT NULL,
	output_folder TEXT NOT NULL,
	scheme        TEXT NOT NULL,
	mode          TEXT NOT NULL,
	total         INTEGER NOT NULL,
	ok            INTEGER NOT NULL,
	partial       INTEGER NOT NULL,
	skipped       INTEGER NOT NULL,
	copied        INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs (started_at DESC);
`

// RunRecord is one stored run summary.
type RunRecord struct {
	ID           string
	StartedAt    time.Time
	FinishedAt   time.Time
	InputFolder  string
	OutputFolder string
	Scheme       string
	Mode         string
	Total        int
	OK           int
	Partial      int
	Skipped      int
	Copied       int
}

// Store wraps the SQLite history database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the history database at path. Pass
// ":memory:" for an in-memory store.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	logger.Debug("history.open", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun appends one finalized ledger's summary.
func (s *Store) RecordRun(ctx context.Context, ledger *entity.RunLedger) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, input_folder, output_folder,
			scheme, mode, total, ok, partial, skipped, copied)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ledger.RunID.String(),
		ledger.StartedAt.Format(time.RFC3339),
		ledger.FinishedAt.Format(time.RFC3339),
		ledger.InputFolder,
		ledger.OutputFolder,
		string(ledger.Scheme),
		string(ledger.Mode),
		ledger.Total(),
		ledger.OK,
		ledger.Partial,
		ledger.Skipped,
		ledger.Copied,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	s.logger.Debug("history.record", "run_id", ledger.RunID)
	return nil
}

// ListRuns returns the most recent run summaries, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, input_folder, output_folder,
			scheme, mode, total, ok, partial, skipped, copied
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		var started, finished string
		if err := rows.Scan(&r.ID, &started, &finished, &r.InputFolder, &r.OutputFolder,
			&r.Scheme, &r.Mode, &r.Total, &r.OK, &r.Partial, &r.Skipped, &r.Copied); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		r.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		out = append(out, r)
	}
	return out, rows.Err()
}
