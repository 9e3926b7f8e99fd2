package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"aurafocus/internal/core/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const (
	historyFileName    = "history.db"
	historySchemaLevel = 1
)

// SessionRecord is one completed session.
type SessionRecord struct {
	ID              string
	Session         model.SessionType
	DurationSeconds int
	CompletedAt     time.Time
}

// SessionTotals aggregates completed sessions of one type.
type SessionTotals struct {
	Count        int
	TotalSeconds int64
}

// History is the SQLite journal of completed sessions.
type History struct {
	db *sql.DB
}

// OpenHistory opens (or creates) the history database inside dir.
func OpenHistory(dir string) (*History, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	return openHistory(filepath.Join(dir, historyFileName))
}

// OpenMemoryHistory creates an in-memory history for tests.
func OpenMemoryHistory() (*History, error) {
	return openHistory(":memory:")
}

func openHistory(dsn string) (*History, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	history := &History{db: db}
	if err := history.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history: %w", err)
	}
	return history, nil
}

// Close releases the database.
func (history *History) Close() error {
	return history.db.Close()
}

func (history *History) migrate() error {
	var version int
	if err := history.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= historySchemaLevel {
		return nil
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS sessions (
		id               TEXT PRIMARY KEY,
		session_type     TEXT NOT NULL,
		duration_seconds INTEGER NOT NULL,
		completed_at     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_completed ON sessions(completed_at);
	`
	if _, err := history.db.Exec(ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}

	_, err := history.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", historySchemaLevel))
	return err
}

// Record stores a completed session. A zero ID or time is filled in.
func (history *History) Record(ctx context.Context, record SessionRecord) (SessionRecord, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CompletedAt.IsZero() {
		record.CompletedAt = time.Now()
	}
	record.CompletedAt = record.CompletedAt.UTC()

	_, err := history.db.ExecContext(ctx,
		`INSERT INTO sessions (id, session_type, duration_seconds, completed_at) VALUES (?, ?, ?, ?)`,
		record.ID, string(record.Session), record.DurationSeconds, record.CompletedAt.Format(time.RFC3339),
	)
	if err != nil {
		return record, fmt.Errorf("record session: %w", err)
	}
	return record, nil
}

// Recent returns the latest completed sessions, newest first.
func (history *History) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := history.db.QueryContext(ctx,
		`SELECT id, session_type, duration_seconds, completed_at
		 FROM sessions ORDER BY completed_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var record SessionRecord
		var session, completedAt string
		if err := rows.Scan(&record.ID, &session, &record.DurationSeconds, &completedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		record.Session = model.SessionType(session)
		completed, err := time.Parse(time.RFC3339, completedAt)
		if err != nil {
			return nil, fmt.Errorf("parse completed_at of session %s: %w", record.ID, err)
		}
		record.CompletedAt = completed
		records = append(records, record)
	}
	return records, rows.Err()
}

// Summary aggregates sessions completed at or after since.
func (history *History) Summary(ctx context.Context, since time.Time) (map[model.SessionType]SessionTotals, error) {
	rows, err := history.db.QueryContext(ctx,
		`SELECT session_type, COUNT(*), COALESCE(SUM(duration_seconds), 0)
		 FROM sessions WHERE completed_at >= ? GROUP BY session_type`,
		since.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("summarize sessions: %w", err)
	}
	defer rows.Close()

	summary := make(map[model.SessionType]SessionTotals)
	for rows.Next() {
		var session string
		var totals SessionTotals
		if err := rows.Scan(&session, &totals.Count, &totals.TotalSeconds); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summary[model.SessionType(session)] = totals
	}
	return summary, rows.Err()
}
