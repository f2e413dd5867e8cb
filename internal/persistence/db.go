// Package persistence provides SQLite-based storage for simulation runs.
package persistence

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/warband/internal/agents"
	"github.com/talgya/warband/internal/engine"
)

// Run describes one recorded simulation run.
type Run struct {
	ID        string `db:"id"` // UUID
	Seed      int64  `db:"seed"`
	Warriors  int    `db:"warriors"`
	Ticks     uint64 `db:"ticks"`
	CreatedAt string `db:"created_at"` // RFC3339
}

// DB wraps a SQLite connection for run storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		warriors INTEGER NOT NULL,
		ticks INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS warriors (
		run_id TEXT NOT NULL,
		key INTEGER NOT NULL,
		xp REAL NOT NULL,
		strength INTEGER NOT NULL,
		PRIMARY KEY (run_id, key)
	);

	CREATE TABLE IF NOT EXISTS tick_stats (
		run_id TEXT NOT NULL,
		tick INTEGER NOT NULL,
		avg_xp REAL NOT NULL,
		min_xp REAL NOT NULL,
		max_xp REAL NOT NULL,
		avg_strength REAL NOT NULL,
		max_strength INTEGER NOT NULL,
		PRIMARY KEY (run_id, tick)
	);

	CREATE INDEX IF NOT EXISTS idx_warriors_run ON warriors(run_id);
	CREATE INDEX IF NOT EXISTS idx_tick_stats_run ON tick_stats(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun records a run and the final state of every warrior (full replace
// for that run ID).
func (db *DB) SaveRun(run Run, warriors []agents.Warrior) error {
	if run.CreatedAt == "" {
		run.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT OR REPLACE INTO runs (id, seed, warriors, ticks, created_at) VALUES (?, ?, ?, ?, ?)",
		run.ID, run.Seed, run.Warriors, run.Ticks, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	if _, err := tx.Exec("DELETE FROM warriors WHERE run_id = ?", run.ID); err != nil {
		return err
	}

	stmt, err := tx.Preparex("INSERT INTO warriors (run_id, key, xp, strength) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range warriors {
		if _, err := stmt.Exec(run.ID, w.ID, w.XP, w.Strength); err != nil {
			return fmt.Errorf("insert warrior %d: %w", w.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Info("run saved", "run_id", run.ID, "warriors", len(warriors), "ticks", run.Ticks)
	return nil
}

// SaveTickStats appends one aggregate stats row for a run.
func (db *DB) SaveTickStats(runID string, tick uint64, st engine.SimStats) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO tick_stats
		(run_id, tick, avg_xp, min_xp, max_xp, avg_strength, max_strength)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, tick, st.AvgXP, st.MinXP, st.MaxXP, st.AvgStrength, st.MaxStrength,
	)
	if err != nil {
		return fmt.Errorf("insert tick stats (run %s, tick %d): %w", runID, tick, err)
	}
	return nil
}

// LoadWarriors returns the stored warrior snapshot for a run, in key order.
func (db *DB) LoadWarriors(runID string) ([]agents.Warrior, error) {
	var warriors []agents.Warrior
	err := db.conn.Select(&warriors,
		"SELECT key, xp, strength FROM warriors WHERE run_id = ? ORDER BY key", runID)
	if err != nil {
		return nil, fmt.Errorf("load warriors for run %s: %w", runID, err)
	}
	return warriors, nil
}

// RecentRuns returns the most recent runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs,
		"SELECT id, seed, warriors, ticks, created_at FROM runs ORDER BY created_at DESC LIMIT ?", limit)
	return runs, err
}
