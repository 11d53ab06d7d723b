// Package storage provides a SQLite-based journal of played runs.
// A run is stored as its seed, tick rate, tuning and the input frames it
// received, which is enough to replay it exactly. Scores are never stored.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/floppy/internal/core"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run describes one recorded run.
type Run struct {
	ID        int64
	GameID    string
	Seed      int64
	TickRate  int
	Config    []byte // YAML tuning the run was played with
	Steps     int    // Number of Step calls recorded
	CreatedAt time.Time
}

// Recording is a run together with one input frame per step.
type Recording struct {
	Run
	Frames []core.InputFrame
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			config TEXT NOT NULL,
			steps INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS run_inputs (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			step INTEGER NOT NULL,
			actions TEXT NOT NULL,
			PRIMARY KEY (run_id, step)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and its input frames.
// Only frames with actions are stored; Steps keeps the total length.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(rec Recording) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	result, err := tx.Exec(
		"INSERT INTO runs (game_id, seed, tick_rate, config, steps) VALUES (?, ?, ?, ?, ?)",
		rec.GameID, rec.Seed, rec.TickRate, string(rec.Config), len(rec.Frames),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO run_inputs (run_id, step, actions) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare input insert: %w", err)
	}
	defer stmt.Close()

	for step, f := range rec.Frames {
		if f.Len() == 0 {
			continue
		}
		if _, err := stmt.Exec(id, step, encodeFrame(f)); err != nil {
			return 0, fmt.Errorf("storage: cannot save input for step %d: %w", step, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// Runs lists recorded runs, newest first.
func (s *Store) Runs(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, tick_rate, config, steps, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// LoadRun loads a run with all of its input frames.
func (s *Store) LoadRun(id int64) (*Recording, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, seed, tick_rate, config, steps, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	rec := &Recording{Run: r, Frames: make([]core.InputFrame, r.Steps)}

	rows, err := s.db.Query(
		"SELECT step, actions FROM run_inputs WHERE run_id = ? ORDER BY step",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query inputs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var step int
		var actions string
		if err := rows.Scan(&step, &actions); err != nil {
			return nil, fmt.Errorf("storage: cannot scan input: %w", err)
		}
		if step < 0 || step >= len(rec.Frames) {
			return nil, fmt.Errorf("storage: run %d has input for step %d beyond %d steps", id, step, r.Steps)
		}
		f, err := decodeFrame(actions)
		if err != nil {
			return nil, fmt.Errorf("storage: run %d step %d: %w", id, step, err)
		}
		rec.Frames[step] = f
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

// DeleteRun removes a run and its inputs.
func (s *Store) DeleteRun(id int64) error {
	result, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}

	// Inputs go too even if the connection has foreign keys disabled.
	if _, err := s.db.Exec("DELETE FROM run_inputs WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete run inputs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var config string
	var createdAt any
	if err := sc.Scan(&r.ID, &r.GameID, &r.Seed, &r.TickRate, &config, &r.Steps, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Config = []byte(config)

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}

// encodeFrame stores actions as comma-separated names in delivery order.
func encodeFrame(f core.InputFrame) string {
	names := make([]string, 0, f.Len())
	for _, a := range f.Actions() {
		names = append(names, a.String())
	}
	return strings.Join(names, ",")
}

func decodeFrame(s string) (core.InputFrame, error) {
	f := core.NewInputFrame()
	if s == "" {
		return f, nil
	}
	for _, name := range strings.Split(s, ",") {
		a, ok := core.ParseAction(name)
		if !ok {
			return f, fmt.Errorf("unknown action %q", name)
		}
		f.Set(a)
	}
	return f, nil
}
