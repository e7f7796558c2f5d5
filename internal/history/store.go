// Package history persists alias execution records to a per-user SQLite
// database, one row per run. Recording always happens in the CLI layer
// after the engine returns; a recording failure never changes the exit
// status of the alias that ran.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Execution is one recorded alias run.
type Execution struct {
	ID           int64
	WorkspaceID  string
	Alias        string
	CommandCount int
	Parallel     bool
	Success      bool
	ExitCode     int
	DurationMS   int64
	CreatedAt    time.Time
}

// Filter narrows ListExecutions results. Zero values match everything.
type Filter struct {
	WorkspaceID string
	Alias       string
	FailedOnly  bool
}

// Store manages the SQLite execution history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens the history database at dbPath, creating the file and its
// parent directory if necessary, and brings the schema up to date.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == ":memory:" {
		return openAndInitStore(dbPath)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	return openAndInitStore(dbPath)
}

func openAndInitStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Configure SQLite for concurrent cs invocations writing to the same
	// history file. busy_timeout goes first so the later pragmas wait on
	// locks instead of failing outright.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}

	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	store := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if err := store.ApplyMigrations(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return store, nil
}

// execWithRetry executes a statement with exponential backoff on lock errors
// that can occur while two processes initialize the same database file.
func execWithRetry(db *sql.DB, stmt string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(stmt)
		if err == nil {
			return nil
		}

		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}

		lastErr = err
		delay := baseDelay * time.Duration(1<<attempt)
		time.Sleep(delay)
	}
	return lastErr
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordExecution appends one run to the history and fills in its ID.
func (s *Store) RecordExecution(ctx context.Context, exec *Execution) error {
	query := `INSERT INTO executions
		(workspace_id, alias, command_count, parallel, success, exit_code, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		exec.WorkspaceID,
		exec.Alias,
		exec.CommandCount,
		exec.Parallel,
		exec.Success,
		exec.ExitCode,
		exec.DurationMS,
	)
	if err != nil {
		return fmt.Errorf("insert execution: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	exec.ID = id

	return nil
}

// ListExecutions returns recorded runs matching the filter, newest first.
// A limit of zero or less returns everything.
func (s *Store) ListExecutions(ctx context.Context, filter Filter, limit int) ([]*Execution, error) {
	query := `SELECT id, workspace_id, alias, command_count, parallel, success, exit_code, duration_ms, created_at
		FROM executions`

	var clauses []string
	args := []interface{}{}
	if filter.WorkspaceID != "" {
		clauses = append(clauses, "workspace_id = ?")
		args = append(args, filter.WorkspaceID)
	}
	if filter.Alias != "" {
		clauses = append(clauses, "alias = ?")
		args = append(args, filter.Alias)
	}
	if filter.FailedOnly {
		clauses = append(clauses, "success = 0")
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query executions: %w", err)
	}
	defer rows.Close()

	var executions []*Execution
	for rows.Next() {
		exec := &Execution{}
		err := rows.Scan(
			&exec.ID,
			&exec.WorkspaceID,
			&exec.Alias,
			&exec.CommandCount,
			&exec.Parallel,
			&exec.Success,
			&exec.ExitCode,
			&exec.DurationMS,
			&exec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan execution row: %w", err)
		}

		executions = append(executions, exec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate execution rows: %w", err)
	}

	return executions, nil
}

// tableExists checks if a table exists in the database.
func (s *Store) tableExists(tableName string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`
	err := s.db.QueryRow(query, tableName).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check table existence: %w", err)
	}
	return count > 0, nil
}

// indexExists checks if an index exists in the database.
func (s *Store) indexExists(indexName string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name=?`
	err := s.db.QueryRow(query, indexName).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check index existence: %w", err)
	}
	return count > 0, nil
}
