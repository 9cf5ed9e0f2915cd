// Package history records solve runs in a SQL database.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dbsmedya/gomaze/internal/logger"
	"github.com/dbsmedya/gomaze/internal/sqlutil"
)

// Status is the outcome of one solve run.
type Status string

const (
	StatusSolved Status = "solved"
	StatusNoPath Status = "no_path"
	StatusFailed Status = "failed"
)

// DefaultListLimit caps List when Filter.Limit is not set.
const DefaultListLimit = 20

// ErrRunNotFound is returned by Get when no run has the given id.
var ErrRunNotFound = errors.New("history: run not found")

// Run is one recorded solve of one maze with one algorithm.
type Run struct {
	ID           string
	Maze         string
	Algorithm    string
	Status       Status
	Steps        int
	Explored     int
	Fingerprint  string
	DurationMS   int64
	ErrorMessage string
	CreatedAt    time.Time
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Maze      string
	Algorithm string
	Limit     int
}

// columns are shared by every SELECT so scanRun stays in sync.
const columns = "id, maze, algorithm, status, steps, explored, fingerprint, duration_ms, error_message, created_at"

// created_at holds Unix milliseconds so both dialects store it the same way.
const createTableMySQL = `
CREATE TABLE IF NOT EXISTS %s (
	id CHAR(36) PRIMARY KEY,
	maze VARCHAR(255) NOT NULL,
	algorithm VARCHAR(16) NOT NULL,
	status VARCHAR(16) NOT NULL,
	steps INT NOT NULL DEFAULT 0,
	explored INT NOT NULL DEFAULT 0,
	fingerprint VARCHAR(64) NOT NULL DEFAULT '',
	duration_ms BIGINT NOT NULL DEFAULT 0,
	error_message TEXT,
	created_at BIGINT NOT NULL,
	INDEX idx_maze_created (maze, created_at)
) ENGINE=InnoDB;
`

const createTableSQLite = `
CREATE TABLE IF NOT EXISTS %s (
	id TEXT PRIMARY KEY,
	maze TEXT NOT NULL,
	algorithm TEXT NOT NULL,
	status TEXT NOT NULL,
	steps INTEGER NOT NULL DEFAULT 0,
	explored INTEGER NOT NULL DEFAULT 0,
	fingerprint TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL DEFAULT 0,
	error_message TEXT,
	created_at INTEGER NOT NULL
);
`

// Store persists runs into a single table.
type Store struct {
	db      *sql.DB
	dialect sqlutil.Dialect
	table   string // raw name
	quoted  string // dialect-quoted name
	logger  *logger.Logger
	now     func() time.Time
}

// NewStore creates a run store over db. The table name must be a plain identifier.
func NewStore(db *sql.DB, dialect sqlutil.Dialect, table string, log *logger.Logger) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if dialect != sqlutil.MySQL && dialect != sqlutil.SQLite {
		return nil, fmt.Errorf("unsupported dialect: %s", dialect)
	}
	quoted, err := dialect.QuoteSafe(table)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewDefault()
	}

	return &Store{
		db:      db,
		dialect: dialect,
		table:   table,
		quoted:  quoted,
		logger:  log,
		now:     time.Now,
	}, nil
}

// InitializeTables creates the run table if it does not exist. It is idempotent.
func (s *Store) InitializeTables(ctx context.Context) error {
	ddl := createTableSQLite
	if s.dialect == sqlutil.MySQL {
		ddl = createTableMySQL
	}

	s.logger.Debugf("Initializing history table %s", s.table)
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(ddl, s.quoted)); err != nil {
		return fmt.Errorf("failed to create %s table: %w", s.table, err)
	}

	if s.dialect == sqlutil.SQLite {
		idx := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (maze, created_at)",
			s.dialect.Quote("idx_"+s.table+"_maze_created"), s.quoted)
		if _, err := s.db.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("failed to create %s index: %w", s.table, err)
		}
	}
	return nil
}

// Record inserts run. A missing ID is filled with a UUIDv7 and a zero
// CreatedAt with the current time; both are written back to run.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run == nil {
		return fmt.Errorf("run is nil")
	}
	if run.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate run id: %w", err)
		}
		run.ID = id.String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now().UTC()
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", s.quoted, columns)
	_, err := s.db.ExecContext(ctx, query,
		run.ID,
		run.Maze,
		run.Algorithm,
		string(run.Status),
		run.Steps,
		run.Explored,
		run.Fingerprint,
		run.DurationMS,
		nullString(run.ErrorMessage),
		run.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}

	s.logger.Debugf("Recorded run %s (%s/%s: %s)", run.ID, run.Maze, run.Algorithm, run.Status)
	return nil
}

// List returns the most recent runs matching f, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]Run, error) {
	var where []string
	var args []interface{}
	if f.Maze != "" {
		where = append(where, "maze = ?")
		args = append(args, f.Maze)
	}
	if f.Algorithm != "" {
		where = append(where, "algorithm = ?")
		args = append(args, f.Algorithm)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := fmt.Sprintf("SELECT %s FROM %s", columns, s.quoted)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Get returns the run with the given id or ErrRunNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", columns, s.quoted)
	run, err := scanRun(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var status string
	var errMsg sql.NullString
	var created int64

	err := row.Scan(
		&run.ID,
		&run.Maze,
		&run.Algorithm,
		&status,
		&run.Steps,
		&run.Explored,
		&run.Fingerprint,
		&run.DurationMS,
		&errMsg,
		&created,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	run.Status = Status(status)
	run.ErrorMessage = errMsg.String
	run.CreatedAt = time.UnixMilli(created).UTC()
	return &run, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
