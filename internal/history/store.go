// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists solved equation reports in a SQLite database
// and lists or exports them.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/computor/pkg/types"
)

const (
	dbFile            = "history.db"
	defaultMaxResults = 20

	// timeLayout is fixed width so solved_at sorts chronologically as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// ErrNotFound is returned by Get when no report has the given ID.
var ErrNotFound = errors.New("report not found")

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates dir/history.db and its schema.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("history directory not configured")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, dir: cfg.Dir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			name TEXT,
			equation TEXT NOT NULL,
			reduced_form TEXT NOT NULL,
			degree INTEGER NOT NULL,
			kind TEXT NOT NULL,
			solution TEXT NOT NULL,
			description TEXT NOT NULL,
			solved_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_solved_at ON reports(solved_at)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_degree ON reports(degree)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores r under a new ID and returns the report with ID set.
func (s *Store) Record(ctx context.Context, r types.Report) (types.Report, error) {
	r.ID = uuid.New().String()
	if r.SolvedAt.IsZero() {
		r.SolvedAt = time.Now().UTC()
	}

	solutionJSON, err := json.Marshal(r.Solution)
	if err != nil {
		return r, fmt.Errorf("marshaling solution: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, name, equation, reduced_form, degree, kind, solution, description, solved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Equation, r.ReducedForm, r.Degree, string(r.Solution.Kind),
		string(solutionJSON), r.Description, r.SolvedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return r, fmt.Errorf("inserting report: %w", err)
	}
	return r, nil
}

// QueryOptions filters List results.
type QueryOptions struct {
	// Degree filters by polynomial degree when non-nil.
	Degree *int

	// Kind filters by solution kind.
	Kind types.SolutionKind

	// Contains filters by a substring of the input equation.
	Contains string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// List returns recorded reports, newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.Report, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT id, name, equation, reduced_form, degree, solution, description, solved_at
		FROM reports WHERE 1=1`)

	if opts.Degree != nil {
		qb.WriteString(` AND degree = ?`)
		args = append(args, *opts.Degree)
	}
	if opts.Kind != "" {
		qb.WriteString(` AND kind = ?`)
		args = append(args, string(opts.Kind))
	}
	if opts.Contains != "" {
		qb.WriteString(` AND instr(equation, ?) > 0`)
		args = append(args, opts.Contains)
	}

	qb.WriteString(` ORDER BY solved_at DESC, rowid DESC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var reports []types.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}
	return reports, nil
}

// Get returns the report with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (types.Report, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, equation, reduced_form, degree, solution, description, solved_at
		 FROM reports WHERE id = ?`, id)
	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Report{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(sc scanner) (types.Report, error) {
	var (
		r            types.Report
		name         sql.NullString
		solutionJSON string
		solvedAt     string
	)
	if err := sc.Scan(&r.ID, &name, &r.Equation, &r.ReducedForm, &r.Degree,
		&solutionJSON, &r.Description, &solvedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("scanning report: %w", err)
	}
	r.Name = name.String

	if err := json.Unmarshal([]byte(solutionJSON), &r.Solution); err != nil {
		return r, fmt.Errorf("decoding solution for %s: %w", r.ID, err)
	}
	t, err := time.Parse(timeLayout, solvedAt)
	if err != nil {
		return r, fmt.Errorf("parsing solved_at for %s: %w", r.ID, err)
	}
	r.SolvedAt = t
	return r, nil
}
