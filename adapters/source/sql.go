package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"calsdt/internal/errors"
	"calsdt/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// SQLOptions names the table and column holding the candidates
type SQLOptions struct {
	Table  string
	Column string
	// OrderBy fixes the line order; without it the database's scan order is used
	OrderBy string
}

// SQLSource reads candidates from a column of a SQL table
type SQLSource struct {
	db    *sqlx.DB
	name  string
	query string
}

var _ ports.LineSource = (*SQLSource)(nil)

// OpenSQLSource connects with the given driver ("sqlite3" or "postgres")
func OpenSQLSource(driver, dsn string, opts SQLOptions) (*SQLSource, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, errors.SourceError(driver, err)
	}
	src, err := NewSQLSource(db, opts)
	if err != nil {
		db.Close()
		return nil, err
	}
	return src, nil
}

// NewSQLSource wraps an existing connection. Identifiers are validated because
// they are spliced into the query text.
func NewSQLSource(db *sqlx.DB, opts SQLOptions) (*SQLSource, error) {
	for _, ident := range []string{opts.Table, opts.Column} {
		if !identifierPattern.MatchString(ident) {
			return nil, errors.InvalidInput(fmt.Sprintf("invalid SQL identifier %q", ident))
		}
	}
	query := fmt.Sprintf("SELECT %s FROM %s", opts.Column, opts.Table)
	if opts.OrderBy != "" {
		if !identifierPattern.MatchString(opts.OrderBy) {
			return nil, errors.InvalidInput(fmt.Sprintf("invalid SQL identifier %q", opts.OrderBy))
		}
		query += " ORDER BY " + opts.OrderBy
	}

	return &SQLSource{
		db:    db,
		name:  fmt.Sprintf("%s:%s.%s", db.DriverName(), opts.Table, opts.Column),
		query: query,
	}, nil
}

func (s *SQLSource) Name() string { return s.name }

// ReadLines returns the column values; NULL becomes an empty line
func (s *SQLSource) ReadLines(ctx context.Context) ([]string, error) {
	var values []sql.NullString
	if err := s.db.SelectContext(ctx, &values, s.query); err != nil {
		return nil, errors.SourceError(s.name, err)
	}

	lines := make([]string, len(values))
	for i, v := range values {
		lines[i] = v.String
	}
	return lines, nil
}

// Close releases the connection
func (s *SQLSource) Close() error {
	return s.db.Close()
}
