package source

import (
	"net/url"
	"path/filepath"
	"strings"

	"calsdt/domain/core"
	"calsdt/internal/errors"
	"calsdt/ports"
)

// Open picks a source from a location string:
//
//	numbers.txt                                  plain text, one candidate per line
//	numbers.csv, numbers.xlsx                    spreadsheet, column auto-detected
//	numbers.xlsx#Phone                           spreadsheet, header column "Phone"
//	sqlite://numbers.db?table=t&column=c         SQLite table column
//	postgres://user@host/db?table=t&column=c     PostgreSQL table column
//
// SQL locations also accept order=<column>.
func Open(location string) (ports.LineSource, error) {
	switch {
	case strings.HasPrefix(location, "sqlite://"):
		return openSQL("sqlite3", location)
	case strings.HasPrefix(location, "postgres://"), strings.HasPrefix(location, "postgresql://"):
		return openSQL("postgres", location)
	}

	path, column, _ := strings.Cut(location, "#")
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx", ".xlsm":
		return NewTableSource(path, TableOptions{Column: column})
	case "", ".txt", ".text", ".lst":
		return NewTextSource(path), nil
	default:
		return nil, core.NewUnsupportedFormatError(filepath.Ext(path))
	}
}

func openSQL(driver, location string) (ports.LineSource, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, errors.InvalidInput(err.Error())
	}

	q := u.Query()
	opts := SQLOptions{
		Table:   q.Get("table"),
		Column:  q.Get("column"),
		OrderBy: q.Get("order"),
	}
	q.Del("table")
	q.Del("column")
	q.Del("order")
	u.RawQuery = q.Encode()

	dsn := u.String()
	if driver == "sqlite3" {
		// sqlite://numbers.db, sqlite:///abs/numbers.db, sqlite://./rel/numbers.db
		dsn = u.Host + u.Path
		if u.RawQuery != "" {
			dsn += "?" + u.RawQuery
		}
	}
	return OpenSQLSource(driver, dsn, opts)
}
