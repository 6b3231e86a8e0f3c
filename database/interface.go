package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// Type is the closed set of supported database kinds.
type Type string

const (
	TypePostgreSQL Type = "postgresql"
	TypeMariaDB    Type = "mariadb"
)

var (
	ErrUnsupportedType   = errors.New("unsupported database type")
	ErrDriverUnavailable = errors.New("database driver unavailable")
	ErrQueryFailed       = errors.New("query failed")
)

// Interface for ease with mock tests
type DatabaseClient interface {
	Connect() error
	Close() error
	ExecuteQuery(query string) (*sql.Rows, error)
}

// Placeholder returns the parameter marker for the i-th (1-based) bind value
// in the SQL dialect of t.
func (t Type) Placeholder(i int) string {
	if t == TypePostgreSQL {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}

func unsupportedType(declared string) error {
	return fmt.Errorf("%w: %q (supported: %s, %s)", ErrUnsupportedType, declared, TypePostgreSQL, TypeMariaDB)
}
