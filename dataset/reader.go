package dataset

import (
	"fmt"

	"github.com/MinjaeKwon/DataAccessTool/database"
)

// QueryOptions selects what to read: either a raw SQL query, or a table name
// with optional schema and row limit. Exactly one of Query and Table must be
// set.
type QueryOptions struct {
	Query  string
	Table  string
	Schema string
	Limit  int
}

// GetDataset executes the selected query against the named database and
// returns the materialized result. The connection is opened for this call
// only and closed on every exit path.
func (a *Accessor) GetDataset(name string, opts QueryOptions) (*database.Result, error) {
	query, err := buildQuery(opts)
	if err != nil {
		return nil, err
	}

	client, err := a.Connect(name)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return database.RunQuery(client, query)
}

// Preview returns the first n rows of a table (default 5).
func (a *Accessor) Preview(name, table, schema string, n int) (*database.Result, error) {
	if n <= 0 {
		n = 5
	}
	return a.GetDataset(name, QueryOptions{Table: table, Schema: schema, Limit: n})
}

func buildQuery(opts QueryOptions) (string, error) {
	if opts.Query == "" && opts.Table == "" {
		return "", fmt.Errorf("%w: either Query or Table must be set", ErrInvalidArguments)
	}
	if opts.Query != "" && opts.Table != "" {
		return "", fmt.Errorf("%w: Query and Table are mutually exclusive", ErrInvalidArguments)
	}
	if opts.Query != "" {
		return opts.Query, nil
	}

	target := qualifiedTable(opts.Schema, opts.Table)
	if opts.Limit > 0 {
		return fmt.Sprintf("SELECT * FROM %s LIMIT %d", target, opts.Limit), nil
	}
	return "SELECT * FROM " + target, nil
}
