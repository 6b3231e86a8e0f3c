package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/MinjaeKwon/DataAccessTool/database"

	"github.com/jmoiron/sqlx"
)

// WriteMode controls what happens when the target table already exists.
type WriteMode string

const (
	ModeFail    WriteMode = "fail"
	ModeReplace WriteMode = "replace"
	ModeAppend  WriteMode = "append"
)

// rows per multi-row INSERT statement
var insertChunkSize = 1000

// name of the ordinal column added by IncludeIndex ("index" is a reserved
// word in both dialects)
const indexColumn = "row_index"

// SaveOptions configures SaveDataset. Mode defaults to append.
type SaveOptions struct {
	Schema       string
	Mode         WriteMode
	IncludeIndex bool
}

// SaveDataset bulk-inserts res into the named table through a pooled engine,
// batching rows into multi-row statements. A success or failure notice is
// printed either way; failures are also returned to the caller.
func (a *Accessor) SaveDataset(res *database.Result, name, table string, opts SaveOptions) error {
	if opts.Mode == "" {
		opts.Mode = ModeAppend
	}
	target := qualifiedTable(opts.Schema, table)

	if err := a.saveDataset(res, name, table, opts); err != nil {
		fmt.Printf("save to %s in %q failed: %v\n", target, name, err)
		return err
	}
	fmt.Printf("saved %d rows to %s in %q (%s)\n", res.Len(), target, name, opts.Mode)
	return nil
}

func (a *Accessor) saveDataset(res *database.Result, name, table string, opts SaveOptions) error {
	switch opts.Mode {
	case ModeFail, ModeReplace, ModeAppend:
	default:
		return fmt.Errorf("%w: invalid write mode %q", ErrInvalidArguments, opts.Mode)
	}
	if len(res.Columns) == 0 {
		return fmt.Errorf("%w: dataset has no columns", ErrInvalidArguments)
	}

	profile, err := a.loadProfile(name)
	if err != nil {
		return err
	}

	engine, err := database.Engine(profile)
	if err != nil {
		return err
	}
	defer engine.Close()

	return writeDataset(engine, database.Type(profile.Type), res, table, opts)
}

func writeDataset(engine *sqlx.DB, dbType database.Type, res *database.Result, table string, opts SaveOptions) error {
	target := qualifiedTable(opts.Schema, table)
	columns := res.Columns
	if opts.IncludeIndex {
		columns = append([]string{indexColumn}, columns...)
	}

	exists, err := tableExists(engine, dbType, opts.Schema, table)
	if err != nil {
		return err
	}

	switch opts.Mode {
	case ModeFail:
		if exists {
			return fmt.Errorf("table %s already exists", target)
		}
	case ModeReplace:
		if exists {
			if _, err := engine.Exec("DROP TABLE " + target); err != nil {
				return fmt.Errorf("failed to drop table %s, %v", target, err)
			}
			exists = false
		}
	}

	if !exists {
		if _, err := engine.Exec(createTableSQL(dbType, target, columns, res, opts.IncludeIndex)); err != nil {
			return fmt.Errorf("failed to create table %s, %v", target, err)
		}
	}

	//insert in fixed-size chunks to bound per-statement size
	for start := 0; start < res.Len(); start += insertChunkSize {
		end := start + insertChunkSize
		if end > res.Len() {
			end = res.Len()
		}
		stmt, args := insertStatement(dbType, target, columns, res, start, end, opts.IncludeIndex)
		if _, err := engine.Exec(stmt, args...); err != nil {
			return fmt.Errorf("%w: failed to insert rows %d-%d into %s: %v", database.ErrQueryFailed, start, end, target, err)
		}
	}
	return nil
}

// tableExists checks the database's own metadata views for the target table.
func tableExists(engine *sqlx.DB, dbType database.Type, schema, table string) (bool, error) {
	var query string
	var args []interface{}

	switch dbType {
	case database.TypePostgreSQL:
		if schema == "" {
			schema = "public"
		}
		query = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = $1 AND table_name = $2"
		args = []interface{}{schema, table}
	case database.TypeMariaDB:
		if schema == "" {
			query = "SELECT COUNT(*) FROM information_schema.TABLES WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ?"
			args = []interface{}{table}
		} else {
			query = "SELECT COUNT(*) FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?"
			args = []interface{}{schema, table}
		}
	default:
		return false, fmt.Errorf("%w: %q", database.ErrUnsupportedType, dbType)
	}

	var count int
	if err := engine.Get(&count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check whether %s exists, %v", table, err)
	}
	return count > 0, nil
}

// createTableSQL derives a CREATE TABLE statement from the dataset's columns,
// picking column types from the first non-nil value seen per column.
func createTableSQL(dbType database.Type, target string, columns []string, res *database.Result, includeIndex bool) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		if includeIndex && i == 0 {
			defs[i] = col + " BIGINT"
			continue
		}
		defs[i] = col + " " + columnType(dbType, sampleValue(res, col))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", target, strings.Join(defs, ", "))
}

func sampleValue(res *database.Result, column string) interface{} {
	for _, row := range res.Rows {
		if v := row[column]; v != nil {
			return v
		}
	}
	return nil
}

func columnType(dbType database.Type, sample interface{}) string {
	switch sample.(type) {
	case int, int8, int16, int32, int64, uint, uint16, uint32, uint64:
		return "BIGINT"
	case float32, float64:
		if dbType == database.TypePostgreSQL {
			return "DOUBLE PRECISION"
		}
		return "DOUBLE"
	case bool:
		return "BOOLEAN"
	case time.Time:
		if dbType == database.TypePostgreSQL {
			return "TIMESTAMP"
		}
		return "DATETIME"
	case []byte:
		if dbType == database.TypePostgreSQL {
			return "BYTEA"
		}
		return "BLOB"
	default:
		return "TEXT"
	}
}

// insertStatement builds one multi-row INSERT for rows [start, end) together
// with its flattened bind arguments.
func insertStatement(dbType database.Type, target string, columns []string, res *database.Result, start, end int, includeIndex bool) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(target)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(") VALUES ")

	args := make([]interface{}, 0, (end-start)*len(columns))
	n := 1
	for i := start; i < end; i++ {
		if i > start {
			sb.WriteString(", ")
		}
		placeholders := make([]string, len(columns))
		for j := range columns {
			placeholders[j] = dbType.Placeholder(n)
			n++
		}
		sb.WriteString("(")
		sb.WriteString(strings.Join(placeholders, ", "))
		sb.WriteString(")")

		if includeIndex {
			args = append(args, i)
		}
		args = append(args, res.Values(res.Rows[i])...)
	}
	return sb.String(), args
}
