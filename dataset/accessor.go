// Package dataset provides the high-level operations of the tool: reading
// tables or ad hoc queries into tabular results, writing results back into
// tables, and listing database catalogs.
package dataset

import (
	"errors"
	"io"

	"github.com/MinjaeKwon/DataAccessTool/config"
	"github.com/MinjaeKwon/DataAccessTool/database"

	"github.com/jmoiron/sqlx"
)

var ErrInvalidArguments = errors.New("invalid arguments")

// Accessor performs data access against the profiles in one configuration
// file. The file is re-read on every operation, so edits take effect
// immediately and isolated instances can point at fixture configurations.
type Accessor struct {
	ConfigPath string
}

// New returns an accessor using the default configuration path.
func New() *Accessor {
	return &Accessor{ConfigPath: config.DefaultPath()}
}

// NewWithConfig returns an accessor bound to an explicit configuration file.
func NewWithConfig(path string) *Accessor {
	return &Accessor{ConfigPath: path}
}

func (a *Accessor) loadProfile(name string) (*config.Profile, error) {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return nil, err
	}
	return cfg.Profile(name)
}

// ListDatabases prints the catalog of configured databases to w.
func (a *Accessor) ListDatabases(w io.Writer) error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	cfg.Describe(w)
	return nil
}

// Connect opens a raw connection to the named database. The caller must
// Close it.
func (a *Accessor) Connect(name string) (database.DatabaseClient, error) {
	profile, err := a.loadProfile(name)
	if err != nil {
		return nil, err
	}
	return database.Connect(profile)
}

// Engine opens a pooled engine handle to the named database. The caller must
// Close it.
func (a *Accessor) Engine(name string) (*sqlx.DB, error) {
	profile, err := a.loadProfile(name)
	if err != nil {
		return nil, err
	}
	return database.Engine(profile)
}

// qualifiedTable joins schema and table. Identifiers are interpolated into
// SQL unquoted and are trusted inputs, not user-supplied values.
func qualifiedTable(schema, table string) string {
	if schema != "" {
		return schema + "." + table
	}
	return table
}
