package dataset

import (
	"fmt"

	"github.com/MinjaeKwon/DataAccessTool/database"
)

// ListTables enumerates the tables of the named database through its
// information_schema views, returning columns (table_name, table_type).
// When schema is empty, PostgreSQL defaults to 'public' and MariaDB to the
// connection's current database.
func (a *Accessor) ListTables(name, schema string) (*database.Result, error) {
	profile, err := a.loadProfile(name)
	if err != nil {
		return nil, err
	}

	query, err := catalogQuery(database.Type(profile.Type), schema)
	if err != nil {
		return nil, err
	}

	client, err := database.Connect(profile)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return database.RunQuery(client, query)
}

func catalogQuery(dbType database.Type, schema string) (string, error) {
	switch dbType {
	case database.TypePostgreSQL:
		if schema == "" {
			schema = "public"
		}
		return fmt.Sprintf(
			"SELECT table_name, table_type FROM information_schema.tables WHERE table_schema = '%s' ORDER BY table_name",
			schema), nil
	case database.TypeMariaDB:
		filter := "TABLE_SCHEMA = DATABASE()"
		if schema != "" {
			filter = fmt.Sprintf("TABLE_SCHEMA = '%s'", schema)
		}
		return fmt.Sprintf(
			"SELECT TABLE_NAME AS table_name, TABLE_TYPE AS table_type FROM information_schema.TABLES WHERE %s ORDER BY TABLE_NAME",
			filter), nil
	default:
		return "", fmt.Errorf("%w: %q", database.ErrUnsupportedType, dbType)
	}
}
