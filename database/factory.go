package database

import (
	"fmt"
	"time"

	"github.com/MinjaeKwon/DataAccessTool/config"

	"github.com/jmoiron/sqlx"
)

// pool settings for the bulk-write engine
const (
	engineMaxOpenConns = 10
	engineMaxIdleConns = 5
	engineConnLifetime = time.Hour
)

// Connect opens a single raw connection for the given profile, dispatching on
// its declared type. The caller owns the returned client and must Close it.
func Connect(p *config.Profile) (DatabaseClient, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var client DatabaseClient
	switch Type(p.Type) {
	case TypePostgreSQL:
		client = NewPostgreSQLClientFromProfile(p)
	case TypeMariaDB:
		client = NewMariaDBClientFromProfile(p)
	default:
		return nil, unsupportedType(p.Type)
	}

	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to %q: %w", p.Name, err)
	}
	return client, nil
}

// Engine opens a pooled handle for the given profile, for bulk operations.
// The caller must Close it on every exit path.
func Engine(p *config.Profile) (*sqlx.DB, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	driver, dsn, err := EngineDSN(p)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s engine: %v", ErrDriverUnavailable, driver, err)
	}

	//configuring connection settings
	db.SetMaxOpenConns(engineMaxOpenConns)
	db.SetMaxIdleConns(engineMaxIdleConns)
	db.SetConnMaxLifetime(engineConnLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %q: %v", p.Name, err)
	}
	return db, nil
}

// EngineDSN returns the sqlx driver name and connection string for a profile.
func EngineDSN(p *config.Profile) (driver, dsn string, err error) {
	switch Type(p.Type) {
	case TypePostgreSQL:
		dsn = fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=disable", p.User, p.Password, p.Host, p.Port, p.Database)
		return "postgres", dsn, nil
	case TypeMariaDB:
		return "mysql", NewMariaDBClientFromProfile(p).DSN(), nil
	default:
		return "", "", unsupportedType(p.Type)
	}
}
