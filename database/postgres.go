package database

import (
	"database/sql"
	"fmt"

	"github.com/MinjaeKwon/DataAccessTool/config"

	_ "github.com/lib/pq"
)

type PostgreSQLClient struct {
	User     string
	Password string
	Host     string
	Port     int
	DBName   string
	DB       *sql.DB
}

// create a PostgreSQL client using manual parameters, (for tests)
func NewPostgreSQLClient(user, password, host string, port int, dbname string) *PostgreSQLClient {
	return &PostgreSQLClient{
		User:     user,
		Password: password,
		Host:     host,
		Port:     port,
		DBName:   dbname,
	}
}

// create a PostgreSQL client from a configuration profile
func NewPostgreSQLClientFromProfile(p *config.Profile) *PostgreSQLClient {
	return NewPostgreSQLClient(p.User, p.Password, p.Host, p.Port, p.Database)
}

// DSN for the lib/pq driver
func (p *PostgreSQLClient) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", p.Host, p.Port, p.User, p.Password, p.DBName)
}

// connect to the PostgreSQL database
func (p *PostgreSQLClient) Connect() error {
	db, err := sql.Open("postgres", p.DSN())
	if err != nil {
		return fmt.Errorf("%w: failed to open postgresql connection (is github.com/lib/pq imported?): %v", ErrDriverUnavailable, err)
	}

	//test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping postgresql database, %v", err)
	}
	p.DB = db
	return nil
}

// closes the database connection
func (p *PostgreSQLClient) Close() error {
	if p.DB != nil {
		return p.DB.Close()
	}
	return nil
}

// executes the query to return the rows
func (p *PostgreSQLClient) ExecuteQuery(query string) (*sql.Rows, error) {
	if p.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}
	return p.DB.Query(query)
}
