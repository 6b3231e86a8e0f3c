package database

import (
	"database/sql"
	"fmt"

	"github.com/MinjaeKwon/DataAccessTool/config"

	_ "github.com/go-sql-driver/mysql"
)

type MariaDBClient struct {
	User     string
	Password string
	Host     string
	Port     int
	DBName   string
	DB       *sql.DB
}

// create a MariaDB client using manual parameters, (for tests)
func NewMariaDBClient(user, password, host string, port int, dbname string) *MariaDBClient {
	return &MariaDBClient{
		User:     user,
		Password: password,
		Host:     host,
		Port:     port,
		DBName:   dbname,
	}
}

// create a MariaDB client from a configuration profile
func NewMariaDBClientFromProfile(p *config.Profile) *MariaDBClient {
	return NewMariaDBClient(p.User, p.Password, p.Host, p.Port, p.Database)
}

// DSN for the MySQL-protocol driver, forcing 4-byte UTF-8
// format: user:password@tcp(host:port)/name?charset=utf8mb4
func (c *MariaDBClient) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true", c.User, c.Password, c.Host, c.Port, c.DBName)
}

// connect to the MariaDB database
func (c *MariaDBClient) Connect() error {
	db, err := sql.Open("mysql", c.DSN())
	if err != nil {
		return fmt.Errorf("%w: failed to open mariadb connection (is github.com/go-sql-driver/mysql imported?): %v", ErrDriverUnavailable, err)
	}

	//test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping mariadb database, %v", err)
	}
	c.DB = db
	return nil
}

// closes the database connection
func (c *MariaDBClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// executes the query to return the rows
func (c *MariaDBClient) ExecuteQuery(query string) (*sql.Rows, error) {
	if c.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}
	return c.DB.Query(query)
}
