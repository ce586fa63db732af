package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// Initialize opens the connection pool, verifies it with a ping, and applies
// the schema.
func Initialize(cfg Config) (*sql.DB, error) {
	psqlInfo := fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	database, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	if err = database.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	if err := InitSchema(database); err != nil {
		return nil, err
	}
	return database, nil
}
