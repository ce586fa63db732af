package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
-- Create students table
CREATE TABLE IF NOT EXISTS students (
    roll_number VARCHAR(50) PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    class VARCHAR(50) NOT NULL,
    section VARCHAR(10) NOT NULL,
    parent_email VARCHAR(255) NOT NULL,
    created_at DATE DEFAULT CURRENT_DATE
);

-- Create marks table
CREATE TABLE IF NOT EXISTS marks (
    id SERIAL PRIMARY KEY,
    roll_number VARCHAR(50) NOT NULL,
    subject VARCHAR(100) NOT NULL,
    exam VARCHAR(100) NOT NULL,
    marks INTEGER NOT NULL,
    max_marks INTEGER NOT NULL,
    created_at DATE DEFAULT CURRENT_DATE,
    FOREIGN KEY (roll_number) REFERENCES students(roll_number) ON DELETE CASCADE,
    UNIQUE(roll_number, subject, exam)
);

-- Create fee_status table
CREATE TABLE IF NOT EXISTS fee_status (
    id SERIAL PRIMARY KEY,
    roll_number VARCHAR(50) NOT NULL,
    term VARCHAR(50) NOT NULL,
    status VARCHAR(20) NOT NULL,
    amount_due INTEGER NOT NULL DEFAULT 0,
    created_at DATE DEFAULT CURRENT_DATE,
    FOREIGN KEY (roll_number) REFERENCES students(roll_number) ON DELETE CASCADE,
    UNIQUE(roll_number, term)
);
`

// InitSchema initializes the database schema
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("error initializing database schema: %w", err)
	}
	return nil
}
