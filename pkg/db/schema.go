// Package db provides SQLite database management for import history and metadata.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Import history table
-- Tracks which sales export files have been imported to the ledger
CREATE TABLE IF NOT EXISTS import_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_hash TEXT NOT NULL,           -- SHA-256 of the export file
    file_name TEXT NOT NULL,           -- Base name of the export file
    row_count INTEGER NOT NULL,        -- Number of sale rows imported
    total_amount REAL NOT NULL,        -- Sum of imported amounts in TJS
    imported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(file_hash)
);

CREATE INDEX IF NOT EXISTS idx_import_history_hash
    ON import_history(file_hash);

CREATE INDEX IF NOT EXISTS idx_import_history_date
    ON import_history(imported_at);

-- Import metadata table
-- Stores key-value metadata about import operations
CREATE TABLE IF NOT EXISTS import_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
