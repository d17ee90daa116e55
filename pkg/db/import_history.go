package db

import (
	"database/sql"
	"fmt"
	"time"
)

// ImportRecord represents an import history record.
type ImportRecord struct {
	ID          int64
	FileHash    string
	FileName    string
	RowCount    int
	TotalAmount float64
	ImportedAt  time.Time
}

// ImportHistory manages import history operations.
type ImportHistory struct {
	conn *Connection
}

// NewImportHistory creates a new ImportHistory instance.
func NewImportHistory(conn *Connection) *ImportHistory {
	return &ImportHistory{conn: conn}
}

// RecordImport records an import operation.
// If the record already exists (same file hash), it updates it.
func (h *ImportHistory) RecordImport(record ImportRecord) error {
	query := `
		INSERT INTO import_history (file_hash, file_name, row_count, total_amount)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(file_hash) DO UPDATE SET
			file_name = excluded.file_name,
			row_count = excluded.row_count,
			total_amount = excluded.total_amount,
			imported_at = CURRENT_TIMESTAMP
	`

	_, err := h.conn.Exec(query,
		record.FileHash,
		record.FileName,
		record.RowCount,
		record.TotalAmount,
	)

	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	return nil
}

// IsImported checks if an export file has already been imported.
func (h *ImportHistory) IsImported(fileHash string) (bool, error) {
	query := `
		SELECT COUNT(*) as count FROM import_history
		WHERE file_hash = ?
	`

	var count int
	err := h.conn.QueryRow(query, fileHash).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check if imported: %w", err)
	}

	return count > 0, nil
}

// GetImportRecord retrieves an import record by file hash.
func (h *ImportHistory) GetImportRecord(fileHash string) (*ImportRecord, error) {
	query := `
		SELECT id, file_hash, file_name, row_count, total_amount, imported_at
		FROM import_history
		WHERE file_hash = ?
	`

	var record ImportRecord

	err := h.conn.QueryRow(query, fileHash).Scan(
		&record.ID,
		&record.FileHash,
		&record.FileName,
		&record.RowCount,
		&record.TotalAmount,
		&record.ImportedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get import record: %w", err)
	}

	return &record, nil
}

// ListImports retrieves all import records, newest first.
func (h *ImportHistory) ListImports() ([]ImportRecord, error) {
	query := `
		SELECT id, file_hash, file_name, row_count, total_amount, imported_at
		FROM import_history
		ORDER BY imported_at DESC
	`

	rows, err := h.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	defer rows.Close()

	var records []ImportRecord
	for rows.Next() {
		var record ImportRecord
		if err := rows.Scan(
			&record.ID,
			&record.FileHash,
			&record.FileName,
			&record.RowCount,
			&record.TotalAmount,
			&record.ImportedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan import record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// DeleteImportRecord deletes an import record.
// Use case: force a re-import of a specific export file.
func (h *ImportHistory) DeleteImportRecord(fileHash string) (bool, error) {
	query := `DELETE FROM import_history WHERE file_hash = ?`

	result, err := h.conn.Exec(query, fileHash)
	if err != nil {
		return false, fmt.Errorf("failed to delete import record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// Stats represents import statistics.
type Stats struct {
	TotalImports int
	TotalRows    int
	TotalAmount  float64
	LastImport   sql.NullString
}

// GetStats retrieves import statistics.
func (h *ImportHistory) GetStats() (*Stats, error) {
	var stats Stats

	err := h.conn.QueryRow(`SELECT COUNT(*), COALESCE(SUM(row_count), 0), COALESCE(SUM(total_amount), 0) FROM import_history`).
		Scan(&stats.TotalImports, &stats.TotalRows, &stats.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to get import counts: %w", err)
	}

	err = h.conn.QueryRow(`SELECT MAX(imported_at) FROM import_history`).Scan(&stats.LastImport)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last import time: %w", err)
	}

	return &stats, nil
}

// GetMetadata retrieves a metadata value.
func (h *ImportHistory) GetMetadata(key string) (string, error) {
	query := `SELECT value FROM import_metadata WHERE key = ?`

	var value string
	err := h.conn.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}

	return value, nil
}

// SetMetadata sets a metadata value.
func (h *ImportHistory) SetMetadata(key, value string) error {
	query := `
		INSERT INTO import_metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := h.conn.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}
