package audit

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb" // DuckDB driver
)

// ScanRecorder keeps a queryable history of scan outcomes in DuckDB. The
// recorder is best-effort infrastructure: callers log its errors and move on.
type ScanRecorder struct {
	db *sql.DB
}

// NewScanRecorder opens (or creates) the scan database at dbPath.
func NewScanRecorder(dbPath string) (*ScanRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open scan database: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS scan_events (
		user_id VARCHAR NOT NULL,
		user_name VARCHAR,
		channel_id VARCHAR,
		question VARCHAR,
		answer VARCHAR,
		matched BOOLEAN NOT NULL,
		scanned_at TIMESTAMP NOT NULL
	);`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create scan_events table: %w", err)
	}

	log.Printf("Scan recorder initialized. Database path: %s", dbPath)
	return &ScanRecorder{db: db}, nil
}

// RecordScan inserts one scan outcome.
func (r *ScanRecorder) RecordScan(userID, userName, channelID, question, answer string, matched bool) error {
	_, err := r.db.Exec(
		`INSERT INTO scan_events (user_id, user_name, channel_id, question, answer, matched, scanned_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, userName, channelID, question, answer, matched, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to record scan: %w", err)
	}
	return nil
}

// CountUnmatched returns how many scans found no stored answer.
func (r *ScanRecorder) CountUnmatched() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM scan_events WHERE NOT matched`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unmatched scans: %w", err)
	}
	return count, nil
}

func (r *ScanRecorder) Close() error {
	return r.db.Close()
}
