// Package store caches finished batch reports in SQLite so repeated requests
// for the same channel or topic skip the metadata provider entirely.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
)

// Store is the SQLite-backed report cache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the cache database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "ytca.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{
		db:   db,
		path: dbPath,
	}

	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// initialize creates the reports table.
func (s *Store) initialize() error {
	reportsTable := `
	CREATE TABLE IF NOT EXISTS reports (
		fingerprint TEXT PRIMARY KEY,
		report_id TEXT,
		scope TEXT,
		subject TEXT,
		videos_analyzed INTEGER,
		report_json TEXT,
		generated_at DATETIME
	);`

	if _, err := s.db.Exec(reportsTable); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Fingerprint derives the cache key for a request. Two requests share an
// entry only when scope, subject and every analysis knob match.
func Fingerprint(scope, subject string, maxVideos int, deep, withSentiment bool) string {
	raw := fmt.Sprintf("%s|%s|%d|%t|%t", scope, subject, maxVideos, deep, withSentiment)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// CacheReport stores a finished report under its request fingerprint,
// replacing any stale entry.
func (s *Store) CacheReport(fingerprint, scope, subject string, report *core.BatchReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO reports
	(fingerprint, report_id, scope, subject, videos_analyzed, report_json, generated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.Exec(query,
		fingerprint,
		report.ID,
		scope,
		subject,
		report.VideosAnalyzed,
		string(payload),
		report.GeneratedAt,
	)

	return err
}

// GetCachedReport retrieves a report no older than maxAge. A miss returns
// (nil, nil).
func (s *Store) GetCachedReport(fingerprint string, maxAge time.Duration) (*core.BatchReport, error) {
	query := `
	SELECT report_json
	FROM reports
	WHERE fingerprint = ? AND generated_at > ?`

	cutoff := time.Now().UTC().Add(-maxAge)
	row := s.db.QueryRow(query, fingerprint, cutoff)

	var payload string
	err := row.Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan report: %w", err)
	}

	var report core.BatchReport
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("failed to decode cached report: %w", err)
	}

	return &report, nil
}

// CacheStats represents cache statistics.
type CacheStats struct {
	ReportCount int
	CacheSize   int64
	LastUpdated time.Time
}

// GetCacheStats returns statistics about the cache.
func (s *Store) GetCacheStats() (*CacheStats, error) {
	stats := &CacheStats{}

	if err := s.db.QueryRow("SELECT COUNT(*) FROM reports").Scan(&stats.ReportCount); err != nil {
		return nil, fmt.Errorf("failed to get count: %w", err)
	}

	if fileInfo, err := os.Stat(s.path); err == nil {
		stats.CacheSize = fileInfo.Size()
		stats.LastUpdated = fileInfo.ModTime()
	}

	return stats, nil
}

// ClearCache removes all cached reports.
func (s *Store) ClearCache() error {
	if _, err := s.db.Exec("DELETE FROM reports"); err != nil {
		return fmt.Errorf("failed to clear reports table: %w", err)
	}

	if _, err := s.db.Exec("VACUUM"); err != nil {
		return fmt.Errorf("failed to vacuum database: %w", err)
	}

	return nil
}

// CleanupOldCache removes reports older than maxAge.
func (s *Store) CleanupOldCache(maxAge time.Duration) error {
	cutoff := time.Now().UTC().Add(-maxAge)
	if _, err := s.db.Exec("DELETE FROM reports WHERE generated_at < ?", cutoff); err != nil {
		return fmt.Errorf("failed to clean old reports: %w", err)
	}
	return nil
}
