// Package history persists analyzed incidents in a SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/watchit-dev/watchit/internal/domain"
	"github.com/watchit-dev/watchit/internal/pkg/filesystem"
	"github.com/watchit-dev/watchit/internal/ports"
)

// SQLiteStore records each completed analysis. Writes are best effort: a
// broken database disables the store instead of failing the run.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.watchit/history/history.db database.
func NewSQLiteStore() *SQLiteStore {
	return NewSQLiteStoreAt(filepath.Join(filesystem.WatchItDir(), "history", "history.db"))
}

// NewSQLiteStoreAt opens a store at an explicit path.
func NewSQLiteStoreAt(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS incidents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		command TEXT,
		exit_code INTEGER,
		error_message TEXT,
		provider TEXT,
		confidence REAL,
		fallback INTEGER,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new incident record.
func (s *SQLiteStore) Save(record domain.IncidentRecord) error {
	if s.db == nil {
		return fmt.Errorf("history store unavailable at %s", s.path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO incidents
		(timestamp, command, exit_code, error_message, provider, confidence, fallback, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Command,
		record.ExitCode,
		record.ErrorMessage,
		string(record.Provider),
		record.Confidence,
		boolToInt(record.Fallback),
		record.DurationMS,
	)
	return err
}

// Records returns incidents, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.IncidentRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("history store unavailable at %s", s.path)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, command, exit_code, error_message, provider, confidence, fallback, duration_ms FROM incidents")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE command LIKE ? OR error_message LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.IncidentRecord
	for rows.Next() {
		var rec domain.IncidentRecord
		var ts, provider string
		var fallback int
		if err := rows.Scan(&ts, &rec.Command, &rec.ExitCode, &rec.ErrorMessage, &provider, &rec.Confidence, &fallback, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Provider = domain.ProviderName(provider)
		rec.Fallback = fallback == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all incident records.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return fmt.Errorf("history store unavailable at %s", s.path)
	}
	_, err := s.db.Exec("DELETE FROM incidents")
	return err
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
