package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/watchit-dev/watchit/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	return NewSQLiteStoreAt(filepath.Join(t.TempDir(), "history.db"))
}

func record(command string, at time.Time) domain.IncidentRecord {
	return domain.IncidentRecord{
		Timestamp:    at,
		Command:      command,
		ExitCode:     1,
		ErrorMessage: "ZeroDivisionError: division by zero",
		Provider:     domain.ProviderOpenAI,
		Confidence:   0.9,
		DurationMS:   42,
	}
}

func TestSaveAndRecords(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	if err := store.Save(record("python a.py", base)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(record("python b.py", base.Add(time.Minute))); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Command != "python b.py" {
		t.Fatalf("records not newest-first: %+v", records)
	}
	if records[0].ErrorMessage != "ZeroDivisionError: division by zero" {
		t.Fatalf("ErrorMessage = %q", records[0].ErrorMessage)
	}
}

func TestRecordsSearchAndLimit(t *testing.T) {
	store := newTestStore(t)
	base := time.Now().UTC()

	for i, cmd := range []string{"npm install", "python c.py", "npm test"} {
		if err := store.Save(record(cmd, base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	matched, err := store.Records(0, "npm")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("search matched %d records, want 2", len(matched))
	}

	limited, err := store.Records(1, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit returned %d records, want 1", len(limited))
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(record("python a.py", time.Now())); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("records remain after Clear: %+v", records)
	}
}
