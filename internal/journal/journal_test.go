package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/example/schoolseed/internal/api"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	jnl, err := Open(filepath.Join(t.TempDir(), "run.journal.db"))
	if err != nil {
		t.Fatalf("failed to open journal: %v", err)
	}
	t.Cleanup(func() { jnl.Close() })
	return jnl
}

func TestLogCallAndTail(t *testing.T) {
	jnl := openTestJournal(t)

	jnl.LogCall(api.CallEntry{Method: "POST", Path: "/api/v1/schools", Status: 201, Duration: 12 * time.Millisecond})
	jnl.LogCall(api.CallEntry{Method: "POST", Path: "/api/v1/users", Status: 422, Duration: 3 * time.Millisecond, Detail: "email taken"})

	entries, err := jnl.Tail(10)
	if err != nil {
		t.Fatalf("Tail failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// Newest first.
	if entries[0].Path != "/api/v1/users" {
		t.Errorf("expected newest entry first, got %s", entries[0].Path)
	}
	if entries[0].Detail != "email taken" {
		t.Errorf("expected failure detail, got %q", entries[0].Detail)
	}

	failures, err := jnl.FailureCount()
	if err != nil {
		t.Fatalf("FailureCount failed: %v", err)
	}
	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
}

func TestTailLimit(t *testing.T) {
	jnl := openTestJournal(t)
	for i := 0; i < 5; i++ {
		jnl.LogCall(api.CallEntry{Method: "POST", Path: "/api/v1/students", Status: 201})
	}

	entries, err := jnl.Tail(2)
	if err != nil {
		t.Fatalf("Tail failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}
