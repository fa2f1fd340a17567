package history

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"nathanbeddoewebdev/courseplan/internal/catalog"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courseplan.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &Entry{
		Source:     "shell",
		File:       "courses.csv",
		Outcome:    OutcomeSuccess,
		Courses:    8,
		DurationMs: 3,
	}

	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestList(t *testing.T) {
	r := tempRepo(t)

	for i := range 3 {
		entry := &Entry{
			File:      "courses.csv",
			Outcome:   OutcomeSuccess,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
}

func TestListByFile(t *testing.T) {
	r := tempRepo(t)

	entries := []*Entry{
		{File: "a.csv", Outcome: OutcomeSuccess, Courses: 4},
		{File: "b.csv", Outcome: OutcomeSuccess},
		{File: "a.csv", Outcome: OutcomeError},
	}
	for _, entry := range entries {
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := r.ListByFile("a.csv", 10)
	if err != nil {
		t.Fatalf("ListByFile failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, entry := range got {
		if entry.File != "a.csv" {
			t.Errorf("expected file 'a.csv', got %q", entry.File)
		}
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	oldEntry := &Entry{File: "a.csv", Outcome: OutcomeSuccess, Timestamp: time.Now().UTC().Add(-48 * time.Hour)}
	recentEntry := &Entry{File: "a.csv", Outcome: OutcomeSuccess, Timestamp: time.Now().UTC().Add(-1 * time.Hour)}

	if err := r.Save(oldEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := r.Save(recentEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	remaining, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(remaining))
	}
}

func TestFromLoad(t *testing.T) {
	res := catalog.Result{
		Path:     "courses.csv",
		Count:    5,
		Skipped:  []catalog.SkippedLine{{Number: 2}},
		Duration: 1500 * time.Microsecond,
	}

	ok := FromLoad("sess-1", "shell", res, nil)
	if ok.Outcome != OutcomeSuccess || ok.Courses != 5 || ok.Skipped != 1 || ok.DurationMs != 1 {
		t.Errorf("unexpected success entry: %+v", ok)
	}
	if ok.SessionID != "sess-1" || ok.Source != "shell" || ok.File != "courses.csv" {
		t.Errorf("unexpected identity fields: %+v", ok)
	}

	openErr := fmt.Errorf("catalog: %w courses.csv: %w", catalog.ErrOpen, errors.New("no such file"))
	failed := FromLoad("sess-1", "shell", catalog.Result{Path: "courses.csv", Count: 9}, openErr)
	if failed.Outcome != OutcomeError {
		t.Errorf("expected error outcome, got %q", failed.Outcome)
	}
	if failed.Courses != 0 {
		t.Errorf("expected no courses for an open failure, got %d", failed.Courses)
	}
	if failed.Detail == "" {
		t.Error("expected error detail to be recorded")
	}
}
