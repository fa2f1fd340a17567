package history

import (
	"errors"
	"time"

	"nathanbeddoewebdev/courseplan/internal/catalog"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Entry is one recorded catalog load.
type Entry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	SessionID  string    `json:"session_id"`
	Source     string    `json:"source"`
	File       string    `json:"file"`
	Outcome    string    `json:"outcome"`
	Courses    int       `json:"courses"`
	Skipped    int       `json:"skipped"`
	Detail     string    `json:"detail,omitempty"`
	DurationMs int64     `json:"duration_ms"`
}

// Recorder persists entries. The shell and commands depend on this rather
// than on the SQLite repository.
type Recorder interface {
	Save(entry *Entry) error
}

// FromLoad builds an entry describing the outcome of catalog.Load.
func FromLoad(sessionID, source string, res catalog.Result, err error) *Entry {
	entry := &Entry{
		SessionID:  sessionID,
		Source:     source,
		File:       res.Path,
		Outcome:    OutcomeSuccess,
		Courses:    res.Count,
		Skipped:    len(res.Skipped),
		DurationMs: res.Duration.Milliseconds(),
	}
	if err != nil {
		entry.Outcome = OutcomeError
		entry.Detail = err.Error()
		if errors.Is(err, catalog.ErrOpen) {
			entry.Courses = 0
		}
	}
	return entry
}
