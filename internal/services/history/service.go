// Package history provides a best-effort service layer over the load
// history repository.
package history

import (
	"errors"
	"time"

	"nathanbeddoewebdev/courseplan/internal/history"

	"github.com/rs/zerolog"
)

// ErrDisabled is returned by queries when no repository is attached.
var ErrDisabled = errors.New("load history is disabled")

// Service wraps the history repository. A Service without a repository
// silently drops writes, so callers never need to check whether history
// is enabled before recording.
type Service struct {
	repo   history.Repository
	logger zerolog.Logger
}

// NewService creates a new history service. repo may be nil.
func NewService(repo history.Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Enabled reports whether a repository is attached.
func (s *Service) Enabled() bool {
	return s != nil && s.repo != nil
}

// Save records an entry. Failures are logged and returned but are never
// meant to stop the caller.
func (s *Service) Save(entry *history.Entry) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.repo.Save(entry); err != nil {
		s.logger.Debug().Err(err).Str("file", entry.File).Msg("history write failed")
		return err
	}
	return nil
}

// Recent returns up to limit entries, optionally restricted to one file.
func (s *Service) Recent(limit int, file string) ([]history.Entry, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	if file != "" {
		return s.repo.ListByFile(file, limit)
	}
	return s.repo.List(limit)
}

// Prune deletes entries older than d.
func (s *Service) Prune(d time.Duration) (int64, error) {
	if !s.Enabled() {
		return 0, ErrDisabled
	}
	return s.repo.Prune(d)
}

// Close releases repository resources.
func (s *Service) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.repo.Close()
}
