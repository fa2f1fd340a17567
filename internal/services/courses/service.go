// Package courses loads course files for the non-interactive commands and
// records each load in the history.
package courses

import (
	"nathanbeddoewebdev/courseplan/internal/catalog"
	"nathanbeddoewebdev/courseplan/internal/history"

	"github.com/rs/zerolog"
)

// Options configures a Service.
type Options struct {
	Delimiter string
	SessionID string
	Recorder  history.Recorder
	Logger    zerolog.Logger
}

// Service loads catalogs from disk.
type Service struct {
	opts Options
}

// NewService creates a new course loading service.
func NewService(opts Options) *Service {
	return &Service{opts: opts}
}

// Load reads path into a fresh catalog. source names the command on whose
// behalf the load happens and is stored with the history entry.
func (s *Service) Load(source, path string) (*catalog.Catalog, catalog.Result, error) {
	cat := catalog.New()
	res, err := catalog.Load(path, cat, catalog.Options{
		Delimiter: s.opts.Delimiter,
		Logger:    s.opts.Logger,
	})

	if s.opts.Recorder != nil {
		entry := history.FromLoad(s.opts.SessionID, source, res, err)
		if recErr := s.opts.Recorder.Save(entry); recErr != nil {
			s.opts.Logger.Debug().Err(recErr).Msg("failed to record load history")
		}
	}

	if err != nil {
		return nil, res, err
	}
	return cat, res, nil
}

// Check parses path without recording it, for validation runs.
func (s *Service) Check(path string) (catalog.Result, error) {
	return catalog.Load(path, catalog.New(), catalog.Options{
		Delimiter: s.opts.Delimiter,
		Logger:    s.opts.Logger.With().Str("file", path).Logger(),
	})
}
