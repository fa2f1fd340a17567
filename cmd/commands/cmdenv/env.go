// Package cmdenv builds the per-invocation environment shared by the
// courseplan commands: config, logger, history and session ID.
package cmdenv

import (
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/courseplan/internal/config"
	"nathanbeddoewebdev/courseplan/internal/history"
	"nathanbeddoewebdev/courseplan/internal/logger"
	"nathanbeddoewebdev/courseplan/internal/services/courses"
	historysvc "nathanbeddoewebdev/courseplan/internal/services/history"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ErrNoFile is returned when neither --file nor the default-file key names
// a course file.
var ErrNoFile = errors.New("no course file: pass --file or run \"courseplan config set default-file PATH\"")

// Env carries everything a command needs after startup.
type Env struct {
	Config    *config.Config
	Logger    zerolog.Logger
	History   *historysvc.Service
	SessionID string
}

// Setup loads config and opens the history store. History is best-effort:
// if the database cannot be opened the command still runs without it.
func Setup(cmd *cobra.Command) (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	level := logger.DisabledLevel
	if debug {
		level = logger.DebugLevel
	}
	log, err := logger.New(logger.Config{
		Level:  level,
		Pretty: true,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	env := &Env{
		Config:    cfg,
		Logger:    log.With().Str("command", cmd.CommandPath()).Logger(),
		SessionID: uuid.NewString(),
	}

	var repo history.Repository
	if cfg.HistoryEnabled() {
		r, err := history.Open()
		if err != nil {
			env.Logger.Debug().Err(err).Msg("load history unavailable")
		} else {
			repo = r
		}
	}
	env.History = historysvc.NewService(repo, env.Logger)

	return env, nil
}

// Close releases the history store.
func (e *Env) Close() error {
	return e.History.Close()
}

// Courses returns a loading service for delimiter. An empty delimiter uses
// the configured one.
func (e *Env) Courses(delimiter string) *courses.Service {
	if delimiter == "" {
		delimiter = e.Config.FieldDelimiter()
	}
	opts := courses.Options{
		Delimiter: delimiter,
		SessionID: e.SessionID,
		Logger:    e.Logger,
	}
	if e.History.Enabled() {
		opts.Recorder = e.History
	}
	return courses.NewService(opts)
}

// ResolveFile returns the --file flag value, falling back to the
// default-file config key.
func (e *Env) ResolveFile(cmd *cobra.Command) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	file = strings.TrimSpace(file)
	if file == "" {
		file = strings.TrimSpace(e.Config.DefaultFile)
	}
	if file == "" {
		return "", ErrNoFile
	}
	return file, nil
}
