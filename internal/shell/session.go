// Package shell implements the interactive course planner session: a menu
// loop driving a two-state machine (NotLoaded, Loaded) over one catalog.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"nathanbeddoewebdev/courseplan/internal/catalog"
	"nathanbeddoewebdev/courseplan/internal/history"
	"nathanbeddoewebdev/courseplan/internal/render"
	"nathanbeddoewebdev/courseplan/internal/util"

	"github.com/rs/zerolog"
)

// State is the session's load state.
type State int

const (
	NotLoaded State = iota
	Loaded
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "not-loaded"
}

// Menu selections.
const (
	SelectInvalid = -1
	SelectLoad    = 1
	SelectList    = 2
	SelectShow    = 3
	SelectExit    = 9
)

// HistorySource tags history entries written by the session.
const HistorySource = "shell"

// Options configures a Session.
type Options struct {
	// Delimiter separates fields in course files. Defaults to ",".
	Delimiter string

	// Logger receives debug events. The zero value discards them.
	Logger zerolog.Logger

	// Recorder, when non-nil, is told about every load attempt.
	Recorder history.Recorder

	// SessionID is stamped on recorded history entries.
	SessionID string
}

// Session owns the catalog and the load state for one interactive run.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	opts    Options
	catalog *catalog.Catalog
	state   State
}

// New returns a session reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Session {
	return &Session{
		in:      bufio.NewReader(in),
		out:     out,
		opts:    opts,
		catalog: catalog.New(),
		state:   NotLoaded,
	}
}

// State returns the current load state.
func (s *Session) State() State { return s.state }

// Catalog returns the session's catalog for read-only inspection.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// ParseSelection converts trimmed menu input to an integer.
func ParseSelection(input string) (int, bool) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return SelectInvalid, false
	}
	return n, true
}

// Run prints the welcome banner and loops until the user exits or input
// ends. End of input is a normal termination and returns nil.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, msgWelcome)

	for {
		for _, line := range menu {
			fmt.Fprintln(s.out, line)
		}
		fmt.Fprint(s.out, promptChoice)

		line, err := s.readLine()
		if err != nil {
			return s.endOfInput(err)
		}

		raw := util.Trim(line)
		selection, _ := ParseSelection(raw)

		more, err := s.Dispatch(selection, raw)
		if err != nil {
			return s.endOfInput(err)
		}
		if !more {
			return nil
		}
	}
}

// Dispatch performs one menu selection. raw is the trimmed text the user
// typed and is echoed back for invalid selections. It reports whether the
// loop should continue; errors come only from reading input.
func (s *Session) Dispatch(selection int, raw string) (bool, error) {
	s.opts.Logger.Debug().
		Int("selection", selection).
		Stringer("state", s.state).
		Msg("dispatch")

	switch selection {
	case SelectLoad:
		return true, s.load()

	case SelectList:
		if s.requireLoaded() {
			if err := render.List(s.out, s.catalog); err != nil {
				return true, err
			}
		}

	case SelectShow:
		if s.requireLoaded() {
			fmt.Fprint(s.out, promptCourse)
			input, err := s.readLine()
			if err != nil {
				return true, err
			}
			// A miss is already reported to the user.
			if err := render.Course(s.out, s.catalog, input); err != nil {
				s.opts.Logger.Debug().Err(err).Msg("course lookup")
			}
		}

	case SelectExit:
		fmt.Fprintln(s.out, msgFarewell)
		return false, nil

	default:
		fmt.Fprintf(s.out, msgInvalidOption, raw)
	}

	return true, nil
}

func (s *Session) requireLoaded() bool {
	if s.state == Loaded {
		return true
	}
	fmt.Fprintln(s.out, msgNotLoaded)
	return false
}

func (s *Session) load() error {
	fmt.Fprint(s.out, promptFile)
	line, err := s.readLine()
	if err != nil {
		return err
	}

	name := util.Trim(line)
	if name == "" {
		fmt.Fprintln(s.out, msgEmptyFilename)
		return nil
	}

	s.opts.Logger.Debug().Str("file", name).Msg("loading catalog")
	res, err := catalog.Load(name, s.catalog, catalog.Options{
		Delimiter: s.opts.Delimiter,
		Logger:    s.opts.Logger,
	})
	s.record(res, err)

	if err != nil {
		s.state = NotLoaded
		if errors.Is(err, catalog.ErrOpen) {
			fmt.Fprintf(s.out, msgOpenFailed, name)
		} else {
			fmt.Fprintf(s.out, msgReadFailed, name)
		}
		s.opts.Logger.Debug().Err(err).Msg("load failed")
		return nil
	}

	for _, skipped := range res.Skipped {
		fmt.Fprintf(s.out, msgSkippedLine, skipped.Number)
	}
	fmt.Fprintf(s.out, msgLoaded, res.Count)
	s.state = Loaded
	return nil
}

func (s *Session) record(res catalog.Result, loadErr error) {
	if s.opts.Recorder == nil {
		return
	}
	entry := history.FromLoad(s.opts.SessionID, HistorySource, res, loadErr)
	if err := s.opts.Recorder.Save(entry); err != nil {
		s.opts.Logger.Debug().Err(err).Msg("failed to record load history")
	}
}

// readLine returns the next input line without its terminator. A final
// line lacking a newline is returned normally; io.EOF follows on the next
// call.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (s *Session) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		s.opts.Logger.Debug().Msg("input closed")
		fmt.Fprintln(s.out)
		return nil
	}
	return fmt.Errorf("shell: failed to read input: %w", err)
}
