package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"nathanbeddoewebdev/courseplan/internal/domain"
	"nathanbeddoewebdev/courseplan/internal/util"

	"github.com/rs/zerolog"
)

// DefaultDelimiter separates fields when Options.Delimiter is empty.
const DefaultDelimiter = ","

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ErrOpen marks a load that failed before the catalog was touched.
var ErrOpen = errors.New("could not open file")

// Options controls how a course file is parsed.
type Options struct {
	// Delimiter separates fields on a line. Defaults to DefaultDelimiter.
	Delimiter string

	// Logger receives debug events. The zero value discards them.
	Logger zerolog.Logger
}

// SkippedLine describes a non-blank line that had fewer than two fields or
// an empty course number.
type SkippedLine struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Result summarizes a completed load.
type Result struct {
	Path     string        `json:"path"`
	Count    int           `json:"count"`
	Skipped  []SkippedLine `json:"skipped,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Load reads the course file at path into cat.
//
// If the file cannot be opened the returned error wraps ErrOpen and cat is
// left untouched. Otherwise cat is cleared and repopulated; malformed lines
// are skipped and reported in the Result rather than failing the load.
func Load(path string, cat *Catalog, opts Options) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("catalog: %w %s: %w", ErrOpen, path, err)
	}
	defer f.Close()

	res, err := Parse(f, cat, opts)
	res.Path = path
	if err != nil {
		return res, fmt.Errorf("catalog: failed to read %s: %w", path, err)
	}
	return res, nil
}

// Parse clears cat and fills it from r, one record per line.
func Parse(r io.Reader, cat *Catalog, opts Options) (Result, error) {
	start := time.Now()
	delim := opts.Delimiter
	if delim == "" {
		delim = DefaultDelimiter
	}
	log := opts.Logger

	cat.Clear()

	var res Result
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	ln := 0
	for sc.Scan() {
		ln++
		line := util.Trim(sc.Text())
		if line == "" {
			continue
		}

		fields := util.SplitFields(line, delim)
		if len(fields) < 2 || fields[0] == "" {
			log.Debug().Int("line", ln).Msg("skipping line without course number or title")
			res.Skipped = append(res.Skipped, SkippedLine{Number: ln, Text: line})
			continue
		}

		course := domain.Course{
			ID:            util.NormalizeIdentifier(fields[0]),
			Title:         fields[1],
			Prerequisites: []string{},
		}
		for _, f := range fields[2:] {
			if prereq := util.NormalizeIdentifier(f); prereq != "" {
				course.Prerequisites = append(course.Prerequisites, prereq)
			}
		}
		cat.Put(course)
	}

	res.Count = cat.Len()
	res.Duration = time.Since(start)
	if err := sc.Err(); err != nil {
		return res, err
	}

	log.Debug().
		Int("courses", res.Count).
		Int("skipped", len(res.Skipped)).
		Dur("duration", res.Duration).
		Msg("catalog parsed")
	return res, nil
}
