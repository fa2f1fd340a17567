package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/courseplan/internal/catalog"
	"nathanbeddoewebdev/courseplan/internal/domain"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// ErrAborted is returned when the user cancels an interactive prompt.
var ErrAborted = errors.New("aborted by user")

// SelectCourse shows a searchable list of every course in cat and returns
// the chosen identifier.
func SelectCourse(cat *catalog.Catalog) (string, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	if cat.Len() == 0 {
		return "", fmt.Errorf("no courses to choose from")
	}

	var selectedID string
	options := buildCourseOptions(cat.Courses())

	height := min(max(len(options), 5), 12)

	selectField := huh.NewSelect[string]().
		Title("Select a course").
		Options(options...).
		Value(&selectedID).
		Height(height)

	if err := runForm(accessible, huh.NewGroup(selectField)); err != nil {
		return "", err
	}
	return selectedID, nil
}

// LoadWithSpinner runs load behind a spinner titled title.
func LoadWithSpinner(title string, load func() error) error {
	accessible := os.Getenv("ACCESSIBLE") != ""

	err := spinner.New().
		Title(title).
		Accessible(accessible).
		Output(os.Stderr).
		ActionWithErr(func(ctx context.Context) error {
			return load()
		}).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return ErrAborted
		}
		return err
	}
	return nil
}

func buildCourseOptions(courses []domain.Course) []huh.Option[string] {
	options := make([]huh.Option[string], len(courses))
	for i, c := range courses {
		options[i] = huh.NewOption(courseOptionLabel(c), c.ID)
	}
	return options
}

func courseOptionLabel(c domain.Course) string {
	if c.Title == "" {
		return c.ID
	}
	return c.ID + " - " + c.Title
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
