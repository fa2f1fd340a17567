// Package render formats catalog data into the plain-text reports shown to
// the user. Renderers only read the catalog.
package render

import (
	"fmt"
	"io"
	"strings"

	"nathanbeddoewebdev/courseplan/internal/catalog"
	"nathanbeddoewebdev/courseplan/internal/domain"
	"nathanbeddoewebdev/courseplan/internal/util"
)

// ListHeader precedes the course list.
const ListHeader = "Here is a sample schedule:"

// List writes the header followed by one "ID, Title" line per course in
// identifier order.
func List(w io.Writer, cat *catalog.Catalog) error {
	if _, err := fmt.Fprintln(w, ListHeader); err != nil {
		return err
	}
	for _, course := range cat.Courses() {
		if _, err := fmt.Fprintln(w, CourseLine(course)); err != nil {
			return err
		}
	}
	return nil
}

// Course looks up the user-typed identifier and writes its detail lines.
// A miss is reported in the output and also returned as domain.ErrNotFound
// so non-interactive callers can fail on it.
func Course(w io.Writer, cat *catalog.Catalog, input string) error {
	id := util.NormalizeIdentifier(util.Trim(input))
	course, ok := cat.Lookup(id)
	if !ok {
		fmt.Fprintf(w, "Course not found: %s\n", id)
		return fmt.Errorf("render: %s: %w", id, domain.ErrNotFound)
	}

	if _, err := fmt.Fprintln(w, CourseLine(course)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, PrerequisiteLine(cat, course))
	return err
}

// CourseLine formats a course as "ID, Title".
func CourseLine(course domain.Course) string {
	return course.ID + ", " + course.Title
}

// PrerequisiteLine formats the prerequisites of course. Prerequisites that
// resolve in cat are followed by their title in parentheses.
func PrerequisiteLine(cat *catalog.Catalog, course domain.Course) string {
	if len(course.Prerequisites) == 0 {
		return "Prerequisites: None"
	}

	parts := make([]string, len(course.Prerequisites))
	for i, id := range course.Prerequisites {
		parts[i] = id
		if prereq, ok := cat.Lookup(id); ok {
			parts[i] += " (" + prereq.Title + ")"
		}
	}
	return "Prerequisites: " + strings.Join(parts, ", ")
}
