// Package catalog holds the in-memory course table and the loader that fills
// it from a delimited text file.
//
// A Catalog is owned by a single session. Loads replace its contents
// wholesale; between loads it is only read.
package catalog

import (
	"maps"
	"slices"

	"nathanbeddoewebdev/courseplan/internal/domain"
)

// Catalog maps normalized course identifiers to their records.
type Catalog struct {
	courses map[string]domain.Course
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{courses: make(map[string]domain.Course)}
}

// Put inserts course, replacing any record with the same ID.
func (c *Catalog) Put(course domain.Course) {
	if c.courses == nil {
		c.courses = make(map[string]domain.Course)
	}
	c.courses[course.ID] = course
}

// Clear removes every record.
func (c *Catalog) Clear() {
	clear(c.courses)
}

// Len returns the number of distinct identifiers.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Lookup returns the record stored under id. The id must already be
// normalized; no case folding happens here.
func (c *Catalog) Lookup(id string) (domain.Course, bool) {
	course, ok := c.courses[id]
	return course, ok
}

// SortedIDs returns all identifiers in byte-wise ascending order.
func (c *Catalog) SortedIDs() []string {
	return slices.Sorted(maps.Keys(c.courses))
}

// Courses returns every record ordered by identifier.
func (c *Catalog) Courses() []domain.Course {
	ids := c.SortedIDs()
	out := make([]domain.Course, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.courses[id])
	}
	return out
}
