package catalog

import (
	"slices"
	"strings"
)

// SubjectCount is the number of courses sharing an identifier prefix.
type SubjectCount struct {
	Subject string
	Count   int
}

// Subject returns the leading run of letters of a normalized identifier,
// e.g. "CSCI" for "CSCI300". Identifiers that start with anything else
// yield "".
func Subject(id string) string {
	i := 0
	for i < len(id) && id[i] >= 'A' && id[i] <= 'Z' {
		i++
	}
	return id[:i]
}

// SubjectCounts groups the catalog by Subject, ordered by subject.
func (c *Catalog) SubjectCounts() []SubjectCount {
	counts := make(map[string]int)
	for id := range c.courses {
		counts[Subject(id)]++
	}

	out := make([]SubjectCount, 0, len(counts))
	for subject, n := range counts {
		out = append(out, SubjectCount{Subject: subject, Count: n})
	}
	slices.SortFunc(out, func(a, b SubjectCount) int {
		return strings.Compare(a.Subject, b.Subject)
	})
	return out
}
