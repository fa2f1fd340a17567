package tui

import (
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/courseplan/internal/catalog"
	"nathanbeddoewebdev/courseplan/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func testCatalog() *catalog.Catalog {
	cat := catalog.New()
	cat.Put(domain.Course{ID: "CSCI100", Title: "Introduction to Computer Science", Prerequisites: []string{}})
	cat.Put(domain.Course{ID: "CSCI200", Title: "Data Structures", Prerequisites: []string{"CSCI100"}})
	cat.Put(domain.Course{ID: "CSCI300", Title: "Introduction to Algorithms", Prerequisites: []string{"CSCI200", "MATH201"}})
	cat.Put(domain.Course{ID: "MATH201", Title: "Discrete Mathematics", Prerequisites: []string{}})
	return cat
}

func loadedModel(t *testing.T) browserModel {
	t.Helper()
	cat := testCatalog()
	m := newBrowserModel("courses.csv", func() (*catalog.Catalog, catalog.Result, error) {
		return cat, catalog.Result{Count: cat.Len()}, nil
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	updated, _ = updated.Update(browserLoadedMsg{cat: cat, res: catalog.Result{Count: cat.Len()}})
	return updated.(browserModel)
}

func press(t *testing.T, m browserModel, keys ...string) browserModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(browserModel)
	}
	return m
}

func courseIDs(courses []domain.Course) []string {
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids
}

func TestFilterCourses(t *testing.T) {
	courses := testCatalog().Courses()

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"CSCI100", "CSCI200", "CSCI300", "MATH201"}},
		{query: "math", want: []string{"MATH201"}},
		{query: "intro", want: []string{"CSCI100", "CSCI300"}},
		{query: "  INTRODUCTION ", want: []string{"CSCI100", "CSCI300"}},
		{query: "csci2", want: []string{"CSCI200"}},
		{query: "biology", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := courseIDs(filterCourses(courses, tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("filterCourses(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestDependents(t *testing.T) {
	courses := testCatalog().Courses()

	if diff := cmp.Diff([]string{"CSCI300"}, dependents(courses, "MATH201")); diff != "" {
		t.Errorf("dependents mismatch (-want +got):\n%s", diff)
	}
	if got := dependents(courses, "CSCI300"); len(got) != 0 {
		t.Errorf("expected no dependents, got %v", got)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                string
		cursor, total, rows int
		wantStart, wantEnd  int
	}{
		{name: "fits", cursor: 2, total: 4, rows: 10, wantStart: 0, wantEnd: 4},
		{name: "cursor on first page", cursor: 3, total: 20, rows: 5, wantStart: 0, wantEnd: 5},
		{name: "cursor scrolled", cursor: 7, total: 20, rows: 5, wantStart: 3, wantEnd: 8},
		{name: "cursor at end", cursor: 19, total: 20, rows: 5, wantStart: 15, wantEnd: 20},
		{name: "zero height", cursor: 4, total: 20, rows: 0, wantStart: 4, wantEnd: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.cursor, tt.total, tt.rows)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("visibleRange() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestBrowser_LoadSetsStatus(t *testing.T) {
	m := loadedModel(t)

	if m.loading {
		t.Error("expected loading to be false after load")
	}
	if m.status != "Loaded 4 courses." {
		t.Errorf("unexpected status %q", m.status)
	}
	if len(m.visible) != 4 {
		t.Errorf("expected 4 visible courses, got %d", len(m.visible))
	}
}

func TestBrowser_Navigation(t *testing.T) {
	m := loadedModel(t)

	m = press(t, m, "j", "j", "j", "j", "j")
	if m.cursor != 3 {
		t.Errorf("cursor should stop at last course, got %d", m.cursor)
	}
	m = press(t, m, "k")
	if c, _ := m.selected(); c.ID != "CSCI300" {
		t.Errorf("expected CSCI300 selected, got %s", c.ID)
	}
	m = press(t, m, "g")
	if m.cursor != 0 {
		t.Errorf("expected cursor at top, got %d", m.cursor)
	}
}

func TestBrowser_FilterAndClear(t *testing.T) {
	m := loadedModel(t)

	m = press(t, m, "/")
	if !m.filtering {
		t.Fatal("expected filter mode")
	}
	m = press(t, m, "a", "l", "g", "enter")
	if m.filtering {
		t.Error("enter should leave filter mode")
	}
	if diff := cmp.Diff([]string{"CSCI300"}, courseIDs(m.visible)); diff != "" {
		t.Errorf("filtered courses mismatch (-want +got):\n%s", diff)
	}

	m = press(t, m, "esc")
	if len(m.visible) != 4 {
		t.Errorf("esc should clear the filter, got %d visible", len(m.visible))
	}
}

func TestBrowser_ReloadErrorKeepsCatalog(t *testing.T) {
	m := loadedModel(t)

	m = press(t, m, "r")
	if !m.loading {
		t.Fatal("expected reload to start loading")
	}
	updated, _ := m.Update(browserErrorMsg{err: errors.New("catalog: failed to open courses.csv")})
	m = updated.(browserModel)

	if !m.statusIsError || !strings.Contains(m.status, "failed to open") {
		t.Errorf("expected error status, got %q", m.status)
	}
	if m.cat == nil || len(m.visible) != 4 {
		t.Error("failed reload must keep the previous catalog")
	}
}

func TestBrowser_ViewShowsDetail(t *testing.T) {
	m := loadedModel(t)
	m = press(t, m, "j", "j")

	view := m.View()
	for _, want := range []string{"CSCI300", "Introduction to Algorithms", "Prerequisites", "MATH201"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestBrowser_StatsToggle(t *testing.T) {
	m := loadedModel(t)

	m = press(t, m, "s")
	if !m.showStats {
		t.Fatal("expected stats view")
	}
	if view := m.View(); !strings.Contains(view, "Courses per subject") {
		t.Errorf("expected subject chart in stats view")
	}
}
