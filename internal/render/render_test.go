package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/courseplan/internal/catalog"
	"nathanbeddoewebdev/courseplan/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	input := strings.Join([]string{
		"CSCI100,Intro to CS",
		"CSCI200,Data Structures,CSCI100",
		"MATH201,Discrete Math",
		"CSCI300,Introduction to Algorithms,CSCI200,MATH201",
		"CSCI400,Large Software Development,CSCI300,PHYS999",
	}, "\n")
	c := catalog.New()
	if _, err := catalog.Parse(strings.NewReader(input), c, catalog.Options{}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return c
}

func TestList_SortedWithHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := List(&buf, sampleCatalog(t)); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := "Here is a sample schedule:\n" +
		"CSCI100, Intro to CS\n" +
		"CSCI200, Data Structures\n" +
		"CSCI300, Introduction to Algorithms\n" +
		"CSCI400, Large Software Development\n" +
		"MATH201, Discrete Math\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("list output mismatch (-want +got):\n%s", diff)
	}
}

func TestList_EmptyCatalogPrintsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := List(&buf, catalog.New()); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if buf.String() != ListHeader+"\n" {
		t.Errorf("expected header only, got %q", buf.String())
	}
}

func TestCourse_ResolvesPrerequisiteTitle(t *testing.T) {
	var buf bytes.Buffer
	if err := Course(&buf, sampleCatalog(t), "CSCI200"); err != nil {
		t.Fatalf("Course failed: %v", err)
	}

	want := "CSCI200, Data Structures\nPrerequisites: CSCI100 (Intro to CS)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("course output mismatch (-want +got):\n%s", diff)
	}
}

func TestCourse_AnyCaseInput(t *testing.T) {
	var lower, upper bytes.Buffer
	cat := sampleCatalog(t)
	if err := Course(&lower, cat, "  csci300 "); err != nil {
		t.Fatalf("Course failed: %v", err)
	}
	if err := Course(&upper, cat, "CSCI300"); err != nil {
		t.Fatalf("Course failed: %v", err)
	}
	if lower.String() != upper.String() {
		t.Errorf("expected identical output, got %q and %q", lower.String(), upper.String())
	}
}

func TestCourse_MultiplePrerequisitesInOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := Course(&buf, sampleCatalog(t), "CSCI300"); err != nil {
		t.Fatalf("Course failed: %v", err)
	}
	want := "CSCI300, Introduction to Algorithms\n" +
		"Prerequisites: CSCI200 (Data Structures), MATH201 (Discrete Math)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("course output mismatch (-want +got):\n%s", diff)
	}
}

func TestCourse_UnresolvedPrerequisiteIsBare(t *testing.T) {
	var buf bytes.Buffer
	if err := Course(&buf, sampleCatalog(t), "csci400"); err != nil {
		t.Fatalf("Course failed: %v", err)
	}
	want := "CSCI400, Large Software Development\n" +
		"Prerequisites: CSCI300 (Introduction to Algorithms), PHYS999\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("course output mismatch (-want +got):\n%s", diff)
	}
}

func TestCourse_NoPrerequisites(t *testing.T) {
	var buf bytes.Buffer
	if err := Course(&buf, sampleCatalog(t), "MATH201"); err != nil {
		t.Fatalf("Course failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[1] != "Prerequisites: None" {
		t.Errorf("expected exactly %q as second line, got %q", "Prerequisites: None", buf.String())
	}
}

func TestCourse_NotFound(t *testing.T) {
	var buf bytes.Buffer
	err := Course(&buf, sampleCatalog(t), " bio101 ")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if buf.String() != "Course not found: BIO101\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
