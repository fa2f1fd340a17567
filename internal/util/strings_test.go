package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"\t\r\n", ""},
		{"  CSCI100 ", "CSCI100"},
		{"\tIntro to CS\r", "Intro to CS"},
		{"a b", "a b"},
		{"\v\fx\f\v", "x"},
	}
	for _, tt := range tests {
		if got := Trim(tt.in); got != tt.want {
			t.Errorf("Trim(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"csci300", "CSCI300"},
		{"CSCI300", "CSCI300"},
		{"math-201b", "MATH-201B"},
		{"", ""},
		{"é1", "é1"},
	}
	for _, tt := range tests {
		if got := NormalizeIdentifier(tt.in); got != tt.want {
			t.Errorf("NormalizeIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim string
		want  []string
	}{
		{"simple", "CSCI200,Data Structures,CSCI100", ",", []string{"CSCI200", "Data Structures", "CSCI100"}},
		{"trims fields", " a , b ,c ", ",", []string{"a", "b", "c"}},
		{"empty fields kept", "a,,b,", ",", []string{"a", "", "b", ""}},
		{"single field", "CSCI100", ",", []string{"CSCI100"}},
		{"quotes are not special", `a,"b,c"`, ",", []string{"a", `"b`, `c"`}},
		{"other delimiter", "a|b|c", "|", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitFields(tt.line, tt.delim)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitFields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	if got := NormalizeKey("  Default-File "); got != "default-file" {
		t.Errorf("NormalizeKey = %q, want %q", got, "default-file")
	}
}
