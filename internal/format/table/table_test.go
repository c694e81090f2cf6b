package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatPadsColumns(t *testing.T) {
	got := Format([][]string{
		{"Name:", "Alex Smith", "x"},
		{"Age:", "30", "yy"},
	}, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"Name:  Alex Smith  x",
		"Age:           30  yy",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected layout (-want +got):\n%s", diff)
	}
}

func TestFormatRaggedRowsAndWideRunes(t *testing.T) {
	got := Format([][]string{
		{"Nationality:", "日本"},
		{"Location:"},
	}, nil)
	want := []string{
		"Nationality:  日本",
		"Location:",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected layout (-want +got):\n%s", diff)
	}
}

func TestPairs(t *testing.T) {
	got := Pairs([][2]string{{"Gender:", "Female"}, {"Profession:", "Nurse"}})
	want := []string{"Gender:      Female", "Profession:  Nurse"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected layout (-want +got):\n%s", diff)
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

func TestFormatIgnoresEscapeSequences(t *testing.T) {
	styled := "\x1b[1mAge:\x1b[0m"
	got := Format([][]string{{styled, "30"}, {"Gender:", "Male"}}, nil)
	want := []string{styled + "     30", "Gender:  Male"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected layout (-want +got):\n%s", diff)
	}
}
