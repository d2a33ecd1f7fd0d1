package entries

import (
	"reflect"
	"testing"

	"github.com/taigrr/obsidian-ics/internal/types"
)

func TestExtract_SecondaryHeadings(t *testing.T) {
	headings := []types.Heading{
		{Text: "Morning", Level: 2, Line: 0},
		{Text: "Mood: good", Level: 3, Line: 1},
		{Text: "Evening", Level: 2, Line: 2},
	}

	got := Extract(headings, 2)

	want := []types.Entry{
		{Title: "Morning", Subheadings: "Mood: good"},
		{Title: "Evening", Subheadings: ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}
}

func TestExtract_IndentationByDepth(t *testing.T) {
	// One level below the boundary renders flush left, each further
	// level adds two spaces.
	headings := []types.Heading{
		{Text: "Work", Level: 2, Line: 0},
		{Text: "Standup", Level: 3, Line: 1},
		{Text: "Action items", Level: 4, Line: 2},
		{Text: "Deep detail", Level: 5, Line: 3},
	}

	got := Extract(headings, 2)
	if len(got) != 1 {
		t.Fatalf("Extract() returned %d entries, want 1", len(got))
	}

	want := "Standup\n  Action items\n    Deep detail"
	if got[0].Subheadings != want {
		t.Errorf("Subheadings = %q, want %q", got[0].Subheadings, want)
	}
}

func TestExtract_ShallowerHeadingIsNotABoundary(t *testing.T) {
	// A top-level heading inside a secondary entry is plain content: the
	// window stays open, and the H3 after it still belongs to the entry.
	headings := []types.Heading{
		{Text: "Plan", Level: 2, Line: 0},
		{Text: "Part two", Level: 1, Line: 1},
		{Text: "Orphan", Level: 3, Line: 2},
	}

	got := Extract(headings, 2)
	if len(got) != 1 {
		t.Fatalf("Extract() returned %d entries, want 1", len(got))
	}
	if got[0].Subheadings != "Orphan" {
		t.Errorf("Subheadings = %q, want %q", got[0].Subheadings, "Orphan")
	}
}

func TestExtract_PrimaryLevel(t *testing.T) {
	headings := []types.Heading{
		{Text: "Day", Level: 1, Line: 0},
		{Text: "Morning", Level: 2, Line: 1},
		{Text: "Details", Level: 3, Line: 2},
	}

	got := Extract(headings, 1)

	want := []types.Entry{
		{Title: "Day", Subheadings: "Morning\n  Details"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}
}

func TestExtract_NoBoundaries(t *testing.T) {
	headings := []types.Heading{
		{Text: "Only a title", Level: 1, Line: 0},
	}
	if got := Extract(headings, 2); got != nil {
		t.Errorf("Extract() = %+v, want nil", got)
	}
}

func TestExtract_Empty(t *testing.T) {
	if got := Extract(nil, 2); got != nil {
		t.Errorf("Extract(nil) = %+v, want nil", got)
	}
}
