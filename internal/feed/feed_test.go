package feed

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/taigrr/obsidian-ics/internal/config"
	"github.com/taigrr/obsidian-ics/internal/pathfilter"
	"github.com/taigrr/obsidian-ics/internal/vault"
)

func writeNote(t *testing.T, root, path, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestBuilder(t *testing.T, root string, cfg *config.Config) *Builder {
	t.Helper()
	cfg.Normalize()
	return NewBuilder(vault.New(root, pathfilter.New()), cfg)
}

func TestBuild_SingleHeading(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "2024-01-01.md", "## Plan\n")

	b := newTestBuilder(t, root, &config.Config{IncludeSubheadings: true})
	events, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("Build() returned %d events, want 1: %+v", len(events), events)
	}
	ev := events[0]
	if ev.Title != "Plan" {
		t.Errorf("Title = %q, want %q", ev.Title, "Plan")
	}
	if ev.Year != 2024 || ev.Month != 1 || ev.Day != 1 {
		t.Errorf("date = (%d, %d, %d), want (2024, 1, 1)", ev.Year, ev.Month, ev.Day)
	}
	// No sub-headings means an empty description even with inclusion on.
	if ev.Description != "" {
		t.Errorf("Description = %q, want empty", ev.Description)
	}
	if !strings.Contains(ev.URL, "%23Plan") {
		t.Errorf("URL = %q, want heading anchor", ev.URL)
	}
}

func TestBuild_NonDiaryFilesExcluded(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "2024-01-01.md", "## Plan\n")
	writeNote(t, root, "todo.md", "## Not a diary\n")
	writeNote(t, root, "notes/2024-1-1.md", "## Sloppy date\n")

	b := newTestBuilder(t, root, &config.Config{})
	events, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(events) != 1 || events[0].Title != "Plan" {
		t.Errorf("Build() = %+v, want only the Plan event", events)
	}
}

func TestBuild_SubheadingsInDescription(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "2024-03-05.md", "## Morning\n### Mood: good\n## Evening\n")

	b := newTestBuilder(t, root, &config.Config{IncludeSubheadings: true})
	events, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("Build() returned %d events, want 2", len(events))
	}
	if events[0].Description != "Mood: good\n\n" {
		t.Errorf("Description = %q, want %q", events[0].Description, "Mood: good\n\n")
	}
	if events[1].Description != "" {
		t.Errorf("Description = %q, want empty", events[1].Description)
	}
}

func TestBuild_SubheadingInclusionOff(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "2024-03-05.md", "## Morning\n### Mood: good\n")

	b := newTestBuilder(t, root, &config.Config{})
	events, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(events) != 1 || events[0].Description != "" {
		t.Errorf("Build() = %+v, want one event with empty description", events)
	}
}

func TestBuild_FrontmatterEventFirst(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "2024-03-05.md", `---
weather: sunny
---
## Morning
`)

	b := newTestBuilder(t, root, &config.Config{IncludeFrontmatter: true})
	events, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("Build() returned %d events, want 2: %+v", len(events), events)
	}
	if events[0].Title != "2024-03-05[frontmatter]" {
		t.Errorf("first event title = %q, want front-matter event first", events[0].Title)
	}
	if events[0].Description != "weather: sunny\n" {
		t.Errorf("front-matter body = %q, want %q", events[0].Description, "weather: sunny\n")
	}
	if strings.Contains(events[0].URL, "%23") {
		t.Errorf("front-matter URL = %q, want no anchor", events[0].URL)
	}
	if events[1].Title != "Morning" {
		t.Errorf("second event title = %q, want %q", events[1].Title, "Morning")
	}
}

func TestBuild_FolderFilter(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "journal/2024-03-05.md", "## In\n")
	writeNote(t, root, "2024-03-06.md", "## Out\n")

	cfg := &config.Config{DailyNoteFolder: "journal"}
	b := newTestBuilder(t, root, cfg)
	events, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(events) != 1 || events[0].Title != "In" {
		t.Errorf("Build() = %+v, want only the journal event", events)
	}
}

func TestBuild_FileOrderIsPathSorted(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "2024-01-02.md", "## Second\n")
	writeNote(t, root, "2024-01-01.md", "## First\n")
	writeNote(t, root, "2024-01-03.md", "## Third\n")

	b := newTestBuilder(t, root, &config.Config{})
	events, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var titles []string
	for _, ev := range events {
		titles = append(titles, ev.Title)
	}
	want := []string{"First", "Second", "Third"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("event order = %v, want %v", titles, want)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "a/2024-01-01.md", "---\nmood: ok\n---\n## One\n### Sub\n")
	writeNote(t, root, "b/2024-01-02.md", "## Two\n")

	cfg := &config.Config{IncludeSubheadings: true, IncludeFrontmatter: true}
	b := newTestBuilder(t, root, cfg)

	first, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated builds differ:\n%+v\n%+v", first, second)
	}
}

func TestBuild_EmptyVault(t *testing.T) {
	b := newTestBuilder(t, t.TempDir(), &config.Config{})

	events, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Build() = %+v, want no events", events)
	}
}

func TestBuild_VaultNameOverrideInDeepLinks(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "2024-01-01.md", "## Plan\n")

	cfg := &config.Config{VaultName: "My Diary"}
	b := newTestBuilder(t, root, cfg)
	events, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(events) != 1 || !strings.Contains(events[0].URL, "vault=My%20Diary") {
		t.Errorf("Build() = %+v, want deep link with overridden vault name", events)
	}
}
