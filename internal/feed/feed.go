// Package feed assembles calendar events from the diary notes of a vault.
package feed

import (
	"context"
	"runtime"
	"sync"

	"github.com/taigrr/obsidian-ics/internal/config"
	"github.com/taigrr/obsidian-ics/internal/diary"
	"github.com/taigrr/obsidian-ics/internal/entries"
	"github.com/taigrr/obsidian-ics/internal/frontmatter"
	"github.com/taigrr/obsidian-ics/internal/log"
	"github.com/taigrr/obsidian-ics/internal/outline"
	"github.com/taigrr/obsidian-ics/internal/types"
	"github.com/taigrr/obsidian-ics/internal/uri"
	"github.com/taigrr/obsidian-ics/internal/vault"
)

// Builder turns the current vault contents into an ordered event list.
// Each Build call is an independent snapshot; nothing is cached between
// requests, so concurrent builds are safe.
type Builder struct {
	vault *vault.Service
	cfg   *config.Config
}

// NewBuilder creates a feed Builder over a vault with the given settings.
func NewBuilder(v *vault.Service, cfg *config.Config) *Builder {
	return &Builder{vault: v, cfg: cfg}
}

// Build lists the vault, keeps the diary files, and extracts each file's
// events. Files are processed by a worker pool since extractions are
// independent, but results are reassembled into path-sorted file order so
// repeated builds over unchanged notes are identical. A single file's
// failure costs only that file's events.
func (b *Builder) Build(ctx context.Context) ([]types.Event, error) {
	files, err := b.vault.ListNotes()
	if err != nil {
		return nil, err
	}

	var matched []types.VaultFile
	for _, f := range files {
		if diary.IsDiaryFile(f, b.cfg.DailyNoteFormat, b.cfg.DailyNoteFolder) {
			matched = append(matched, f)
		}
	}
	log.Debug("building feed", "notes", len(files), "diary_files", len(matched))

	if len(matched) == 0 {
		return nil, nil
	}

	perFile := make([][]types.Event, len(matched))
	fileCh := make(chan int, len(matched))
	for i := range matched {
		fileCh <- i
	}
	close(fileCh)

	numWorkers := max(min(runtime.NumCPU(), len(matched)), 1)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for i := range fileCh {
				if ctx.Err() != nil {
					return
				}
				perFile[i] = b.fileEvents(matched[i])
			}
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var events []types.Event
	for _, evs := range perFile {
		events = append(events, evs...)
	}
	return events, nil
}

// fileEvents extracts all events of one diary file. Errors are logged and
// swallowed so the rest of the feed still builds.
func (b *Builder) fileEvents(f types.VaultFile) []types.Event {
	year, month, day, err := diary.DateOf(f.Basename, b.cfg.DailyNoteFormat)
	if err != nil {
		// The file already passed IsDiaryFile, so this indicates the
		// vault changed mid-build or the format is ambiguous.
		log.Error("diary date extraction failed", err, "path", f.Path)
		return nil
	}

	note, err := b.vault.ReadNote(f.Path)
	if err != nil {
		log.Error("diary note unreadable", err, "path", f.Path)
		return nil
	}

	vaultName := b.vaultName()
	var events []types.Event

	if b.cfg.IncludeFrontmatter && len(note.Frontmatter) > 0 {
		rendered, ok := frontmatter.Render(note.Frontmatter,
			b.cfg.FrontmatterTitleTemplate, b.cfg.FrontmatterBodyTemplate, f.Basename)
		if ok {
			events = append(events, types.Event{
				Title:       rendered.Title,
				URL:         uri.Open(vaultName, f.Path, ""),
				Description: rendered.Body,
				Year:        year,
				Month:       month,
				Day:         day,
			})
		}
	}

	headings := outline.Headings(note.Content)
	for _, entry := range entries.Extract(headings, b.cfg.HeadingLevelDepth()) {
		description := ""
		if b.cfg.IncludeSubheadings && entry.Subheadings != "" {
			description = entry.Subheadings + "\n\n"
		}
		events = append(events, types.Event{
			Title:       entry.Title,
			URL:         uri.Open(vaultName, f.Path, entry.Title),
			Description: description,
			Year:        year,
			Month:       month,
			Day:         day,
		})
	}

	return events
}

func (b *Builder) vaultName() string {
	if b.cfg.VaultName != "" {
		return b.cfg.VaultName
	}
	return b.vault.Name()
}
