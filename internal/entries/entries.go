// Package entries groups a note's heading outline into diary entries.
package entries

import (
	"strings"

	"github.com/taigrr/obsidian-ics/internal/types"
)

// Extract cuts the outline into entries. Headings whose level equals the
// configured level are entry boundaries; each entry's window runs from its
// boundary to the next boundary or end of file. Headings shallower than
// the configured level are plain content: they neither close the window
// nor appear in it. Deeper headings inside the window become sub-heading
// lines, indented two spaces per level beyond the first.
//
// A note with no boundary headings yields no entries. Entry order follows
// heading order in the source file.
func Extract(headings []types.Heading, level int) []types.Entry {
	var entries []types.Entry

	for i, h := range headings {
		if h.Level != level {
			continue
		}

		var sub []string
		for _, inner := range headings[i+1:] {
			if inner.Level == level {
				break
			}
			if inner.Level < level {
				continue
			}
			indent := strings.Repeat("  ", inner.Level-level-1)
			sub = append(sub, indent+inner.Text)
		}

		entries = append(entries, types.Entry{
			Title:       h.Text,
			Subheadings: strings.Join(sub, "\n"),
		})
	}

	return entries
}
