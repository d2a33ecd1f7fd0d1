// Package outline builds a note's heading outline from its markdown body.
package outline

import (
	"regexp"
	"strings"

	"github.com/taigrr/obsidian-ics/internal/types"
)

var atxRe = regexp.MustCompile(`^(#{1,6})\s+(.*?)\s*#*\s*$`)

// Headings scans content for ATX headings and returns them in source
// order. Lines inside fenced code blocks are ignored so a "# comment" in a
// shell snippet does not become a diary entry.
func Headings(content string) []types.Heading {
	var headings []types.Heading
	fence := "" // marker that opened the current fenced block, "" outside

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		marker := ""
		if strings.HasPrefix(trimmed, "```") {
			marker = "```"
		} else if strings.HasPrefix(trimmed, "~~~") {
			marker = "~~~"
		}
		if marker != "" {
			// A block only closes on the marker that opened it; the
			// other marker inside is ordinary content.
			switch fence {
			case "":
				fence = marker
			case marker:
				fence = ""
			}
			continue
		}
		if fence != "" {
			continue
		}

		m := atxRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		if text == "" {
			continue
		}
		headings = append(headings, types.Heading{
			Text:  text,
			Level: len(m[1]),
			Line:  i,
		})
	}

	return headings
}
