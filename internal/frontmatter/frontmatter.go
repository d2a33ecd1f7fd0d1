// Package frontmatter extracts YAML front matter from notes and renders
// it into calendar event titles and bodies.
package frontmatter

import (
	"fmt"
	"strings"

	matter "github.com/adrg/frontmatter"

	"github.com/taigrr/obsidian-ics/internal/types"
)

// PositionField is Obsidian's internal location marker; it never appears
// in rendered output or as a substitution candidate.
const PositionField = "position"

// Parse splits a note into front matter and body. A note without front
// matter, or with front matter that fails to parse, yields a nil map and
// the original content.
func Parse(content string) types.ParsedNote {
	var fm map[string]any
	rest, err := matter.Parse(strings.NewReader(content), &fm)
	if err != nil {
		return types.ParsedNote{Content: content}
	}
	return types.ParsedNote{
		Frontmatter: fm,
		Content:     string(rest),
	}
}

// Clean returns the substitution candidates of a front-matter map:
// scalar fields only, with the reserved position field and null values
// dropped. The result maps field names to display strings.
func Clean(fm map[string]any) map[string]string {
	out := make(map[string]string, len(fm))
	for key, val := range fm {
		if key == PositionField || val == nil {
			continue
		}
		switch val.(type) {
		case map[string]any, []any:
			continue
		}
		out[key] = fmt.Sprintf("%v", val)
	}
	return out
}
