package frontmatter

import (
	"regexp"
	"sort"
	"strings"
)

// FilenameToken is the special title-template placeholder that expands to
// the note's basename before any field substitution happens.
const FilenameToken = "{{filename}}"

var placeholderRe = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Rendered is the outcome of rendering a note's front matter.
type Rendered struct {
	Title string
	Body  string
}

// Render produces the title and body of a front-matter event.
//
// The body comes from the body template when one is configured: templates
// containing {{field}} placeholders are expanded in a single pass (fields
// missing from the map stay literal, by policy), templates without
// placeholders are used verbatim. With no template the body falls back to
// one "key: value" line per field, sorted by key so repeated feed builds
// are byte-identical.
//
// An empty body means no event should be emitted; ok is false in that case.
func Render(fm map[string]any, titleTemplate, bodyTemplate, basename string) (Rendered, bool) {
	fields := Clean(fm)

	var body string
	switch {
	case bodyTemplate != "" && HasPlaceholder(bodyTemplate):
		body = Expand(bodyTemplate, fields)
	case bodyTemplate != "":
		body = bodyTemplate
	default:
		body = fallbackBody(fields)
	}
	if body == "" {
		return Rendered{}, false
	}

	title := basename + "[frontmatter]"
	if titleTemplate != "" {
		title = strings.ReplaceAll(titleTemplate, FilenameToken, basename)
		title = Expand(title, fields)
	}

	return Rendered{Title: title, Body: body}, true
}

// Expand substitutes every {{field}} occurrence with the field's value in
// one pass over the template. Placeholders naming unknown fields are left
// untouched rather than guessed at.
func Expand(template string, fields map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-2]
		if val, ok := fields[name]; ok {
			return val
		}
		return match
	})
}

// HasPlaceholder reports whether the template contains at least one
// {{field}} token.
func HasPlaceholder(template string) bool {
	return placeholderRe.MatchString(template)
}

func fallbackBody(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(fields[k])
		b.WriteByte('\n')
	}
	return b.String()
}
