// Package uri generates obsidian:// deep links for calendar events.
package uri

import (
	"net/url"
	"strings"
)

// Open returns a deep link that opens a note in the host application:
// obsidian://open?vault=<vault>&file=<path>. A non-empty anchor appends a
// percent-encoded "#anchor" to the file parameter, pointing at a heading
// inside the note.
func Open(vault, file, anchor string) string {
	link := "obsidian://open?vault=" + escape(vault) + "&file=" + escape(file)
	if anchor != "" {
		link += escape("#" + anchor)
	}
	return link
}

// escape mirrors JavaScript's encodeURIComponent, which calendar clients
// already expect in these links: spaces become %20, not "+".
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
