package types

// Event is a single all-day calendar event derived from a diary note.
// Events are rebuilt from scratch on every feed request and never persisted.
type Event struct {
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"` // obsidian:// deep link
	Description string `json:"description,omitempty"`

	// Start date of the all-day event; duration is always one day.
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}
