package types

type (
	// Heading is one entry in a note's heading outline, in source order.
	Heading struct {
		Text  string `json:"text"`
		Level int    `json:"level"` // 1 for #, 2 for ##, ...
		Line  int    `json:"line"`  // zero-based line index
	}

	// Entry is a diary entry cut out of a note's outline: the boundary
	// heading's text plus a rendered block of its nested sub-headings.
	Entry struct {
		Title       string `json:"title"`
		Subheadings string `json:"subheadings"` // indented, newline-joined, may be empty
	}
)
