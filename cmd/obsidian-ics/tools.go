package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// FeedURLInput has no parameters.
	FeedURLInput struct{}

	// FeedURLOutput contains the subscription URL of the running feed.
	FeedURLOutput struct {
		URL string `json:"url"`
	}

	// ListDiaryInput has no parameters.
	ListDiaryInput struct{}

	// DiaryFileInfo describes one matched diary note.
	DiaryFileInfo struct {
		Path string `json:"path"`
		Date string `json:"date"` // ISO date encoded in the basename
	}

	// ListDiaryOutput contains every note the diary matcher accepts.
	ListDiaryOutput struct {
		Files []DiaryFileInfo `json:"files"`
		Total int             `json:"total"`
	}

	// GenerateInput has no parameters.
	GenerateInput struct{}

	// GenerateOutput contains a freshly built calendar document.
	GenerateOutput struct {
		Calendar string `json:"calendar"`
		Events   int    `json:"events"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "feed_url",
		Description: "Return the HTTP URL calendar clients should subscribe to for the diary feed.",
	}, handleFeedURL)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_diary",
		Description: "List the vault notes recognized as diary entries under the configured naming pattern and folder, with the date each one represents.",
	}, handleListDiary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_feed",
		Description: "Build the diary feed right now and return the full iCalendar document.",
	}, handleGenerateFeed)
}
