// Package types defines the data structures shared across the feed pipeline.
package types

type (
	// VaultFile identifies a markdown note inside the vault. Path is
	// vault-relative with forward slashes; Basename has no extension.
	VaultFile struct {
		Path      string `json:"path"`
		Basename  string `json:"basename"`
		Extension string `json:"extension"`
	}

	// ParsedNote is a note split into front matter and body content.
	ParsedNote struct {
		Frontmatter map[string]any `json:"frontmatter"`
		Content     string         `json:"content"`
	}
)
