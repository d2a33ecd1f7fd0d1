// Package pathfilter decides which vault paths the feed scanner may read.
package pathfilter

import "strings"

// Filter excludes vault-internal and non-note paths from the scan.
type Filter struct {
	ignoredDirs       []string
	ignoredFiles      []string
	allowedExtensions []string
}

// New returns a Filter with the standard Obsidian vault exclusions. Extra
// directory names (vault-relative, without slashes) may be appended.
func New(extraDirs ...string) *Filter {
	f := &Filter{
		ignoredDirs: []string{
			".obsidian",
			".trash",
			".git",
			"node_modules",
		},
		ignoredFiles: []string{
			".DS_Store",
			"Thumbs.db",
		},
		allowedExtensions: []string{".md", ".markdown"},
	}
	f.ignoredDirs = append(f.ignoredDirs, extraDirs...)
	return f
}

// IsAllowed reports whether a vault-relative file path may contribute to
// the feed. Paths use forward slashes.
func (f *Filter) IsAllowed(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")
	path = strings.TrimPrefix(path, "/")

	segments := strings.Split(path, "/")
	for _, seg := range segments[:len(segments)-1] {
		for _, dir := range f.ignoredDirs {
			if seg == dir {
				return false
			}
		}
		// Hidden directories are never part of a vault's notes.
		if strings.HasPrefix(seg, ".") {
			return false
		}
	}

	name := segments[len(segments)-1]
	for _, ignored := range f.ignoredFiles {
		if name == ignored {
			return false
		}
	}

	lower := strings.ToLower(name)
	for _, ext := range f.allowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// SkipDir reports whether a directory (by name) should be pruned from the
// walk entirely.
func (f *Filter) SkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, dir := range f.ignoredDirs {
		if name == dir {
			return true
		}
	}
	return false
}
