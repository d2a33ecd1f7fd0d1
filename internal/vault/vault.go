// Package vault provides read-only access to the note files of an
// Obsidian vault.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/taigrr/obsidian-ics/internal/frontmatter"
	"github.com/taigrr/obsidian-ics/internal/pathfilter"
	"github.com/taigrr/obsidian-ics/internal/types"
)

// Service lists and reads the markdown notes of a vault directory.
type Service struct {
	vaultPath  string
	pathFilter *pathfilter.Filter
}

// New creates a vault Service rooted at vaultPath.
func New(vaultPath string, pf *pathfilter.Filter) *Service {
	absPath, _ := filepath.Abs(vaultPath)
	if pf == nil {
		pf = pathfilter.New()
	}
	return &Service{
		vaultPath:  absPath,
		pathFilter: pf,
	}
}

// Name returns the vault's display name, which Obsidian derives from the
// vault directory basename. Deep links embed this name.
func (s *Service) Name() string {
	return filepath.Base(s.vaultPath)
}

// Path returns the absolute vault root.
func (s *Service) Path() string {
	return s.vaultPath
}

// ResolvePath resolves a vault-relative path and rejects traversal
// outside the vault root.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")

	absPath, err := filepath.Abs(filepath.Join(s.vaultPath, relativePath))
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(s.vaultPath, absPath)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// ListNotes walks the vault and returns every markdown note the path
// filter allows, sorted by path. The sort keeps feed generation
// deterministic regardless of directory iteration order.
func (s *Service) ListNotes() ([]types.VaultFile, error) {
	var files []types.VaultFile

	err := filepath.WalkDir(s.vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.vaultPath && s.pathFilter.SkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(s.vaultPath, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !s.pathFilter.IsAllowed(rel) {
			return nil
		}

		name := d.Name()
		ext := strings.TrimPrefix(filepath.Ext(name), ".")
		files = append(files, types.VaultFile{
			Path:      rel,
			Basename:  strings.TrimSuffix(name, filepath.Ext(name)),
			Extension: strings.ToLower(ext),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk vault %s: %w", s.vaultPath, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// ReadNote reads a note and splits off its front matter.
func (s *Service) ReadNote(path string) (types.ParsedNote, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return types.ParsedNote{}, err
	}
	if !s.pathFilter.IsAllowed(path) {
		return types.ParsedNote{}, fmt.Errorf("access denied: %s", path)
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.ParsedNote{}, fmt.Errorf("file not found: %s", path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return types.ParsedNote{}, fmt.Errorf("permission denied: %s", path)
		}
		return types.ParsedNote{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return frontmatter.Parse(string(content)), nil
}
