// Package config holds the daemon settings and their YAML load/save cycle.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Heading level values accepted by Config.HeadingLevel.
const (
	HeadingPrimary   = "h1"
	HeadingSecondary = "h2"
)

// DefaultDailyNoteFormat matches Obsidian's daily-notes default.
const DefaultDailyNoteFormat = "YYYY-MM-DD"

// Config is the full daemon configuration. It is treated as read-only
// during a feed generation; changing it requires a server restart.
type Config struct {
	// BindAddress is the interface the HTTP server binds to. The feed is
	// unauthenticated, so anything other than 127.0.0.1 exposes diary
	// headings and front matter to the whole network segment.
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP listen port (1-65535).
	Port int `yaml:"port" json:"port"`

	// HeadingLevel selects which headings become calendar entries:
	// "h1" or "h2".
	HeadingLevel string `yaml:"heading_level" json:"heading_level"`

	// IncludeSubheadings adds the rendered sub-heading block to each
	// event description.
	IncludeSubheadings bool `yaml:"include_subheadings" json:"include_subheadings"`

	// IncludeFrontmatter emits an extra per-file event rendered from the
	// note's front matter.
	IncludeFrontmatter bool `yaml:"include_frontmatter" json:"include_frontmatter"`

	// FrontmatterTitleTemplate and FrontmatterBodyTemplate use
	// {{field}} placeholders; the title template additionally supports
	// {{filename}}.
	FrontmatterTitleTemplate string `yaml:"frontmatter_title_template" json:"frontmatter_title_template"`
	FrontmatterBodyTemplate  string `yaml:"frontmatter_body_template" json:"frontmatter_body_template"`

	// DailyNoteFormat is the moment-style date pattern diary basenames
	// must match, e.g. "YYYY-MM-DD".
	DailyNoteFormat string `yaml:"daily_note_format" json:"daily_note_format"`

	// DailyNoteFolder restricts diary matching to a vault subfolder.
	// Empty or "/" means the whole vault.
	DailyNoteFolder string `yaml:"daily_note_folder" json:"daily_note_folder"`

	// VaultName overrides the vault name used in deep links. Defaults to
	// the vault directory basename.
	VaultName string `yaml:"vault_name" json:"vault_name"`
}

// DefaultConfig returns the in-memory defaults. The port matches the
// original Obsidian plugin so existing calendar subscriptions keep working.
func DefaultConfig() *Config {
	return &Config{
		BindAddress:     "127.0.0.1",
		Port:            19347,
		HeadingLevel:    HeadingSecondary,
		DailyNoteFormat: DefaultDailyNoteFormat,
	}
}

// Normalize fills zero values so partially written config files still load.
func (c *Config) Normalize() {
	if c.BindAddress == "" {
		c.BindAddress = "127.0.0.1"
	}
	if c.Port <= 0 || c.Port > 65535 {
		c.Port = 19347
	}
	switch c.HeadingLevel {
	case HeadingPrimary, HeadingSecondary:
	default:
		c.HeadingLevel = HeadingSecondary
	}
	if c.DailyNoteFormat == "" {
		c.DailyNoteFormat = DefaultDailyNoteFormat
	}
	if c.DailyNoteFolder == "/" {
		c.DailyNoteFolder = ""
	}
}

// HeadingLevelDepth returns the numeric depth for HeadingLevel.
func (c *Config) HeadingLevelDepth() int {
	if c.HeadingLevel == HeadingPrimary {
		return 1
	}
	return 2
}

// ListenAddr returns the host:port string the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}

// FeedURL returns the subscription URL advertised to the user. A wildcard
// bind address is presented as loopback, matching what a local calendar
// client would actually dial.
func (c *Config) FeedURL() string {
	host := c.BindAddress
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("http://%s:%d/feed.ics", host, c.Port)
}

// Load reads the config from path. A missing file is a first run: the
// defaults are written out and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600 perms.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".obsidian-ics-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
