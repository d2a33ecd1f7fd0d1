// Package diary decides which vault notes are daily diary entries and
// which calendar date each one represents.
package diary

import (
	"fmt"
	"strings"
	"time"

	"github.com/taigrr/obsidian-ics/internal/types"
)

// IsDiaryFile reports whether f is a diary note: an "md" file, under the
// configured folder (empty or "/" means anywhere), whose basename strictly
// matches the configured date format. A non-matching file is the normal
// case, not an error.
func IsDiaryFile(f types.VaultFile, format, folder string) bool {
	if f.Extension != "md" {
		return false
	}
	if folder != "" && folder != "/" {
		prefix := strings.TrimPrefix(folder, "/")
		if !strings.HasPrefix(f.Path, prefix) {
			return false
		}
	}
	_, _, _, err := DateOf(f.Basename, format)
	return err == nil
}

// DateOf parses a basename against a moment-style date format and returns
// the encoded date. The match is strict: the basename must reproduce
// exactly when the parsed date is formatted back, so "2024-3-5" does not
// satisfy "YYYY-MM-DD".
func DateOf(basename, format string) (year, month, day int, err error) {
	layout := goLayout(format)
	t, perr := time.Parse(layout, basename)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("basename %q does not match format %q: %w", basename, format, perr)
	}
	// time.Parse is lenient about leading zeros; round-trip to enforce a
	// token-for-token match.
	if t.Format(layout) != basename {
		return 0, 0, 0, fmt.Errorf("basename %q is not a strict match for format %q", basename, format)
	}
	return t.Year(), int(t.Month()), t.Day(), nil
}

// momentTokens maps moment.js date tokens to Go reference-time layouts,
// longest token first so "YYYY" is never consumed as two "YY"s.
// Week-of-year and ordinal tokens are not supported.
var momentTokens = []string{
	"YYYY", "2006",
	"MMMM", "January",
	"dddd", "Monday",
	"MMM", "Jan",
	"ddd", "Mon",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"M", "1",
	"D", "2",
}

var momentReplacer = strings.NewReplacer(momentTokens...)

func goLayout(format string) string {
	return momentReplacer.Replace(format)
}
