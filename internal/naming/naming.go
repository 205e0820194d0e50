// Package naming derives safe, collision-resistant filenames for the flat
// output directory.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	unsafeChars    = regexp.MustCompile(`[^a-zA-Z0-9-]`)
)

// Normalize maps a source filename to its output form: the stem is lowercased
// with whitespace runs collapsed to single hyphens and all other
// non-alphanumeric characters stripped, then salted with the owning item's ID
// so identically named files from different items cannot collide. The
// extension is lowercased. Normalize is deterministic and idempotent: a stem
// that already carries the "-<id>" suffix is not salted again.
//
// An empty stem after stripping is accepted and yields "-<id><ext>".
func Normalize(filename, itemID string) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	stem = whitespaceRuns.ReplaceAllString(stem, "-")
	stem = unsafeChars.ReplaceAllString(stem, "")
	stem = strings.ToLower(stem)

	if itemID != "" && !strings.HasSuffix(stem, "-"+strings.ToLower(itemID)) {
		stem += "-" + strings.ToLower(itemID)
	}
	return stem + strings.ToLower(ext)
}
