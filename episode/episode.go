// Package episode extracts episode identity from recording filenames.
//
// Two extractors live here on purpose. Number is the sort key the assembler
// orders recordings with; Label is the best-effort display string drawn onto
// frames. They match different pattern sets and may disagree on an ambiguous
// filename (one containing several digit runs). Keep them independent: the
// divergence is documented behavior, not a bug.
package episode

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	reEpNumber = regexp.MustCompile(`(?i)ep(\d+)`)
	reEpToken  = regexp.MustCompile(`(?i)(episode|ep|episo|e)_(\d+)`)
	reDigitRun = regexp.MustCompile(`(\d{1,6})`)
)

// Number returns the integer episode number parsed from filename, matching
// "ep" immediately followed by digits anywhere in the string, case
// insensitively. Filenames with no such pattern return 0 so they keep a
// stable relative order when sorted.
func Number(filename string) int {
	m := reEpNumber.FindStringSubmatch(filename)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// Label returns the display label for filename. The extension is stripped and
// the first matching pattern wins: "ep" plus digits, then one of the tokens
// episode/ep/episo/e followed by an underscore and digits, then the first run
// of one to six digits. When nothing matches, the bare stem is the label.
func Label(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if m := reEpNumber.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	if m := reEpToken.FindStringSubmatch(base); m != nil {
		return m[2]
	}
	if m := reDigitRun.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	return base
}
