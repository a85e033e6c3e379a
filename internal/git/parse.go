package git

import (
	"strings"
	"unicode"
)

// ParseOneline parses `git log --pretty=oneline` output into a RevisionSet.
//
// Each line is split at its first whitespace run into hash and message.
// Lines without whitespace, blank lines and lines with an empty hash are
// skipped. A hash seen twice keeps the later message.
func ParseOneline(raw string) *RevisionSet {
	set := NewRevisionSet()
	if raw == "" {
		return set
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")

		idx := strings.IndexFunc(line, unicode.IsSpace)
		if idx <= 0 {
			continue
		}

		sha := line[:idx]
		message := strings.TrimLeftFunc(line[idx:], unicode.IsSpace)
		set.set(sha, message)
	}

	return set
}
