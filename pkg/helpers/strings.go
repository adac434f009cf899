package helpers

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var spaceRun = regexp.MustCompile(`\s+`)

// TruncateString truncates a string to at most maxLen bytes, adding an
// ellipsis if anything was cut. The cut lands on a rune boundary so the
// result stays valid UTF-8.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	if maxLen > 3 {
		cut = maxLen - 3
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if maxLen <= 3 {
		return s[:cut]
	}
	return s[:cut] + "..."
}

// CollapseWhitespace folds newlines and repeated spaces into single spaces
func CollapseWhitespace(s string) string {
	return spaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// SanitizeCommitMessage removes any unwanted characters from a commit message
func SanitizeCommitMessage(message string) string {
	message = strings.ReplaceAll(message, "```", "")
	message = strings.TrimSpace(message)
	message = strings.Trim(message, "\"'`")
	// Keep only the first line, commit subjects are single-line
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}
