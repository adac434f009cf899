package helpers

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "exact", TruncateString("exact", 5))
	assert.Equal(t, "he...", TruncateString("hello world", 5))
	assert.Equal(t, "hel", TruncateString("hello", 3))
}

func TestTruncateStringKeepsRunesWhole(t *testing.T) {
	// Each ä is two bytes; a byte-indexed cut would land mid-rune.
	for maxLen := 1; maxLen <= 12; maxLen++ {
		got := TruncateString("päpäpäpä", maxLen)
		assert.True(t, utf8.ValidString(got), "maxLen %d: %q", maxLen, got)
		assert.LessOrEqual(t, len(got), maxLen)
	}
	assert.Equal(t, "päp...", TruncateString("päpäpäpä", 7))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \t b\n\nc "))
	assert.Equal(t, "", CollapseWhitespace("   "))
}

func TestSanitizeCommitMessage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "feat: add login", "feat: add login"},
		{"quoted", `"feat: add login"`, "feat: add login"},
		{"fenced", "```\"feat: add login\"```", "feat: add login"},
		{"multiline", "feat: add login\n\nbody text", "feat: add login"},
		{"padded", "  feat: add login  ", "feat: add login"},
		{"empty", "  \n ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeCommitMessage(tt.in))
		})
	}
}
