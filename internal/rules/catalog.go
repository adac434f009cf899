// Package rules implements the heuristic core of lazycommit: a fixed
// catalog of weighted pattern categories that turn staged paths, diff text
// and the branch name into scored commit candidates, plus the selector and
// formatter that reduce them to a single conventional-commit message.
package rules

import (
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Confidence weights for each category. The merge threshold lives in
// configuration; these are the fixed per-category scores.
const (
	confidenceBranch    = 0.95
	confidenceVersion   = 0.95
	confidenceFixNote   = 0.9
	confidenceTodoNote  = 0.8
	confidenceDocs      = 0.9
	confidenceTests     = 0.9
	confidenceConfig    = 0.85
	confidenceStyle     = 0.85
	confidenceBuild     = 0.8
	confidenceFixWords  = 0.8
	confidenceFeatWord  = 0.75
	confidenceRefactor  = 0.7
	confidenceColor     = 0.65
	confidenceFunction  = 0.6
	confidenceStatsBulk = 0.6
	confidenceStatsOne  = 0.5
)

// statsBulkLines is the line-count floor before a lopsided add/delete
// ratio says anything about intent.
const statsBulkLines = 50

// fileTypeCategory describes one entry of the file-type table: a set of
// path tests mapping to a commit type, a fixed description and a weight.
type fileTypeCategory struct {
	name        string
	commitType  string
	description string
	confidence  float64
	substrings  []string
	suffixes    []string
	basenames   []string
}

func (c fileTypeCategory) matches(path string) bool {
	lower := strings.ToLower(path)
	base := lower
	if idx := strings.LastIndexByte(lower, '/'); idx >= 0 {
		base = lower[idx+1:]
	}
	for _, name := range c.basenames {
		if base == name {
			return true
		}
	}
	for _, suffix := range c.suffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	for _, sub := range c.substrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

var fileTypeCatalog = []fileTypeCategory{
	{
		name:        "docs",
		commitType:  "docs",
		description: "update documentation",
		confidence:  confidenceDocs,
		substrings:  []string{"readme", "docs", "documentation"},
		suffixes:    []string{".md", ".rst", ".txt"},
	},
	{
		name:        "tests",
		commitType:  "test",
		description: "add tests",
		confidence:  confidenceTests,
		substrings:  []string{"test", "spec"},
	},
	{
		name:        "config",
		commitType:  "chore",
		description: "update configuration",
		confidence:  confidenceConfig,
		substrings:  []string{"config", "settings"},
		suffixes:    []string{".toml", ".yaml", ".yml", ".ini", ".cfg", ".conf", ".env"},
	},
	{
		name:        "style",
		commitType:  "style",
		description: "improve styling",
		confidence:  confidenceStyle,
		suffixes:    []string{".css", ".scss", ".sass", ".less"},
	},
	{
		name:        "build",
		commitType:  "build",
		description: "update build configuration",
		confidence:  confidenceBuild,
		suffixes:    []string{".lock", ".gradle"},
		basenames: []string{
			"package.json", "pyproject.toml", "cargo.toml", "go.mod", "go.sum",
			"makefile", "dockerfile", "requirements.txt",
		},
	},
}

// keywordGroup is one entry of the diff-keyword table. Keywords match on
// word boundaries anywhere in the diff body.
type keywordGroup struct {
	commitType  string
	description string
	confidence  float64
	pattern     *regexp.Regexp
}

var keywordCatalog = []keywordGroup{
	{
		commitType:  "fix",
		description: "fix issues",
		confidence:  confidenceFixWords,
		pattern:     regexp.MustCompile(`(?i)\b(fix|bug|issue|error|exception|crash|fail|broken|wrong|incorrect)\b`),
	},
	{
		commitType:  "feat",
		description: "add new features",
		confidence:  confidenceFeatWord,
		pattern:     regexp.MustCompile(`(?i)\b(add|new|implement|introduce|create|support)\b`),
	},
	{
		commitType:  "refactor",
		description: "refactor code",
		confidence:  confidenceRefactor,
		pattern:     regexp.MustCompile(`(?i)\b(refactor|restructure|reorganize|simplify|cleanup)\b`),
	},
}

// Branch names of the form <type>/<scope> or <type>-<scope> are treated as
// author-declared intent and outrank every derived signal.
var branchPattern = regexp.MustCompile(`^(?i)(feat|fix|docs|test|refactor|chore|style|perf)[/-](.+)$`)

// branchVerbs maps a declared branch type to the verb used in the
// generated description.
var branchVerbs = map[string]string{
	"feat":     "implement",
	"fix":      "fix",
	"docs":     "document",
	"test":     "test",
	"refactor": "refactor",
	"chore":    "maintain",
	"style":    "style",
	"perf":     "optimize",
}

// Version fields as they appear in the common manifest formats.
var versionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bversion\s*[=:]\s*["']?(\d+\.\d+\.\d+)`),
	regexp.MustCompile(`__version__\s*=\s*["']?(\d+\.\d+\.\d+)`),
	regexp.MustCompile(`"version"\s*:\s*"(\d+\.\d+\.\d+)"`),
}

var manifestNames = map[string]bool{
	"pyproject.toml": true,
	"package.json":   true,
	"cargo.toml":     true,
	"go.mod":         true,
	"setup.py":       true,
	"version":        true,
	"chart.yaml":     true,
}

// Comment markers scanned on added diff lines. Deliberately
// case-sensitive: lowercase "fix" in prose is the keyword rule's
// territory, at its lower weight.
var (
	todoPattern = regexp.MustCompile(`\bTODO[:\s]+(.+)`)
	fixPattern  = regexp.MustCompile(`\b(?:FIXME|FIX|BUG)[:\s]+(.+)`)
)

var colorTokenPattern = regexp.MustCompile(`(?i)(#[0-9a-f]{3,6}\b|\b(?:background-|border-)?color\s*[:=]|\brgba?\(|\bhsla?\()`)

var functionSignaturePattern = regexp.MustCompile(`^[+-]\s*(?:def |function |func |fn |(?:public|private|protected)\s+\w+\s+\w+\s*\()`)

var functionNamePattern = regexp.MustCompile(`(?:def|function|func|fn)\s+(\w+)`)

// highestVersion returns the largest valid version among the matches, so a
// hunk replacing 0.1.0 with 0.1.1 yields the new value.
func highestVersion(found []string) string {
	var best *goversion.Version
	var raw string
	for _, s := range found {
		v, err := goversion.NewVersion(s)
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			raw = s
		}
	}
	return raw
}
