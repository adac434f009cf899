package rules

import (
	"fmt"
	"strings"

	"github.com/lazycommit/lazycommit/internal/config"
	"github.com/lazycommit/lazycommit/internal/models"
	"github.com/lazycommit/lazycommit/pkg/helpers"
)

// Engine evaluates the pattern catalog against a snapshot of the staged
// state. Category toggles come from configuration; the weights and the
// catalog itself are fixed.
type Engine struct {
	rules config.RulesConfig
}

// NewEngine returns an engine bound to the given rule toggles.
func NewEngine(rules config.RulesConfig) *Engine {
	return &Engine{rules: rules}
}

// Analyze runs every enabled category and returns all candidates in
// catalog order: branch, version, comments, file types, keywords, colors,
// functions, line stats. The slice may be empty; the selector supplies the
// fallback.
func (e *Engine) Analyze(snap models.Snapshot) []models.Candidate {
	var candidates []models.Candidate
	if e.rules.BranchAnalysis {
		if c, ok := e.branchCandidate(snap.Branch); ok {
			candidates = append(candidates, c)
		}
	}
	if c, ok := e.versionCandidate(snap); ok {
		candidates = append(candidates, c)
	}
	candidates = append(candidates, e.commentCandidates(snap.Diff)...)
	candidates = append(candidates, e.fileTypeCandidates(snap.Files)...)
	candidates = append(candidates, e.keywordCandidates(snap.Diff)...)
	if c, ok := e.colorCandidate(snap); ok {
		candidates = append(candidates, c)
	}
	if c, ok := e.functionCandidate(snap.Diff); ok {
		candidates = append(candidates, c)
	}
	if c, ok := e.statsCandidate(snap.Files); ok {
		candidates = append(candidates, c)
	}
	return candidates
}

// branchCandidate parses a <type>/<scope> branch name into a candidate
// that carries the author's declared intent.
func (e *Engine) branchCandidate(branch string) (models.Candidate, bool) {
	m := branchPattern.FindStringSubmatch(branch)
	if m == nil {
		return models.Candidate{}, false
	}
	commitType := strings.ToLower(m[1])
	scope := strings.ToLower(m[2])
	words := strings.NewReplacer("-", " ", "_", " ").Replace(scope)
	verb := branchVerbs[commitType]
	desc := strings.TrimSpace(verb + " " + words)
	return models.Candidate{
		Type:        commitType,
		Scope:       scope,
		Description: desc,
		Confidence:  confidenceBranch,
		Source:      models.CategoryBranch,
	}, true
}

// versionCandidate fires when a staged manifest gains a version field.
// The extracted value is kept on the candidate so the selector can merge
// it into a stronger partner.
func (e *Engine) versionCandidate(snap models.Snapshot) (models.Candidate, bool) {
	if !snapshotTouchesManifest(snap.Files) {
		return models.Candidate{}, false
	}
	var found []string
	for _, line := range strings.Split(snap.Diff, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		for _, pat := range versionPatterns {
			if m := pat.FindStringSubmatch(line); m != nil {
				found = append(found, m[1])
			}
		}
	}
	version := highestVersion(found)
	if version == "" {
		return models.Candidate{}, false
	}
	return models.Candidate{
		Type:        "chore",
		Scope:       "version",
		Description: "bump version to " + version,
		Confidence:  confidenceVersion,
		Source:      models.CategoryVersion,
		Version:     version,
	}, true
}

func snapshotTouchesManifest(files []models.StagedChange) bool {
	for _, f := range files {
		base := strings.ToLower(f.Path)
		if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
			base = base[idx+1:]
		}
		if manifestNames[base] || strings.HasSuffix(base, ".gemspec") {
			return true
		}
	}
	return false
}

// commentCandidates scans added lines for TODO and FIX/BUG notes. At most
// two candidates per kind are emitted to keep noisy diffs in check.
func (e *Engine) commentCandidates(diff string) []models.Candidate {
	var candidates []models.Candidate
	var todos, fixes int
	for _, line := range strings.Split(diff, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		if e.rules.EnableFixes && fixes < 2 {
			if m := fixPattern.FindStringSubmatch(line); m != nil {
				candidates = append(candidates, models.Candidate{
					Type:        "fix",
					Description: "fix " + cleanCommentText(m[1]),
					Confidence:  confidenceFixNote,
					Source:      models.CategoryComment,
				})
				fixes++
				continue
			}
		}
		if e.rules.EnableTodos && todos < 2 {
			if m := todoPattern.FindStringSubmatch(line); m != nil {
				candidates = append(candidates, models.Candidate{
					Type:        "feat",
					Description: "implement " + cleanCommentText(m[1]),
					Confidence:  confidenceTodoNote,
					Source:      models.CategoryComment,
				})
				todos++
			}
		}
	}
	return candidates
}

func cleanCommentText(text string) string {
	text = strings.TrimRight(strings.TrimSpace(text), "*/")
	text = strings.TrimSpace(text)
	return helpers.TruncateString(strings.ToLower(text), 50)
}

// fileTypeCandidates emits one candidate per file-type category that
// matches at least one staged path. The category's scope hint is attached
// only when the staged set is mixed, so a lone README still formats
// without a scope.
func (e *Engine) fileTypeCandidates(files []models.StagedChange) []models.Candidate {
	var candidates []models.Candidate
	for _, cat := range fileTypeCatalog {
		matched := 0
		for _, f := range files {
			if cat.matches(f.Path) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		scope := ""
		if matched < len(files) {
			scope = cat.name
		}
		candidates = append(candidates, models.Candidate{
			Type:        cat.commitType,
			Scope:       scope,
			Description: cat.description,
			Confidence:  cat.confidence,
			Source:      models.CategoryFileType,
		})
	}
	return candidates
}

func (e *Engine) keywordCandidates(diff string) []models.Candidate {
	var candidates []models.Candidate
	for _, group := range keywordCatalog {
		if !group.pattern.MatchString(diff) {
			continue
		}
		candidates = append(candidates, models.Candidate{
			Type:        group.commitType,
			Description: group.description,
			Confidence:  group.confidence,
			Source:      models.CategoryKeyword,
		})
	}
	return candidates
}

// colorCandidate fires when color tokens change in stylesheet or UI
// files. A ui-flavored branch turns the candidate into a fix; otherwise
// it is a plain style tweak.
func (e *Engine) colorCandidate(snap models.Snapshot) (models.Candidate, bool) {
	if !colorContext(snap.Files) || !colorTokenPattern.MatchString(snap.Diff) {
		return models.Candidate{}, false
	}
	branch := strings.ToLower(snap.Branch)
	if strings.Contains(branch, "ui") || strings.Contains(branch, "tui") || strings.Contains(branch, "theme") {
		return models.Candidate{
			Type:        "fix",
			Scope:       "ui-colors",
			Description: "fix color scheme",
			Confidence:  confidenceColor,
			Source:      models.CategoryColor,
		}, true
	}
	return models.Candidate{
		Type:        "style",
		Scope:       "colors",
		Description: "adjust color values",
		Confidence:  confidenceColor,
		Source:      models.CategoryColor,
	}, true
}

func colorContext(files []models.StagedChange) bool {
	for _, f := range files {
		lower := strings.ToLower(f.Path)
		for _, suffix := range []string{".css", ".scss", ".sass", ".less"} {
			if strings.HasSuffix(lower, suffix) {
				return true
			}
		}
		for _, hint := range []string{"ui", "theme", "tui", "style"} {
			if strings.Contains(lower, hint) {
				return true
			}
		}
	}
	return false
}

// functionCandidate counts added versus removed signature lines across
// the diff. A strong add bias reads as new functionality, a strong
// removal bias as a cleanup, anything in between as a behavior change.
func (e *Engine) functionCandidate(diff string) (models.Candidate, bool) {
	var added, removed int
	names := map[string]int{}
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		if !functionSignaturePattern.MatchString(line) {
			continue
		}
		if line[0] == '+' {
			added++
		} else {
			removed++
		}
		if m := functionNamePattern.FindStringSubmatch(line); m != nil {
			names[m[1]]++
		}
	}
	if added == 0 && removed == 0 {
		return models.Candidate{}, false
	}
	commitType := "fix"
	desc := "update function behavior"
	switch {
	case added > 2*removed:
		commitType = "feat"
		desc = "add new functions"
	case removed > 2*added:
		commitType = "refactor"
		desc = "remove unused functions"
	}
	if name := dominantName(names); name != "" {
		desc = fmt.Sprintf("%s (%s)", desc, name)
	}
	return models.Candidate{
		Type:        commitType,
		Description: desc,
		Confidence:  confidenceFunction,
		Source:      models.CategoryFunction,
	}, true
}

// statsCandidate reads intent from the aggregate line counts as a weak,
// last-resort signal: heavy additions look like new functionality, heavy
// deletions like a cleanup, and a lone touched file becomes a generic
// per-file tweak.
func (e *Engine) statsCandidate(files []models.StagedChange) (models.Candidate, bool) {
	var added, removed int
	for _, f := range files {
		added += f.Added
		removed += f.Removed
	}
	switch {
	case added > removed*3 && added > statsBulkLines:
		return models.Candidate{
			Type:        "feat",
			Description: "add new features",
			Confidence:  confidenceStatsBulk,
			Source:      models.CategoryStats,
		}, true
	case removed > added*3 && removed > statsBulkLines:
		return models.Candidate{
			Type:        "refactor",
			Description: "remove unused code",
			Confidence:  confidenceStatsBulk,
			Source:      models.CategoryStats,
		}, true
	case len(files) == 1:
		base := files[0].Path
		if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
			base = base[idx+1:]
		}
		return models.Candidate{
			Type:        "fix",
			Description: "update " + base,
			Confidence:  confidenceStatsOne,
			Source:      models.CategoryStats,
		}, true
	}
	return models.Candidate{}, false
}

// dominantName picks the most frequently touched function name, breaking
// ties lexicographically so repeated runs agree.
func dominantName(names map[string]int) string {
	best := ""
	count := 0
	for name, n := range names {
		if n > count || (n == count && (best == "" || name < best)) {
			best = name
			count = n
		}
	}
	return best
}
