package rules

import (
	"sort"
	"strings"

	"github.com/lazycommit/lazycommit/internal/models"
)

// Selector reduces a candidate list to the single winner. Selection is
// pure and deterministic: the same snapshot and candidates always yield
// the same message.
type Selector struct {
	// MergeThreshold is the minimum confidence a candidate needs to
	// absorb a version bump into its description.
	MergeThreshold float64
}

// Select picks the winning candidate. A detected version bump merges into
// the strongest other candidate when that candidate clears the threshold;
// with no candidates at all the zero-confidence fallback is returned.
func (s Selector) Select(snap models.Snapshot, candidates []models.Candidate) models.Candidate {
	ranked := make([]models.Candidate, len(candidates))
	copy(ranked, candidates)
	sortCandidates(ranked)

	if merged, ok := s.mergeVersion(ranked); ok {
		return s.resolveScope(snap, merged)
	}
	if len(ranked) == 0 {
		return models.Candidate{Type: "chore", Description: "update files"}
	}
	return s.resolveScope(snap, ranked[0])
}

// mergeVersion folds a version candidate into the best-ranked partner at
// or above the threshold. The partner keeps its type, scope and weight;
// the bump becomes a suffix of its description.
func (s Selector) mergeVersion(ranked []models.Candidate) (models.Candidate, bool) {
	versionIdx := -1
	for i, c := range ranked {
		if c.Source == models.CategoryVersion {
			versionIdx = i
			break
		}
	}
	if versionIdx < 0 {
		return models.Candidate{}, false
	}
	version := ranked[versionIdx]
	for i, c := range ranked {
		if i == versionIdx || c.Source == models.CategoryVersion {
			continue
		}
		if c.Confidence < s.MergeThreshold {
			continue
		}
		merged := c
		merged.Description = c.Description + " and bump version to " + version.Version
		merged.Version = version.Version
		return merged, true
	}
	return models.Candidate{}, false
}

// sortCandidates orders by confidence, then category priority, then
// longer (more specific) description, then lexicographically.
func sortCandidates(candidates []models.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if a.Source.Priority() != b.Source.Priority() {
			return a.Source.Priority() > b.Source.Priority()
		}
		if len(a.Description) != len(b.Description) {
			return len(a.Description) > len(b.Description)
		}
		return a.Description < b.Description
	})
}

// resolveScope fills an empty scope from the deepest directory shared by
// every staged path. Files at the repository root yield no scope.
func (s Selector) resolveScope(snap models.Snapshot, winner models.Candidate) models.Candidate {
	if winner.Scope != "" {
		return winner
	}
	winner.Scope = commonScope(snap.Paths())
	return winner
}

func commonScope(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	common := strings.Split(paths[0], "/")
	common = common[:len(common)-1]
	for _, p := range paths[1:] {
		parts := strings.Split(p, "/")
		parts = parts[:len(parts)-1]
		if len(parts) < len(common) {
			common = common[:len(parts)]
		}
		for i := range common {
			if common[i] != parts[i] {
				common = common[:i]
				break
			}
		}
	}
	if len(common) == 0 {
		return ""
	}
	return strings.ToLower(common[len(common)-1])
}
