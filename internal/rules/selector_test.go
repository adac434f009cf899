package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazycommit/lazycommit/internal/models"
)

func TestSelectFallback(t *testing.T) {
	sel := Selector{MergeThreshold: 0.8}

	winner := sel.Select(models.Snapshot{}, nil)
	assert.Equal(t, "chore", winner.Type)
	assert.Equal(t, "update files", winner.Description)
	assert.Zero(t, winner.Confidence)
	assert.Empty(t, winner.Scope)
}

func TestSelectHighestConfidenceWins(t *testing.T) {
	sel := Selector{MergeThreshold: 0.8}

	winner := sel.Select(models.Snapshot{}, []models.Candidate{
		{Type: "fix", Description: "fix issues", Confidence: 0.8, Source: models.CategoryKeyword},
		{Type: "docs", Description: "update documentation", Confidence: 0.9, Source: models.CategoryFileType},
	})
	assert.Equal(t, "docs", winner.Type)
}

func TestSelectPriorityBreaksTies(t *testing.T) {
	sel := Selector{MergeThreshold: 0.8}

	// Equal confidence: the comment category outranks the keyword one.
	winner := sel.Select(models.Snapshot{}, []models.Candidate{
		{Type: "fix", Description: "fix issues", Confidence: 0.8, Source: models.CategoryKeyword},
		{Type: "fix", Description: "fix the thing", Confidence: 0.8, Source: models.CategoryComment},
	})
	assert.Equal(t, models.CategoryComment, winner.Source)
}

func TestSelectMergesVersionBump(t *testing.T) {
	sel := Selector{MergeThreshold: 0.8}

	winner := sel.Select(models.Snapshot{}, []models.Candidate{
		{Type: "chore", Scope: "version", Description: "bump version to 0.1.1", Confidence: 0.95, Source: models.CategoryVersion, Version: "0.1.1"},
		{Type: "docs", Scope: "docs", Description: "update documentation", Confidence: 0.9, Source: models.CategoryFileType},
		{Type: "chore", Scope: "config", Description: "update configuration", Confidence: 0.85, Source: models.CategoryFileType},
	})
	assert.Equal(t, "docs", winner.Type)
	assert.Equal(t, "docs", winner.Scope)
	assert.Equal(t, "update documentation and bump version to 0.1.1", winner.Description)
	assert.InDelta(t, 0.9, winner.Confidence, 1e-9)
}

func TestSelectVersionStandsAloneBelowThreshold(t *testing.T) {
	sel := Selector{MergeThreshold: 0.8}

	winner := sel.Select(models.Snapshot{}, []models.Candidate{
		{Type: "chore", Scope: "version", Description: "bump version to 2.0.0", Confidence: 0.95, Source: models.CategoryVersion, Version: "2.0.0"},
		{Type: "fix", Description: "update function behavior", Confidence: 0.6, Source: models.CategoryFunction},
	})
	assert.Equal(t, models.CategoryVersion, winner.Source)
	assert.Equal(t, "bump version to 2.0.0", winner.Description)
}

func TestSelectResolvesScopeFromCommonPath(t *testing.T) {
	sel := Selector{MergeThreshold: 0.8}

	snap := models.Snapshot{Files: staged(
		"internal/auth/login.go",
		"internal/auth/token.go",
	)}
	winner := sel.Select(snap, []models.Candidate{
		{Type: "fix", Description: "fix issues", Confidence: 0.8, Source: models.CategoryKeyword},
	})
	assert.Equal(t, "auth", winner.Scope)
}

func TestCommonScope(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{"no paths", nil, ""},
		{"root file", []string{"README.md"}, ""},
		{"single nested", []string{"internal/auth/login.go"}, "auth"},
		{"shared directory", []string{"internal/auth/a.go", "internal/auth/b.go"}, "auth"},
		{"diverging leaves", []string{"internal/auth/a.go", "internal/rules/b.go"}, "internal"},
		{"root file breaks scope", []string{"internal/auth/a.go", "README.md"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commonScope(tt.paths))
		})
	}
}
