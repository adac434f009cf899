package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazycommit/lazycommit/internal/config"
	"github.com/lazycommit/lazycommit/internal/models"
)

func defaultCommitConfig() config.CommitConfig {
	return config.CommitConfig{
		Conventional: true,
		MaxLength:    72,
		ScopeStyle:   config.ScopeLowercase,
		IncludeScope: true,
	}
}

func TestFormatConventional(t *testing.T) {
	f := NewFormatter(defaultCommitConfig())

	tests := []struct {
		name string
		cand models.Candidate
		want string
	}{
		{
			"type and description",
			models.Candidate{Type: "docs", Description: "update documentation"},
			"docs: update documentation",
		},
		{
			"with scope",
			models.Candidate{Type: "feat", Scope: "login-flow", Description: "implement login flow"},
			"feat(login-flow): implement login flow",
		},
		{
			"empty description falls back",
			models.Candidate{Type: "chore"},
			"chore: update files",
		},
		{
			"whitespace collapsed",
			models.Candidate{Type: "fix", Description: "fix  the\nparser"},
			"fix: fix the parser",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.cand))
		})
	}
}

func TestFormatTruncatesDescriptionOnly(t *testing.T) {
	cfg := defaultCommitConfig()
	cfg.MaxLength = 40
	f := NewFormatter(cfg)

	got := f.Format(models.Candidate{
		Type:        "feat",
		Scope:       "auth",
		Description: "implement a very long oauth handshake with token refresh",
	})
	assert.LessOrEqual(t, len(got), 40)
	assert.True(t, strings.HasPrefix(got, "feat(auth): "))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestFormatClampsOversizedPrefix(t *testing.T) {
	cfg := defaultCommitConfig()
	cfg.MaxLength = 30
	f := NewFormatter(cfg)

	got := f.Format(models.Candidate{
		Type:        "feat",
		Scope:       "extremely-long-branch-scope-name-that-dwarfs-the-limit",
		Description: "implement the thing",
	})
	assert.LessOrEqual(t, len(got), 30)
	assert.True(t, strings.HasPrefix(got, "feat("))
}

func TestFormatScopeStyles(t *testing.T) {
	tests := []struct {
		style config.ScopeStyle
		scope string
		want  string
	}{
		{config.ScopeLowercase, "Login-Flow", "feat(login-flow): add login"},
		{config.ScopeKebabCase, "login_flow", "feat(login-flow): add login"},
		{config.ScopeCamelCase, "login-flow", "feat(loginFlow): add login"},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			cfg := defaultCommitConfig()
			cfg.ScopeStyle = tt.style
			f := NewFormatter(cfg)
			got := f.Format(models.Candidate{Type: "feat", Scope: tt.scope, Description: "add login"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatScopeDisabled(t *testing.T) {
	cfg := defaultCommitConfig()
	cfg.IncludeScope = false
	f := NewFormatter(cfg)

	got := f.Format(models.Candidate{Type: "feat", Scope: "auth", Description: "add login"})
	assert.Equal(t, "feat: add login", got)
}

func TestFormatPlainStyle(t *testing.T) {
	cfg := defaultCommitConfig()
	cfg.Conventional = false
	f := NewFormatter(cfg)

	got := f.Format(models.Candidate{Type: "docs", Scope: "docs", Description: "update documentation"})
	assert.Equal(t, "update documentation", got)
}
