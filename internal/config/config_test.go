package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	commit := cfg.Commit()
	assert.True(t, commit.Conventional)
	assert.Equal(t, 72, commit.MaxLength)
	assert.Equal(t, ScopeLowercase, commit.ScopeStyle)
	assert.True(t, commit.IncludeScope)

	rules := cfg.Rules()
	assert.True(t, rules.EnableTodos)
	assert.True(t, rules.EnableFixes)
	assert.True(t, rules.BranchAnalysis)
	assert.InDelta(t, 0.8, rules.MergeThreshold, 1e-9)

	ai := cfg.AI()
	assert.Equal(t, "none", ai.Provider)
	assert.Equal(t, "gpt-4", ai.Model)
	assert.Equal(t, 30, ai.TimeoutSecs)
	assert.False(t, cfg.AIEnabled())

	assert.True(t, cfg.UI().Interactive)
	assert.Equal(t, "C", cfg.LazyGit().DefaultKey)
	assert.Equal(t, "files", cfg.LazyGit().DefaultContext)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[ai]
provider = "Ollama"
model = "llama3"

[commit]
max_length = 50
scope_style = "kebab-case"

[rules]
enable_todos = false
merge_threshold = 0.9
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	// Provider names are normalized to lowercase.
	assert.Equal(t, "ollama", cfg.AI().Provider)
	assert.True(t, cfg.AIEnabled())
	assert.Equal(t, 50, cfg.Commit().MaxLength)
	assert.Equal(t, ScopeKebabCase, cfg.Commit().ScopeStyle)
	assert.False(t, cfg.Rules().EnableTodos)
	assert.InDelta(t, 0.9, cfg.Rules().MergeThreshold, 1e-9)

	// Untouched sections keep their defaults.
	assert.True(t, cfg.Commit().Conventional)
	assert.True(t, cfg.Rules().EnableFixes)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[commit\nbroken"), 0o644))

	_, err := LoadFrom(dir)
	require.Error(t, err)
}

func TestInvalidValuesDegradeToDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
[commit]
max_length = 3
scope_style = "shouting"

[rules]
merge_threshold = 7.5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.Commit().MaxLength)
	assert.Equal(t, ScopeLowercase, cfg.Commit().ScopeStyle)
	assert.InDelta(t, 0.8, cfg.Rules().MergeThreshold, 1e-9)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("LAZYCOMMIT_AI_PROVIDER", "anthropic")
	t.Setenv("LAZYCOMMIT_COMMIT_MAX_LENGTH", "60")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.AI().Provider)
	assert.Equal(t, 60, cfg.Commit().MaxLength)
}
