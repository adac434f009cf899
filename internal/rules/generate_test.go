package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazycommit/lazycommit/internal/config"
	"github.com/lazycommit/lazycommit/internal/models"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)
	return NewGenerator(cfg)
}

// End-to-end runs over realistic staged states, checking the exact
// message each one produces.
func TestGenerateScenarios(t *testing.T) {
	gen := newGenerator(t)

	tests := []struct {
		name string
		snap models.Snapshot
		want string
	}{
		{
			name: "lone readme",
			snap: models.Snapshot{
				Branch: "main",
				Files:  staged("README.md"),
				Diff: "diff --git a/README.md b/README.md\n" +
					"+++ b/README.md\n" +
					"+Document the release process.\n",
			},
			want: "docs: update documentation",
		},
		{
			name: "feature branch",
			snap: models.Snapshot{
				Branch: "feat/login-flow",
				Files:  staged("auth.js", "user.service.ts"),
				Diff:   "+function login(user, password) {\n+  return sessionFor(user);\n+}\n",
			},
			want: "feat(login-flow): implement login flow",
		},
		{
			name: "docs with version bump",
			snap: models.Snapshot{
				Branch: "main",
				Files:  staged("README.md", "pyproject.toml"),
				Diff: "+Updated usage section.\n" +
					"-version = \"0.1.0\"\n" +
					"+version = \"0.1.1\"\n",
			},
			want: "docs(docs): update documentation and bump version to 0.1.1",
		},
		{
			name: "fix branch with matching diff",
			snap: models.Snapshot{
				Branch: "fix/git-detection",
				Files:  staged("internal/services/git.go"),
				Diff:   "+\t// walk parents until a .git directory is found, fix nested repos\n",
			},
			want: "fix(git-detection): fix git detection",
		},
		{
			name: "lone opaque file",
			snap: models.Snapshot{
				Branch: "main",
				Files:  staged("data.bin"),
				Diff:   "",
			},
			want: "fix: update data.bin",
		},
		{
			name: "nothing staged",
			snap: models.Snapshot{
				Branch: "main",
			},
			want: "chore: update files",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, winner := gen.Generate(tt.snap)
			assert.Equal(t, tt.want, got)
			_ = winner
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	gen := newGenerator(t)

	snap := models.Snapshot{
		Branch: "main",
		Files:  staged("internal/auth/login.go", "internal/auth/token.go", "README.md"),
		Diff: "+func refreshToken() {\n" +
			"+// TODO: rotate keys on expiry\n" +
			"+add sliding expiration support\n",
	}
	first, firstWinner := gen.Generate(snap)
	for i := 0; i < 20; i++ {
		msg, winner := gen.Generate(snap)
		assert.Equal(t, first, msg)
		assert.Equal(t, firstWinner, winner)
	}
}

func TestGenerateAlwaysConventional(t *testing.T) {
	gen := newGenerator(t)

	snaps := []models.Snapshot{
		{Branch: "main", Files: staged("README.md")},
		{Branch: "feat/x", Files: staged("a.go")},
		{Branch: "main"},
	}
	for _, snap := range snaps {
		msg, _ := gen.Generate(snap)
		assert.Regexp(t, `^[a-z]+(\([^)]+\))?: .+$`, msg)
		assert.LessOrEqual(t, len(msg), 72)
	}
}
