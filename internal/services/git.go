// Package services holds the side-effectful parts of lazycommit: reading
// repository state, committing, and talking to LLM providers.
package services

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	"go.uber.org/zap"

	"github.com/lazycommit/lazycommit/internal/models"
)

// maxDiffBytes caps the staged diff passed to the analyzer and the LLM.
// Anything beyond this adds noise, not signal.
const maxDiffBytes = 1 << 20

const diffTruncatedMarker = "\n... (diff truncated)\n"

// Inspector reads the staged state of a repository. Structural facts come
// from go-git; diff text comes from the git binary, which renders hunks
// exactly the way users see them.
type Inspector struct {
	repoPath string
	logger   *zap.Logger
}

// NewInspector opens the repository containing path, walking up to find
// the .git directory the way git itself does.
func NewInspector(path string, logger *zap.Logger) (*Inspector, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve worktree: %v", err)
	}
	return &Inspector{repoPath: wt.Filesystem.Root(), logger: logger}, nil
}

// Snapshot gathers the branch name, the staged file list with line deltas,
// and the staged diff text.
func (i *Inspector) Snapshot() (models.Snapshot, error) {
	files, err := i.stagedFiles()
	if err != nil {
		return models.Snapshot{}, err
	}
	branch, err := i.currentBranch()
	if err != nil {
		return models.Snapshot{}, err
	}
	diff, err := i.stagedDiff()
	if err != nil {
		return models.Snapshot{}, err
	}
	snap := models.Snapshot{Branch: branch, Files: files, Diff: diff}
	i.logger.Debug("captured snapshot",
		zap.String("branch", branch),
		zap.Int("files", len(files)),
		zap.Int("diff_bytes", len(diff)))
	return snap, nil
}

// currentBranch returns the short branch name, or "" on a detached HEAD.
func (i *Inspector) currentBranch() (string, error) {
	repo, err := git.PlainOpen(i.repoPath)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %v", err)
	}
	head, err := repo.Head()
	if err != nil {
		// An unborn branch (fresh repo with staged files) still has a
		// symbolic HEAD we can read from disk.
		return i.unbornBranch(), nil
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

func (i *Inspector) unbornBranch() string {
	data, err := os.ReadFile(filepath.Join(i.repoPath, ".git", "HEAD"))
	if err != nil {
		return ""
	}
	ref := strings.TrimSpace(string(data))
	if name, ok := strings.CutPrefix(ref, "ref: refs/heads/"); ok {
		return name
	}
	return ""
}

// stagedFiles lists files staged for commit with their line deltas, using
// `git diff --cached` in the two machine formats.
func (i *Inspector) stagedFiles() ([]models.StagedChange, error) {
	statusOut, err := i.runGit("diff", "--cached", "--name-status")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %v", err)
	}
	deltas, err := i.lineDeltas()
	if err != nil {
		return nil, err
	}

	var files []models.StagedChange
	for _, line := range strings.Split(statusOut, "\n") {
		if line == "" {
			continue
		}
		// Renames and copies carry two paths; the new one is last.
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		change := models.StagedChange{
			Path:   parts[len(parts)-1],
			Status: statusFromLetter(parts[0]),
		}
		if d, ok := deltas[change.Path]; ok {
			change.Added, change.Removed = d.added, d.removed
		}
		files = append(files, change)
	}
	return files, nil
}

type lineDelta struct{ added, removed int }

func (i *Inspector) lineDeltas() (map[string]lineDelta, error) {
	out, err := i.runGit("diff", "--cached", "--numstat")
	if err != nil {
		return nil, fmt.Errorf("failed to read line counts: %v", err)
	}
	deltas := map[string]lineDelta{}
	for _, line := range strings.Split(out, "\n") {
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		// Binary files report "-" for both columns.
		added, _ := strconv.Atoi(parts[0])
		removed, _ := strconv.Atoi(parts[1])
		deltas[numstatPath(parts[2])] = lineDelta{added: added, removed: removed}
	}
	return deltas, nil
}

var numstatRenamePattern = regexp.MustCompile(`\{([^{}]*) => ([^{}]*)\}`)

// numstatPath resolves the path field of a numstat line to the new path.
// Renames come out as "old.txt => new.txt" or with the shared prefix
// factored out, "dir/{old.txt => new.txt}".
func numstatPath(field string) string {
	if strings.Contains(field, "{") {
		field = numstatRenamePattern.ReplaceAllString(field, "$2")
		// An empty side of the braces leaves a doubled or leading slash.
		field = strings.ReplaceAll(field, "//", "/")
		return strings.TrimPrefix(field, "/")
	}
	if _, after, ok := strings.Cut(field, " => "); ok {
		return after
	}
	return field
}

func statusFromLetter(letter string) models.ChangeStatus {
	switch {
	case strings.HasPrefix(letter, "A"):
		return models.StatusAdded
	case strings.HasPrefix(letter, "D"):
		return models.StatusDeleted
	case strings.HasPrefix(letter, "R"):
		return models.StatusRenamed
	default:
		return models.StatusModified
	}
}

// stagedDiff returns the staged diff text, truncated at maxDiffBytes.
func (i *Inspector) stagedDiff() (string, error) {
	out, err := i.runGit("diff", "--cached", "--no-color")
	if err != nil {
		return "", fmt.Errorf("failed to read staged diff: %v", err)
	}
	if len(out) > maxDiffBytes {
		i.logger.Debug("truncating oversized diff", zap.Int("bytes", len(out)))
		out = out[:maxDiffBytes] + diffTruncatedMarker
	}
	return out, nil
}

// Commit records the staged changes with the given message.
func (i *Inspector) Commit(message string) error {
	if _, err := i.runGit("commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %v", err)
	}
	return nil
}

func (i *Inspector) runGit(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = i.repoPath
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", args[0], msg)
	}
	return stdout.String(), nil
}
