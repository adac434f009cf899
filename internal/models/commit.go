package models

// ChangeStatus describes how a staged file was changed
type ChangeStatus string

const (
	StatusAdded    ChangeStatus = "added"
	StatusModified ChangeStatus = "modified"
	StatusDeleted  ChangeStatus = "deleted"
	StatusRenamed  ChangeStatus = "renamed"
)

// StagedChange represents a single file staged for the next commit
type StagedChange struct {
	Path    string       `json:"path"`
	Status  ChangeStatus `json:"status"`
	Added   int          `json:"added"`
	Removed int          `json:"removed"`
}

// Snapshot is the read-only view of the repository state for one analysis run
type Snapshot struct {
	Branch string         `json:"branch"`
	Files  []StagedChange `json:"files"`
	Diff   string         `json:"diff"`
}

// CategoryID identifies the pattern category that produced a candidate
type CategoryID string

const (
	CategoryBranch   CategoryID = "branch"
	CategoryVersion  CategoryID = "version"
	CategoryComment  CategoryID = "comment"
	CategoryFileType CategoryID = "filetype"
	CategoryKeyword  CategoryID = "keyword"
	CategoryColor    CategoryID = "color"
	CategoryFunction CategoryID = "function"
	CategoryStats    CategoryID = "stats"
)

// Priority returns the fixed tie-break rank of a category, higher wins
func (c CategoryID) Priority() int {
	switch c {
	case CategoryBranch:
		return 70
	case CategoryVersion:
		return 60
	case CategoryComment:
		return 50
	case CategoryFileType:
		return 40
	case CategoryKeyword:
		return 30
	case CategoryColor:
		return 20
	case CategoryFunction:
		return 10
	case CategoryStats:
		return 5
	default:
		return 0
	}
}

// Candidate is a scored commit-type guess produced by one matching rule
type Candidate struct {
	Type        string     `json:"type"`
	Scope       string     `json:"scope,omitempty"`
	Description string     `json:"description"`
	Confidence  float64    `json:"confidence"`
	Source      CategoryID `json:"source"`

	// Version carries the extracted version string for version-bump
	// candidates; empty for every other category.
	Version string `json:"version,omitempty"`
}

// IsEmpty reports whether the snapshot has nothing staged
func (s Snapshot) IsEmpty() bool {
	return len(s.Files) == 0
}

// Paths returns the staged file paths in order
func (s Snapshot) Paths() []string {
	paths := make([]string, 0, len(s.Files))
	for _, f := range s.Files {
		paths = append(paths, f.Path)
	}
	return paths
}
