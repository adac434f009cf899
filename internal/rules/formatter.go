package rules

import (
	"strings"

	"github.com/lazycommit/lazycommit/internal/config"
	"github.com/lazycommit/lazycommit/internal/models"
	"github.com/lazycommit/lazycommit/pkg/helpers"
)

// Formatter renders a winning candidate as a commit message string
// according to the commit section of the configuration.
type Formatter struct {
	cfg config.CommitConfig
}

// NewFormatter returns a formatter bound to the given commit settings.
func NewFormatter(cfg config.CommitConfig) *Formatter {
	return &Formatter{cfg: cfg}
}

// Format produces the final single-line message, never longer than the
// configured maximum. When the line runs over, the description is
// shortened first; a prefix that alone exceeds the limit (a pathological
// scope) gets clamped too.
func (f *Formatter) Format(c models.Candidate) string {
	desc := helpers.CollapseWhitespace(c.Description)
	if desc == "" {
		desc = "update files"
	}
	if !f.cfg.Conventional {
		return helpers.TruncateString(desc, f.cfg.MaxLength)
	}
	prefix := c.Type
	if f.cfg.IncludeScope && c.Scope != "" {
		prefix += "(" + f.formatScope(c.Scope) + ")"
	}
	prefix += ": "
	budget := f.cfg.MaxLength - len(prefix)
	if budget < 4 {
		budget = 4
	}
	return helpers.TruncateString(prefix+helpers.TruncateString(desc, budget), f.cfg.MaxLength)
}

func (f *Formatter) formatScope(scope string) string {
	scope = helpers.CollapseWhitespace(strings.TrimSpace(scope))
	switch f.cfg.ScopeStyle {
	case config.ScopeKebabCase:
		scope = strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(scope))
	case config.ScopeCamelCase:
		scope = camelCase(scope)
	default:
		scope = strings.ToLower(strings.ReplaceAll(scope, " ", "-"))
	}
	return scope
}

func camelCase(scope string) string {
	parts := strings.FieldsFunc(strings.ToLower(scope), func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
