package rules

import (
	"github.com/lazycommit/lazycommit/internal/config"
	"github.com/lazycommit/lazycommit/internal/models"
)

// Generator runs the full heuristic pipeline: analyze, select, format.
type Generator struct {
	engine    *Engine
	selector  Selector
	formatter *Formatter
}

// NewGenerator wires the pipeline from configuration.
func NewGenerator(cfg *config.Config) *Generator {
	rules := cfg.Rules()
	return &Generator{
		engine:    NewEngine(rules),
		selector:  Selector{MergeThreshold: rules.MergeThreshold},
		formatter: NewFormatter(cfg.Commit()),
	}
}

// Generate produces the commit message and the winning candidate for a
// snapshot of the staged state.
func (g *Generator) Generate(snap models.Snapshot) (string, models.Candidate) {
	candidates := g.engine.Analyze(snap)
	winner := g.selector.Select(snap, candidates)
	return g.formatter.Format(winner), winner
}
