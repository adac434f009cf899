package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lazycommit/lazycommit/internal/config"
	"github.com/lazycommit/lazycommit/internal/models"
	"github.com/lazycommit/lazycommit/pkg/helpers"
)

// Provider generates a refined commit message from a prompt. Implementations
// wrap one LLM backend each.
type Provider interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
}

// NewProvider builds the provider named in the AI configuration. The "none"
// provider disables refinement and returns nil.
func NewProvider(cfg config.AIConfig, logger *zap.Logger) (Provider, error) {
	switch cfg.Provider {
	case "", "none":
		return nil, nil
	case "ollama":
		return NewOllamaProvider(cfg, logger)
	case "openai":
		return NewOpenAIProvider(cfg), nil
	case "anthropic":
		return NewAnthropicProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

// Refiner wraps a provider with the timeout and fallback semantics of the
// refinement step: it can only ever improve on the heuristic message, never
// lose it.
type Refiner struct {
	provider Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewRefiner returns a refiner over the given provider. A nil provider
// yields a refiner that passes messages through unchanged.
func NewRefiner(provider Provider, cfg config.AIConfig, logger *zap.Logger) *Refiner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refiner{
		provider: provider,
		timeout:  time.Duration(cfg.TimeoutSecs) * time.Second,
		logger:   logger,
	}
}

const refineSystemPrompt = "You write git commit messages in the Conventional Commits style. " +
	"Respond with exactly one line of the form type(scope): description or type: description. " +
	"Use a type from: feat, fix, docs, test, refactor, chore, style, perf. " +
	"Keep the line under 72 characters. No explanation, no markdown, no quotes."

// Refine asks the provider for a better message. On timeout, transport
// failure or an unusable response it logs the cause and returns the
// heuristic message untouched.
func (r *Refiner) Refine(ctx context.Context, snap models.Snapshot, message string) string {
	if r.provider == nil {
		return message
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.provider.Complete(ctx, refineSystemPrompt, refineUserPrompt(snap, message))
	if err != nil {
		r.logger.Warn("refinement failed, keeping heuristic message",
			zap.String("provider", r.provider.Name()),
			zap.Error(err))
		return message
	}
	refined := helpers.SanitizeCommitMessage(raw)
	if refined == "" {
		r.logger.Warn("refinement returned empty response, keeping heuristic message",
			zap.String("provider", r.provider.Name()))
		return message
	}
	return refined
}

func refineUserPrompt(snap models.Snapshot, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Branch: %s\n", snap.Branch)
	b.WriteString("Staged files:\n")
	for _, f := range snap.Files {
		fmt.Fprintf(&b, "  %s (%s, +%d/-%d)\n", f.Path, f.Status, f.Added, f.Removed)
	}
	fmt.Fprintf(&b, "Draft message: %s\n", message)
	if snap.Diff != "" {
		b.WriteString("Diff:\n")
		b.WriteString(helpers.TruncateString(snap.Diff, 8000))
		b.WriteString("\n")
	}
	b.WriteString("Improve the draft message if you can; otherwise repeat it.")
	return b.String()
}
