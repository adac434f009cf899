package services

import (
	"context"
	"fmt"
	"strings"

	ollama "github.com/ollama/ollama/api"
	"go.uber.org/zap"

	"github.com/lazycommit/lazycommit/internal/config"
)

// OllamaProvider talks to a local Ollama server. The endpoint comes from
// OLLAMA_HOST, matching the ollama CLI.
type OllamaProvider struct {
	client      *ollama.Client
	model       string
	temperature float64
	logger      *zap.Logger
}

// NewOllamaProvider builds the provider from the environment.
func NewOllamaProvider(cfg config.AIConfig, logger *zap.Logger) (*OllamaProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model must be specified")
	}
	client, err := ollama.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %v", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OllamaProvider{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      logger,
	}, nil
}

func (p *OllamaProvider) Name() string { return "ollama" }

// Complete sends one chat exchange and accumulates the streamed reply.
func (p *OllamaProvider) Complete(ctx context.Context, system, user string) (string, error) {
	messages := []ollama.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
	var response strings.Builder
	respFunc := func(resp ollama.ChatResponse) error {
		response.WriteString(resp.Message.Content)
		return nil
	}
	err := p.client.Chat(
		ctx,
		&ollama.ChatRequest{
			Model:    p.model,
			Messages: messages,
			Options:  map[string]any{"temperature": p.temperature},
		},
		respFunc,
	)
	if err != nil {
		return "", fmt.Errorf("ollama chat failed: %v", err)
	}
	p.logger.Debug("ollama response", zap.Int("bytes", response.Len()))
	return response.String(), nil
}
