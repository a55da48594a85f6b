package services

import (
	"context"
	"fmt"
	"log"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"

	"github.com/headhunt/headhunt-helper/internal/config"
)

// Fixed sampling parameters for every extraction call.
const (
	completionMaxTokens   = 1000
	completionTemperature = 0.3
)

// Completer is the single-shot completion seam the extractor depends on.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LLMService holds the Anthropic client for the process lifetime so it
// is not recreated per request.
type LLMService struct {
	client llms.Model
	model  string
}

func NewLLMService(cfg *config.Config) (*LLMService, error) {
	client, err := anthropic.New(
		anthropic.WithToken(cfg.AnthropicAPIKey),
		anthropic.WithModel(cfg.AnthropicModel),
	)
	if err != nil {
		return nil, fmt.Errorf("create anthropic client: %w", err)
	}
	return &LLMService{client: client, model: cfg.AnthropicModel}, nil
}

// Complete issues exactly one synchronous request. Transport errors,
// non-success statuses and response bodies missing the expected content
// all collapse into ErrBackendUnavailable; the caller gets one attempt
// only.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	log.Printf("🤖 Sending extraction request to model %s...", s.model)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, prompt,
		llms.WithMaxTokens(completionMaxTokens),
		llms.WithTemperature(completionTemperature),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return resp, nil
}
