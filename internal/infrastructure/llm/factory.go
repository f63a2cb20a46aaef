package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/careerforge/resume-assistant/internal/core/ports"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config selects and configures one backend.
type Config struct {
	Provider      string
	OllamaURL     string
	OpenAIBaseURL string
	OpenAIAPIKey  string
	GeminiAPIKey  string
	Timeout       time.Duration
}

// New builds the TextGenerator named by cfg.Provider.
func New(ctx context.Context, cfg Config) (ports.TextGenerator, error) {
	switch cfg.Provider {
	case "", ProviderOllama:
		return NewOllamaClient(cfg.OllamaURL, cfg.Timeout), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.GeminiAPIKey)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
