package llm

import (
	"context"
	"fmt"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry and
// event logging. An empty provider name returns (nil, nil): the caller runs
// without a qualitative evaluator and grading uses the fallback heuristic.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "":
		return nil, nil
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	return WithRetry(WithLogging(base, eventRepo), cfg.Retry), nil
}
