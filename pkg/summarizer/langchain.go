package summarizer

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// LangChain adapts any langchaingo model to the Summarizer interface,
// covering OpenAI, Ollama, local models and everything else langchaingo
// speaks.
type LangChain struct {
	model       llms.Model
	maxTokens   int
	temperature float64
}

// LangChainOption configures a LangChain summarizer.
type LangChainOption func(*LangChain)

// WithMaxTokens caps the generated summary length. Default 1024.
func WithMaxTokens(n int) LangChainOption {
	return func(l *LangChain) {
		l.maxTokens = n
	}
}

// WithTemperature sets the sampling temperature. Default 0.3.
func WithTemperature(t float64) LangChainOption {
	return func(l *LangChain) {
		l.temperature = t
	}
}

// NewLangChain creates a summarizer backed by the given model.
func NewLangChain(model llms.Model, opts ...LangChainOption) (*LangChain, error) {
	if model == nil {
		return nil, fmt.Errorf("model cannot be nil")
	}

	l := &LangChain{
		model:       model,
		maxTokens:   1024,
		temperature: 0.3,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Summarize condenses the cluster contents into one consolidated string.
func (l *LangChain) Summarize(ctx context.Context, contents []string) (string, error) {
	if len(contents) == 0 {
		return "", fmt.Errorf("no contents to summarize")
	}

	prompt := systemPrompt + "\n\n" + buildPrompt(contents)
	summary, err := llms.GenerateFromSinglePrompt(ctx, l.model, prompt,
		llms.WithMaxTokens(l.maxTokens),
		llms.WithTemperature(l.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}
	return summary, nil
}
