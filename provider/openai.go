package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZaguanLabs/lingocache"
	"github.com/sashabaranov/go-openai"
)

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
	SourceLang  string  // Source language hint (default: "en")
}

// openAIProvider translates single strings through the chat completion API.
type openAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
	sourceLang  string
}

// NewOpenAIFunc returns a provider Func backed by OpenAI.
func NewOpenAIFunc(cfg OpenAIConfig) Func {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	sourceLang := cfg.SourceLang
	if sourceLang == "" {
		sourceLang = "en"
	}

	p := &openAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
		sourceLang:  sourceLang,
	}
	return p.translate
}

func (p *openAIProvider) translate(ctx context.Context, text, targetLang string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(targetLang)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: p.temperature,
	})
	if err != nil {
		return "", &lingocache.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &lingocache.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", &lingocache.ProviderError{
			Message:   "empty translation from OpenAI",
			Retryable: true,
		}
	}

	return translated, nil
}

func (p *openAIProvider) buildSystemPrompt(targetLang string) string {
	targetName := lingocache.GetLanguageName(targetLang)
	sourceName := lingocache.GetLanguageName(p.sourceLang)

	return fmt.Sprintf(`You are an expert native translator. Translate the user's message from %s into idiomatic %s.

- Reply with the translation only: no quotes, no commentary, no markdown.
- Avoid literal translations; the result must read naturally to a native speaker.
- Do NOT translate variables or placeholders (e.g., {{name}}, {count}, %%s, $1).
- Preserve meaningful whitespace and punctuation style of the target language.`,
		sourceName, targetName)
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := err.Error()
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(strings.ToLower(errStr), pattern) {
			return true
		}
	}
	return false
}
