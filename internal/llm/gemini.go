package llm

import (
	"context"
	"fmt"
	"time"

	"contentgate/internal/asset"

	"google.golang.org/genai"
)

// GeminiGenerator implements Generator using Gemini text generation.
type GeminiGenerator struct {
	client        *genai.Client
	model         string
	timeout       time.Duration
	promptBuilder PromptBuilder
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	return &GeminiGenerator{
		client:  client,
		model:   modelName,
		timeout: timeout,
	}, nil
}

func (g *GeminiGenerator) Regenerate(ctx context.Context, a asset.Asset, directives []string) (asset.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := g.promptBuilder.BuildRegeneratePrompt(a, directives)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return asset.Asset{}, fmt.Errorf("gemini regeneration failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return asset.Asset{}, fmt.Errorf("gemini returned empty content")
	}
	return replaceText(a, text), nil
}
