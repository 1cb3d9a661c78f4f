package llm

import (
	"context"
	"fmt"
	"time"

	"contentgate/internal/asset"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openAISystemPrompt = "You are a marketing copywriter for SEBI-registered financial advisors in India. " +
	"You rewrite content to fix specific weaknesses while keeping facts, tone and channel fit."

// OpenAIGenerator implements Generator over the chat-completions API.
type OpenAIGenerator struct {
	client        *openai.Client
	model         openai.ChatModel
	timeout       time.Duration
	promptBuilder PromptBuilder
}

func NewOpenAIGenerator(apiKey, model string, timeout time.Duration) *OpenAIGenerator {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	return &OpenAIGenerator{
		client:  &client,
		model:   model,
		timeout: timeout,
	}
}

func (g *OpenAIGenerator) Regenerate(ctx context.Context, a asset.Asset, directives []string) (asset.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openAISystemPrompt),
			openai.UserMessage(g.promptBuilder.BuildRegeneratePrompt(a, directives)),
		},
	})
	if err != nil {
		return asset.Asset{}, fmt.Errorf("openai regeneration failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return asset.Asset{}, fmt.Errorf("openai returned empty content")
	}
	return replaceText(a, resp.Choices[0].Message.Content), nil
}
