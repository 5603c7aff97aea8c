package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/providers"
	"google.golang.org/genai"
)

type client struct {
	genaiClient *genai.Client
}

func NewGeminiClient(apiKey string) (providers.Client, error) {
	ctx := context.Background()
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &client{
		genaiClient: genaiClient,
	}, nil
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	model := config.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	var parts []*genai.Part
	if config.SystemPrompt != "" {
		parts = append(parts, &genai.Part{
			Text: config.SystemPrompt,
		})
	}
	if len(config.Instructions) > 0 {
		parts = append(parts, &genai.Part{
			Text: providers.FormatInstructions(config.Instructions),
		})
	}

	var generateConfig *genai.GenerateContentConfig
	if len(parts) > 0 {
		generateConfig = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: parts,
				Role:  "system",
			},
		}
	}

	result, err := c.genaiClient.Models.GenerateContent(
		ctx,
		model,
		genai.Text(prompt),
		generateConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	responseText := providers.StripCodeFences(result.Text())
	if responseText == "" {
		return nil, fmt.Errorf("no text content returned")
	}

	return &providers.CompletionResponse{
		ID:       fmt.Sprintf("gemini-%d", time.Now().UnixNano()),
		Model:    model,
		Response: responseText,
	}, nil
}
