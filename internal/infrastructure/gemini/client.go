package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdugdh24/healthlog-backend/internal/config"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyResponse = errors.New("no content generated")

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(cfg.Temperature)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// GenerateText sends a single-turn prompt and returns the concatenated text
// parts of the first candidate.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := candidateText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	// Models sometimes wrap HTML answers in a markdown fence.
	text := strings.TrimSpace(sb.String())
	text = strings.TrimPrefix(text, "```html")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
