package moderation

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type OpenAIClassifier struct {
	client *openai.Client
}

func NewOpenAIClassifier(apiKey, baseURL string) *OpenAIClassifier {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIClassifier{client: openai.NewClientWithConfig(config)}
}

func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (Verdict, error) {
	resp, err := c.client.Moderations(ctx, openai.ModerationRequest{Input: text})
	if err != nil {
		return Verdict{}, fmt.Errorf("failed to create moderation: %w", err)
	}
	if len(resp.Results) == 0 {
		return Verdict{}, fmt.Errorf("moderation returned no results")
	}
	return Verdict{Flagged: resp.Results[0].Flagged}, nil
}
