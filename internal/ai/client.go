// Package ai wraps an OpenAI-compatible chat completion endpoint for text
// and multimodal (image + text) requests. The advisory handlers treat the
// model as an opaque external service; no retries and no client-side timeout
// are applied here.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"krishi-officer-go/internal/platform/config"
	"krishi-officer-go/internal/platform/logging"
)

// Client issues chat completion requests against the configured model.
type Client struct {
	cfg    config.AIConfig
	client *openai.Client
	logger *logging.Logger
}

// New creates a client. The API key is validated at construction so a
// misconfigured process fails at startup rather than on first request.
func New(cfg config.AIConfig, logger *logging.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientConfig),
		logger: logger,
	}, nil
}

// Complete sends a single-turn text prompt and returns the trimmed reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.ModelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
		TopP:        float32(c.cfg.TopP),
	})
	if err != nil {
		c.logger.ErrorTag("AI", "chat completion failed: %v", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// CompleteWithImage sends one multimodal message carrying the prompt text and
// a base64-encoded image as a data URL, and returns the trimmed reply.
func (c *Client) CompleteWithImage(ctx context.Context, prompt, mimeType, base64Data string) (string, error) {
	visionMessage := openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{
				Type: openai.ChatMessagePartTypeText,
				Text: prompt,
			},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: fmt.Sprintf("data:%s;base64,%s", mimeType, base64Data),
				},
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.ModelName,
		Messages:    []openai.ChatCompletionMessage{visionMessage},
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
		TopP:        float32(c.cfg.TopP),
	})
	if err != nil {
		c.logger.ErrorTag("AI", "vision completion failed: %v", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
