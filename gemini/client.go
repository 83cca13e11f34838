// Package gemini is the model transport: one prompt in, one reply out,
// via the Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generation parameters match the original deployment; kept modest on
// purpose since every turn pays for them.
const (
	maxOutputTokens = 1000
	temperature     = 0.7
)

// Client invokes a Gemini model for a single prompt/response exchange.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini client for the given model id.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Client{client: gc, model: model}, nil
}

// Invoke sends the prompt and returns the model's full text reply.
func (c *Client) Invoke(ctx context.Context, promptText string) (string, error) {
	temp := float32(temperature)
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: maxOutputTokens,
		Temperature:     &temp,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(promptText), config)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}
