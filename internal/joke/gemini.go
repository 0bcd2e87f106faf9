package joke

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiLLM implements the LLM interface using Google's Gemini API.
type GeminiLLM struct {
	client *genai.Client
}

// NewGeminiLLM creates a Gemini-backed LLM implementation.
// Returns an error if the API key is missing or the client cannot be built.
func NewGeminiLLM(ctx context.Context, apiKey string) (*GeminiLLM, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing Gemini API key", ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &GeminiLLM{client: client}, nil
}

// Generate sends the prompt to Gemini and returns the generated text.
func (g *GeminiLLM) Generate(ctx context.Context, model, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", ErrInvalidConfig)
	}
	if model == "" {
		return "", fmt.Errorf("%w: missing model name", ErrInvalidConfig)
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", wrapGeminiError(err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrLLMFailed)
	}

	return text, nil
}

// wrapGeminiError converts provider errors into the package's sentinel
// taxonomy. Quota exhaustion and HTTP 429 map to ErrRateLimited.
func wrapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 || strings.EqualFold(apiErr.Status, "RESOURCE_EXHAUSTED") {
			return fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrLLMFailed, err)
}
