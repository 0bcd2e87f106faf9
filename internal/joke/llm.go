// Package joke generates "Yo Mama" jokes by composing a natural-language
// prompt from a theme and two intensity dials, then delegating text
// generation to an LLM. It defines a provider-agnostic LLM interface with
// concrete Gemini and OpenAI implementations plus a deterministic mock for
// testing. Remote failures never escape the generator: they degrade into
// pre-authored fallback jokes.
package joke

import (
	"context"
	"errors"
)

var (
	ErrLLMFailed     = errors.New("LLM request failed")
	ErrInvalidConfig = errors.New("invalid LLM configuration")

	// ErrRateLimited marks quota and throttling failures. Clients wrap
	// their provider's 429/quota errors with this sentinel so the
	// generator can classify structurally instead of sniffing error text.
	ErrRateLimited = errors.New("LLM rate limited")
)

// LLM defines the interface for interacting with language models.
// Implementations must be stateless and thread-safe.
type LLM interface {
	// Generate produces text from a prompt using the given model.
	// Returns the generated text or an error if generation fails.
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// LLMConfig holds common configuration options for LLM providers.
type LLMConfig struct {
	// Model specifies the model identifier (e.g., "gemini-2.5-flash-lite")
	Model string

	// APIKey is the authentication key for the provider
	APIKey string
}

// DefaultLLMConfig returns sensible defaults for joke generation.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Model: "gemini-2.5-flash-lite",
	}
}
