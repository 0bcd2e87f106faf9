package joke

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM is a deterministic LLM implementation for testing.
// It returns predictable responses based on prompt content.
type MockLLM struct {
	// Response is the fixed text returned by Generate.
	// If empty, a default response is derived from the prompt.
	Response string

	// Error, if set, is returned by Generate instead of a response.
	Error error

	// LastPrompt stores the most recent prompt passed to Generate.
	LastPrompt string

	// LastModel stores the most recent model passed to Generate.
	LastModel string

	// Calls counts how many times Generate has been invoked.
	Calls int
}

// NewMockLLM creates a mock LLM with the given fixed response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

// NewMockLLMWithError creates a mock LLM that always returns an error.
func NewMockLLMWithError(err error) *MockLLM {
	return &MockLLM{Error: err}
}

// Generate returns the configured response or derives a deterministic one.
func (m *MockLLM) Generate(ctx context.Context, model, prompt string) (string, error) {
	m.LastPrompt = prompt
	m.LastModel = model
	m.Calls++

	if m.Error != nil {
		return "", m.Error
	}

	if m.Response != "" {
		return m.Response, nil
	}

	return generateMockResponse(prompt), nil
}

// generateMockResponse creates a predictable joke from the prompt by
// echoing back the theme it finds in the THEME header.
func generateMockResponse(prompt string) string {
	theme := "tech"
	if idx := strings.Index(prompt, "THEME: "); idx >= 0 {
		remainder := prompt[idx+len("THEME: "):]
		if end := strings.IndexAny(remainder, " \n"); end > 0 {
			theme = remainder[:end]
		}
	}
	return fmt.Sprintf("Yo mama so predictable, even a mock %s joke saw her coming.", theme)
}
