package joke

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func testGenerator(llm LLM) *Generator {
	return NewGenerator(llm, LLMConfig{Model: "test-model"}, zerolog.Nop())
}

func TestGenerator_Generate_Success(t *testing.T) {
	mockLLM := NewMockLLM("  Yo mama so slow, DNS gave up resolving her.  \n")
	gen := testGenerator(mockLLM)

	joke, err := gen.Generate(context.Background(), Params{Theme: ThemeNetworking, Meanness: 6, Nerdiness: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if joke.Text != "Yo mama so slow, DNS gave up resolving her." {
		t.Errorf("response not trimmed: %q", joke.Text)
	}
	if joke.Theme != ThemeNetworking {
		t.Errorf("expected theme networking, got %s", joke.Theme)
	}
	if joke.Fallback {
		t.Error("successful generation marked as fallback")
	}
	if joke.Model != "test-model" {
		t.Errorf("expected model test-model, got %s", joke.Model)
	}
	if joke.GeneratedAt.IsZero() {
		t.Error("generated timestamp is zero")
	}

	if mockLLM.LastPrompt == "" {
		t.Fatal("mock LLM did not receive a prompt")
	}
	if !strings.Contains(mockLLM.LastPrompt, "networking") {
		t.Error("prompt does not mention the requested theme")
	}
}

func TestGenerator_Generate_UnknownThemeSubstituted(t *testing.T) {
	mockLLM := NewMockLLM("joke")
	gen := testGenerator(mockLLM)

	joke, err := gen.Generate(context.Background(), Params{Theme: "quantum-basketweaving", Meanness: 5, Nerdiness: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ValidTheme(joke.Theme) {
		t.Errorf("unknown theme not replaced with catalog member, got %q", joke.Theme)
	}
}

func TestGenerator_Generate_ThemeCaseInsensitive(t *testing.T) {
	mockLLM := NewMockLLM("joke")
	gen := testGenerator(mockLLM)

	joke, err := gen.Generate(context.Background(), Params{Theme: "LINUX", Meanness: 5, Nerdiness: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if joke.Theme != ThemeLinux {
		t.Errorf("expected linux, got %s", joke.Theme)
	}
}

func TestGenerator_Generate_ClampsExtremeLevels(t *testing.T) {
	mockLLM := NewMockLLM("joke")
	gen := testGenerator(mockLLM)

	for _, level := range []int{-100, 0, 11, 1000} {
		joke, err := gen.Generate(context.Background(), Params{Theme: ThemeTech, Meanness: level, Nerdiness: level})
		if err != nil {
			t.Fatalf("level %d raised: %v", level, err)
		}
		if joke.Meanness < 1 || joke.Meanness > 10 {
			t.Errorf("meanness %d not clamped, got %d", level, joke.Meanness)
		}
		if joke.Nerdiness < 1 || joke.Nerdiness > 10 {
			t.Errorf("nerdiness %d not clamped, got %d", level, joke.Nerdiness)
		}
	}
}

func TestGenerator_Generate_ThrottleFallback(t *testing.T) {
	throttleErrs := []error{
		errors.New("googleapi: Error 429: resource exhausted"),
		errors.New("QUOTA exceeded for project"),
		errors.New("you hit a Rate Limit, slow down"),
		fmt.Errorf("%w: upstream said no", ErrRateLimited),
	}

	for _, cause := range throttleErrs {
		gen := testGenerator(NewMockLLMWithError(cause))

		joke, err := gen.Generate(context.Background(), Params{Theme: ThemeCloud, Meanness: 5, Nerdiness: 5})
		if err != nil {
			t.Fatalf("throttle failure propagated: %v", err)
		}
		if !joke.Fallback {
			t.Error("throttle result not marked as fallback")
		}

		found := false
		for _, fixed := range throttleJokes {
			if joke.Text == fixed {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("cause %q did not yield a throttle joke, got %q", cause, joke.Text)
		}
	}
}

func TestGenerator_Generate_ThemeFallback(t *testing.T) {
	gen := testGenerator(NewMockLLMWithError(errors.New("connection reset by peer")))

	joke, err := gen.Generate(context.Background(), Params{Theme: ThemeLinux, Meanness: 5, Nerdiness: 5})
	if err != nil {
		t.Fatalf("remote failure propagated: %v", err)
	}
	if joke.Text != fallbackJokes[ThemeLinux] {
		t.Errorf("expected linux fallback, got %q", joke.Text)
	}
	if !joke.Fallback {
		t.Error("fallback result not marked as fallback")
	}
}

func TestGenerator_Generate_GenericFallback(t *testing.T) {
	// networking has no dedicated fallback entry.
	gen := testGenerator(NewMockLLMWithError(errors.New("connection reset by peer")))

	joke, err := gen.Generate(context.Background(), Params{Theme: ThemeNetworking, Meanness: 5, Nerdiness: 5})
	if err != nil {
		t.Fatalf("remote failure propagated: %v", err)
	}
	if joke.Text != genericFallback {
		t.Errorf("expected generic fallback, got %q", joke.Text)
	}
}

func TestGenerator_Generate_NilLLM(t *testing.T) {
	gen := NewGenerator(nil, DefaultLLMConfig(), zerolog.Nop())

	_, err := gen.Generate(context.Background(), DefaultParams())
	if err == nil {
		t.Fatal("expected error for nil LLM")
	}
	if !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerator_GenerateBatch_AllFailuresStillFiveJokes(t *testing.T) {
	gen := testGenerator(NewMockLLMWithError(errors.New("upstream exploded")))

	jokes := gen.GenerateBatch(context.Background(), 5, Params{Theme: ThemeTech, Meanness: 5, Nerdiness: 5})
	if len(jokes) != 5 {
		t.Fatalf("expected 5 fallback jokes, got %d", len(jokes))
	}
	for i, j := range jokes {
		if !j.Fallback {
			t.Errorf("joke %d not marked as fallback", i)
		}
		if j.Text == "" {
			t.Errorf("joke %d is empty", i)
		}
	}
}

func TestGenerator_GenerateBatch_CountsCalls(t *testing.T) {
	mockLLM := NewMockLLM("joke")
	gen := testGenerator(mockLLM)

	jokes := gen.GenerateBatch(context.Background(), 3, DefaultParams())
	if len(jokes) != 3 {
		t.Fatalf("expected 3 jokes, got %d", len(jokes))
	}
	if mockLLM.Calls != 3 {
		t.Errorf("expected 3 LLM calls, got %d", mockLLM.Calls)
	}
}

func TestGenerator_RandomJoke_ModerateRanges(t *testing.T) {
	mockLLM := NewMockLLM("joke")
	gen := testGenerator(mockLLM)

	for i := 0; i < 50; i++ {
		joke, err := gen.RandomJoke(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if joke.Meanness < 3 || joke.Meanness > 7 {
			t.Fatalf("random meanness %d outside [3,7]", joke.Meanness)
		}
		if joke.Nerdiness < 3 || joke.Nerdiness > 7 {
			t.Fatalf("random nerdiness %d outside [3,7]", joke.Nerdiness)
		}
		if !ValidTheme(joke.Theme) {
			t.Fatalf("random theme %q not in catalog", joke.Theme)
		}
	}
}

func TestIsThrottleError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("HTTP 429 Too Many Requests"), true},
		{errors.New("Quota Exceeded"), true},
		{errors.New("RATE LIMIT reached"), true},
		{fmt.Errorf("wrapped: %w", ErrRateLimited), true},
		{errors.New("dial tcp: connection refused"), false},
		{ErrLLMFailed, false},
	}
	for _, tc := range cases {
		if got := isThrottleError(tc.err); got != tc.want {
			t.Errorf("isThrottleError(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
