package joke

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrGenerationFailed = errors.New("joke generation failed")
)

// Joke is the result of a single generation: either model output or a
// pre-authored fallback. Jokes are transient values, never stored.
type Joke struct {
	// Text is the joke itself, whitespace-trimmed.
	Text string `json:"text"`

	// Theme is the resolved theme the joke was generated for.
	Theme Theme `json:"theme"`

	// Meanness and Nerdiness are the clamped levels used.
	Meanness  int `json:"meanness"`
	Nerdiness int `json:"nerdiness"`

	// Model is the model identifier the request was sent to.
	Model string `json:"model"`

	// Fallback reports whether Text is a canned substitute because the
	// remote call failed.
	Fallback bool `json:"fallback"`

	// GeneratedAt is when this joke was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// Generator produces jokes by composing prompts and invoking an LLM.
// It holds no mutable state besides its RNG and is safe for concurrent use.
type Generator struct {
	llm    LLM
	config LLMConfig
	log    zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a joke generator with the given LLM implementation.
func NewGenerator(llm LLM, config LLMConfig, log zerolog.Logger) *Generator {
	if config.Model == "" {
		config.Model = DefaultLLMConfig().Model
	}
	return &Generator{
		llm:    llm,
		config: config,
		log:    log,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// normalize resolves the theme and clamps intensity levels. Unknown themes
// are logged and replaced with a random catalog member; out-of-range levels
// are clamped silently.
func (g *Generator) normalize(p Params) Params {
	p.Theme = Theme(strings.ToLower(strings.TrimSpace(string(p.Theme))))
	if p.Theme != "" && !ValidTheme(p.Theme) {
		g.log.Warn().Str("theme", string(p.Theme)).Msg("unknown theme, using random")
		p.Theme = ""
	}
	if p.Theme == "" {
		p.Theme = themeCatalog[g.intn(len(themeCatalog))]
	}
	p.Meanness = clampLevel(p.Meanness)
	p.Nerdiness = clampLevel(p.Nerdiness)
	return p
}

// Generate composes a prompt for p and asks the LLM for a joke. Remote
// failures are absorbed: throttling yields one of the themed rate-limit
// jokes, anything else yields the per-theme (or generic) fallback. The
// error return is non-nil only when the generator is misconfigured.
func (g *Generator) Generate(ctx context.Context, p Params) (*Joke, error) {
	if g.llm == nil {
		return nil, fmt.Errorf("%w: LLM is required", ErrGenerationFailed)
	}

	p = g.normalize(p)
	prompt := ComposePrompt(p)

	text, err := g.llm.Generate(ctx, g.config.Model, prompt)
	if err != nil {
		g.log.Error().Err(err).Str("theme", string(p.Theme)).Msg("failed to generate joke")
		return g.fallback(p, err), nil
	}

	g.log.Info().
		Str("theme", string(p.Theme)).
		Int("meanness", p.Meanness).
		Int("nerdiness", p.Nerdiness).
		Msg("generated joke")

	return &Joke{
		Text:        strings.TrimSpace(text),
		Theme:       p.Theme,
		Meanness:    p.Meanness,
		Nerdiness:   p.Nerdiness,
		Model:       g.config.Model,
		GeneratedAt: time.Now(),
	}, nil
}

// fallback builds the canned substitute for a failed generation.
func (g *Generator) fallback(p Params, cause error) *Joke {
	var text string
	if isThrottleError(cause) {
		text = throttleJokes[g.intn(len(throttleJokes))]
	} else {
		text = fallbackFor(p.Theme)
	}
	return &Joke{
		Text:        text,
		Theme:       p.Theme,
		Meanness:    p.Meanness,
		Nerdiness:   p.Nerdiness,
		Model:       g.config.Model,
		Fallback:    true,
		GeneratedAt: time.Now(),
	}
}

// GenerateBatch generates count jokes sequentially. Individual failures
// are logged and skipped, so the result may be shorter than count; the
// call itself never fails.
func (g *Generator) GenerateBatch(ctx context.Context, count int, p Params) []*Joke {
	jokes := make([]*Joke, 0, count)
	for i := 0; i < count; i++ {
		j, err := g.Generate(ctx, p)
		if err != nil {
			g.log.Error().Err(err).Int("index", i+1).Int("count", count).Msg("skipping failed joke")
			continue
		}
		jokes = append(jokes, j)
	}
	return jokes
}

// RandomJoke generates a joke with a random theme and moderate random
// intensity levels (both drawn from [3,7]).
func (g *Generator) RandomJoke(ctx context.Context) (*Joke, error) {
	p := Params{
		Theme:     themeCatalog[g.intn(len(themeCatalog))],
		Meanness:  3 + g.intn(5),
		Nerdiness: 3 + g.intn(5),
	}
	return g.Generate(ctx, p)
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}
