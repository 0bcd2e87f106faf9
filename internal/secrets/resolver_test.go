package secrets

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a deterministic in-memory Source. A nil values map models
// an unreachable backend: every lookup misses.
type fakeSource struct {
	name   string
	values map[string]string
}

func (f fakeSource) Name() string { return f.name }

func (f fakeSource) Lookup(_ context.Context, key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok && v != ""
}

func TestResolver_EnvOnly(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key-123")

	r := NewResolver(zerolog.Nop(), EnvSource{})
	got := r.Resolve(context.Background(), "GEMINI_API_KEY", Options{})

	assert.Equal(t, "env-key-123", got)
}

func TestResolver_HigherPrioritySourceWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	hosted := fakeSource{name: "doppler", values: map[string]string{
		"GEMINI_API_KEY": "hosted-key",
	}}

	r := NewResolver(zerolog.Nop(), hosted, EnvSource{})
	got := r.Resolve(context.Background(), "GEMINI_API_KEY", Options{})

	assert.Equal(t, "hosted-key", got, "hosted secrets must shadow the environment")
}

func TestResolver_FallsThroughUnavailableSources(t *testing.T) {
	dead := fakeSource{name: "dead"}
	empty := fakeSource{name: "empty", values: map[string]string{"BOT_TOKEN": ""}}
	live := fakeSource{name: "live", values: map[string]string{"BOT_TOKEN": "abc"}}

	r := NewResolver(zerolog.Nop(), dead, empty, live)
	got := r.Resolve(context.Background(), "bot_token", Options{})

	assert.Equal(t, "abc", got)
}

func TestResolver_PrefixNaming(t *testing.T) {
	src := fakeSource{name: "env-like", values: map[string]string{
		"DISCORD_BOT_TOKEN": "discord-token",
		"BOT_TOKEN":         "bare-token",
	}}

	r := NewResolver(zerolog.Nop(), src)

	assert.Equal(t, "discord-token",
		r.Resolve(context.Background(), "bot_token", Options{Prefix: "discord"}))
	assert.Equal(t, "bare-token",
		r.Resolve(context.Background(), "bot_token", Options{}))
}

func TestResolver_DefaultWhenMissing(t *testing.T) {
	r := NewResolver(zerolog.Nop(), fakeSource{name: "empty"})

	got := r.Resolve(context.Background(), "NOPE", Options{Default: "fallback"})
	assert.Equal(t, "fallback", got)

	got = r.Resolve(context.Background(), "NOPE", Options{})
	assert.Empty(t, got)
}

func TestResolver_KeyUppercased(t *testing.T) {
	t.Setenv("MATRIX_HOMESERVER", "https://matrix.example.org")

	r := NewResolver(zerolog.Nop(), EnvSource{})
	got := r.Resolve(context.Background(), "matrix_homeserver", Options{})

	assert.Equal(t, "https://matrix.example.org", got)
}

func TestNewDefaultResolver_EnvChainAlwaysPresent(t *testing.T) {
	t.Setenv("DOPPLER_TOKEN", "")
	t.Setenv("SECRETS_MANAGER", "")
	t.Setenv("SOME_VALUE", "hello")

	r := NewDefaultResolver(zerolog.Nop())
	require.NotNil(t, r)

	got := r.Resolve(context.Background(), "SOME_VALUE", Options{})
	assert.Equal(t, "hello", got)
}
