package config

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T) *Config {
	t.Helper()
	// Keep the secrets chain down to env + defaults.
	t.Setenv("DOPPLER_TOKEN", "")
	t.Setenv("SECRETS_MANAGER", "")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)
	return cfg
}

func TestConfig_Defaults(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("DEFAULT_THEME", "")
	cfg := loadTestConfig(t)
	ctx := context.Background()

	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GeminiModel(ctx))
	assert.Equal(t, "tech", cfg.DefaultTheme(ctx))
	assert.Equal(t, 5, cfg.DefaultMeanness(ctx))
	assert.Equal(t, 5, cfg.DefaultNerdiness(ctx))
	assert.Equal(t, "gemini", cfg.LLMProvider(ctx))
	assert.Equal(t, "!", cfg.DiscordPrefix(ctx))
	assert.True(t, cfg.MatrixAutoJoin(ctx))
}

func TestConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("DEFAULT_MEANNESS", "8")
	cfg := loadTestConfig(t)
	ctx := context.Background()

	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel(ctx))
	assert.Equal(t, 8, cfg.DefaultMeanness(ctx))
}

func TestConfig_PrefixedEnvOverridesDefaults(t *testing.T) {
	t.Setenv("DEFAULT_THEME", "")
	t.Setenv("YOMAMA_DEFAULT_THEME", "radio")
	cfg := loadTestConfig(t)

	assert.Equal(t, "radio", cfg.DefaultTheme(context.Background()))
}

func TestConfig_GetInt_Malformed(t *testing.T) {
	t.Setenv("DEFAULT_NERDINESS", "lots")
	cfg := loadTestConfig(t)

	assert.Equal(t, 5, cfg.DefaultNerdiness(context.Background()))
}

func TestConfig_GetBool(t *testing.T) {
	cfg := loadTestConfig(t)
	ctx := context.Background()

	for _, truthy := range []string{"true", "1", "yes", "on", "enabled", "TRUE"} {
		t.Setenv("MATRIX_AUTO_JOIN", truthy)
		assert.True(t, cfg.MatrixAutoJoin(ctx), "value %q should be truthy", truthy)
	}

	t.Setenv("MATRIX_AUTO_JOIN", "false")
	assert.False(t, cfg.MatrixAutoJoin(ctx))
}

func TestConfig_Validate(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LLM_PROVIDER", "")
	cfg := loadTestConfig(t)
	ctx := context.Background()

	missing := cfg.Validate(ctx)
	assert.Equal(t, []string{"GEMINI_API_KEY"}, missing)

	t.Setenv("GEMINI_API_KEY", "abc123")
	cfg = loadTestConfig(t)
	assert.Empty(t, cfg.Validate(ctx))
}

func TestConfig_Validate_OpenAIProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")
	cfg := loadTestConfig(t)

	missing := cfg.Validate(context.Background())
	assert.Equal(t, []string{"OPENAI_API_KEY"}, missing)
}
