// Package config assembles process configuration from built-in defaults,
// an optional TOML file, YOMAMA_-prefixed environment variables, and the
// ranked secrets chain. The Config value is constructed once at startup
// and passed explicitly into everything that needs it; there is no ambient
// singleton.
package config

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/secrets"
)

const envPrefix = "YOMAMA_"

// Config provides typed access to settings and secrets.
type Config struct {
	k        *koanf.Koanf
	resolver *secrets.Resolver
	log      zerolog.Logger
}

// Load builds a Config from defaults, optional TOML file, environment,
// and the standard secrets chain.
func Load(log zerolog.Logger) (*Config, error) {
	k := koanf.New(".")

	k.Load(confmap.Provider(map[string]interface{}{
		"gemini_model":      "gemini-2.5-flash-lite",
		"openai_model":      "gpt-4o",
		"llm_provider":      "gemini",
		"default_theme":     "tech",
		"default_meanness":  "5",
		"default_nerdiness": "5",
		"log_level":         "info",
		"discord_prefix":    "!",
		"matrix_homeserver": "https://matrix.org",
		"matrix_device_id":  "yo_mama_bot",
		"matrix_prefix":     "!",
		"matrix_auto_join":  "true",
	}, "."), nil)

	for _, path := range []string{"./yomama.toml", "$HOME/.yomama.toml"} {
		path = os.ExpandEnv(path)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
				log.Debug().Str("path", path).Msg("loaded config file")
				break
			}
		}
	}

	k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)

	return &Config{
		k:        k,
		resolver: secrets.NewDefaultResolver(log),
		log:      log,
	}, nil
}

// Get returns the value for key: secrets chain first, then the koanf
// layers (env override, file, defaults).
func (c *Config) Get(ctx context.Context, key string) string {
	return c.resolver.Resolve(ctx, key, secrets.Options{
		Default: c.k.String(strings.ToLower(key)),
	})
}

// GetInt parses the value for key as an integer, returning fallback on a
// missing or malformed value.
func (c *Config) GetInt(ctx context.Context, key string, fallback int) int {
	raw := c.Get(ctx, key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.log.Warn().Str("key", key).Str("value", raw).Msg("invalid integer config value")
		return fallback
	}
	return n
}

// GetBool parses the value for key as a boolean, returning fallback on a
// missing value. Accepted truthy forms: true, 1, yes, on, enabled.
func (c *Config) GetBool(ctx context.Context, key string, fallback bool) bool {
	raw := c.Get(ctx, key)
	if raw == "" {
		return fallback
	}
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "on", "enabled":
		return true
	default:
		return false
	}
}

func (c *Config) GeminiAPIKey(ctx context.Context) string { return c.Get(ctx, "GEMINI_API_KEY") }
func (c *Config) GeminiModel(ctx context.Context) string  { return c.Get(ctx, "GEMINI_MODEL") }
func (c *Config) OpenAIAPIKey(ctx context.Context) string { return c.Get(ctx, "OPENAI_API_KEY") }
func (c *Config) OpenAIModel(ctx context.Context) string  { return c.Get(ctx, "OPENAI_MODEL") }

// LLMProvider selects the generation backend: "gemini" (default) or
// "openai".
func (c *Config) LLMProvider(ctx context.Context) string {
	return strings.ToLower(c.Get(ctx, "LLM_PROVIDER"))
}

func (c *Config) DefaultTheme(ctx context.Context) string {
	return c.Get(ctx, "DEFAULT_THEME")
}

func (c *Config) DefaultMeanness(ctx context.Context) int {
	return c.GetInt(ctx, "DEFAULT_MEANNESS", 5)
}

func (c *Config) DefaultNerdiness(ctx context.Context) int {
	return c.GetInt(ctx, "DEFAULT_NERDINESS", 5)
}

func (c *Config) LogLevel(ctx context.Context) string { return c.Get(ctx, "LOG_LEVEL") }

func (c *Config) DiscordBotToken(ctx context.Context) string {
	return c.Get(ctx, "DISCORD_BOT_TOKEN")
}

func (c *Config) DiscordPrefix(ctx context.Context) string { return c.Get(ctx, "DISCORD_PREFIX") }

func (c *Config) MatrixHomeserver(ctx context.Context) string {
	return c.Get(ctx, "MATRIX_HOMESERVER")
}

func (c *Config) MatrixUserID(ctx context.Context) string { return c.Get(ctx, "MATRIX_USER_ID") }

func (c *Config) MatrixAccessToken(ctx context.Context) string {
	return c.Get(ctx, "MATRIX_ACCESS_TOKEN")
}

func (c *Config) MatrixPassword(ctx context.Context) string { return c.Get(ctx, "MATRIX_PASSWORD") }
func (c *Config) MatrixDeviceID(ctx context.Context) string { return c.Get(ctx, "MATRIX_DEVICE_ID") }
func (c *Config) MatrixPrefix(ctx context.Context) string   { return c.Get(ctx, "MATRIX_PREFIX") }

func (c *Config) MatrixAutoJoin(ctx context.Context) bool {
	return c.GetBool(ctx, "MATRIX_AUTO_JOIN", true)
}

// Validate reports the required keys that could not be resolved from any
// source. A non-empty result is the one condition that should halt the
// process at startup.
func (c *Config) Validate(ctx context.Context) []string {
	required := []string{"GEMINI_API_KEY"}
	if c.LLMProvider(ctx) == "openai" {
		required = []string{"OPENAI_API_KEY"}
	}

	var missing []string
	for _, key := range required {
		if c.resolver.Resolve(ctx, key, secrets.Options{}) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
