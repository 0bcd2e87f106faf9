// Package secrets resolves named configuration values by walking a ranked
// chain of credential sources: Doppler, AWS Secrets Manager, HashiCorp
// Vault, then local environment variables. The ranking is fixed; deployed
// configurations depend on it. Every source is independently fault
// tolerant: an unreachable or unauthorized backend yields no value and the
// chain falls through to the next source.
package secrets

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Source is a single credential backend. Lookup receives the canonical
// uppercase key (e.g. "DISCORD_BOT_TOKEN") and reports whether a non-empty
// value was found. Implementations must never fail hard: backend errors
// are logged and reported as "not found".
type Source interface {
	Name() string
	Lookup(ctx context.Context, key string) (string, bool)
}

// Options modify a single resolution.
type Options struct {
	// Prefix, when non-empty, namespaces the key as PREFIX_KEY.
	Prefix string

	// Default is returned when no source yields a value.
	Default string
}

// Resolver walks sources in priority order and returns the first hit.
type Resolver struct {
	sources []Source
	log     zerolog.Logger
}

// NewResolver creates a resolver over the given sources, highest priority
// first.
func NewResolver(log zerolog.Logger, sources ...Source) *Resolver {
	return &Resolver{sources: sources, log: log}
}

// NewDefaultResolver builds the standard ranked chain from the process
// environment: Doppler when DOPPLER_TOKEN is set, then AWS Secrets Manager
// or Vault depending on SECRETS_MANAGER, then plain environment variables.
func NewDefaultResolver(log zerolog.Logger) *Resolver {
	var sources []Source

	if token := os.Getenv("DOPPLER_TOKEN"); token != "" {
		project := envOr("DOPPLER_PROJECT", "yo-mama-bot")
		config := envOr("DOPPLER_CONFIG", "dev")
		sources = append(sources, NewDopplerSource(token, project, config, log))
		log.Info().Str("project", project).Str("config", config).Msg("Doppler secrets enabled")
	}

	switch strings.ToLower(os.Getenv("SECRETS_MANAGER")) {
	case "aws":
		if name := os.Getenv("SECRETS_AWS_SECRET_NAME"); name != "" {
			sources = append(sources, NewAWSSource(name, log))
			log.Info().Str("secret", name).Msg("AWS Secrets Manager enabled")
		} else {
			log.Warn().Msg("SECRETS_MANAGER=aws but SECRETS_AWS_SECRET_NAME is not set")
		}
	case "vault":
		sources = append(sources, NewVaultSource(
			os.Getenv("SECRETS_VAULT_URL"),
			os.Getenv("SECRETS_VAULT_TOKEN"),
			os.Getenv("SECRETS_VAULT_PATH"),
			log,
		))
		log.Info().Msg("HashiCorp Vault enabled")
	}

	sources = append(sources, EnvSource{})

	return NewResolver(log, sources...)
}

// Resolve returns the first non-empty value for key across the ranked
// sources, or the default. It never fails; a missing key simply resolves
// to opts.Default.
func (r *Resolver) Resolve(ctx context.Context, key string, opts Options) string {
	envKey := strings.ToUpper(key)
	if opts.Prefix != "" {
		envKey = strings.ToUpper(opts.Prefix) + "_" + envKey
	}

	for _, src := range r.sources {
		if value, ok := src.Lookup(ctx, envKey); ok && value != "" {
			r.log.Debug().Str("key", envKey).Str("source", src.Name()).Msg("resolved secret")
			return value
		}
	}

	if opts.Default == "" {
		r.log.Debug().Str("key", envKey).Msg("secret not found in any source")
	}
	return opts.Default
}

// EnvSource reads plain process environment variables. It sits at the
// bottom of the chain, just above caller defaults.
type EnvSource struct{}

func (EnvSource) Name() string { return "env" }

func (EnvSource) Lookup(_ context.Context, key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	return value, ok && value != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
