package secrets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	vault "github.com/hashicorp/vault/api"
	"github.com/rs/zerolog"
)

// VaultSource reads a KV v2 secret from HashiCorp Vault and answers
// lookups from the decoded map.
type VaultSource struct {
	addr  string
	token string
	path  string
	mount string
	log   zerolog.Logger

	once  sync.Once
	cache map[string]string
}

// NewVaultSource creates a source backed by the KV v2 secret at path under
// the default "secret" mount.
func NewVaultSource(addr, token, path string, log zerolog.Logger) *VaultSource {
	return &VaultSource{
		addr:  addr,
		token: token,
		path:  path,
		mount: "secret",
		log:   log,
	}
}

func (v *VaultSource) Name() string { return "vault" }

// Lookup answers from the cached secret, fetching it on first use. Both
// the exact key and its lowercase form are tried.
func (v *VaultSource) Lookup(ctx context.Context, key string) (string, bool) {
	v.once.Do(func() {
		secrets, err := v.fetch(ctx)
		if err != nil {
			v.log.Error().Err(err).Str("path", v.path).Msg("failed to load Vault secret")
			return
		}
		v.log.Debug().Str("path", v.path).Msg("loaded Vault secret")
		v.cache = secrets
	})

	if value, ok := v.cache[key]; ok && value != "" {
		return value, true
	}
	value, ok := v.cache[strings.ToLower(key)]
	return value, ok && value != ""
}

func (v *VaultSource) fetch(ctx context.Context) (map[string]string, error) {
	if v.addr == "" || v.token == "" {
		return nil, fmt.Errorf("SECRETS_VAULT_URL or SECRETS_VAULT_TOKEN not configured")
	}
	if v.path == "" {
		return nil, fmt.Errorf("SECRETS_VAULT_PATH not configured")
	}

	cfg := vault.DefaultConfig()
	cfg.Address = v.addr

	client, err := vault.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating Vault client: %w", err)
	}
	client.SetToken(v.token)

	secret, err := client.KVv2(v.mount).Get(ctx, v.path)
	if err != nil {
		return nil, fmt.Errorf("reading Vault secret: %w", err)
	}

	secrets := make(map[string]string, len(secret.Data))
	for k, raw := range secret.Data {
		if s, ok := raw.(string); ok {
			secrets[k] = s
		}
	}

	return secrets, nil
}
