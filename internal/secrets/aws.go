package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/rs/zerolog"
)

// AWSSource reads a single JSON secret from AWS Secrets Manager and
// answers lookups from the decoded map. Credentials come from the default
// SDK chain (env, shared config, instance role).
type AWSSource struct {
	secretName string
	log        zerolog.Logger

	once  sync.Once
	cache map[string]string
}

// NewAWSSource creates a source backed by the named Secrets Manager secret.
func NewAWSSource(secretName string, log zerolog.Logger) *AWSSource {
	return &AWSSource{secretName: secretName, log: log}
}

func (a *AWSSource) Name() string { return "aws-secrets-manager" }

// Lookup answers from the cached secret, fetching it on first use. Secret
// payloads conventionally use lowercase keys, so both the exact key and
// its lowercase form are tried.
func (a *AWSSource) Lookup(ctx context.Context, key string) (string, bool) {
	a.once.Do(func() {
		secrets, err := a.fetch(ctx)
		if err != nil {
			a.log.Error().Err(err).Str("secret", a.secretName).Msg("failed to load AWS secret")
			return
		}
		a.log.Debug().Str("secret", a.secretName).Msg("loaded AWS secret")
		a.cache = secrets
	})

	if value, ok := a.cache[key]; ok && value != "" {
		return value, true
	}
	value, ok := a.cache[strings.ToLower(key)]
	return value, ok && value != ""
}

func (a *AWSSource) fetch(ctx context.Context) (map[string]string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := secretsmanager.NewFromConfig(cfg)
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(a.secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("getting secret value: %w", err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string payload", a.secretName)
	}

	var secrets map[string]string
	if err := json.Unmarshal([]byte(*out.SecretString), &secrets); err != nil {
		return nil, fmt.Errorf("decoding secret JSON: %w", err)
	}

	return secrets, nil
}
