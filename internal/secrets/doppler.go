package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const dopplerDownloadURL = "https://api.doppler.com/v3/configs/config/secrets/download"

// DopplerSource fetches the full secret set for a Doppler project/config
// pair once per process and answers lookups from the cached map. Doppler
// has no official Go SDK; the download endpoint returns a flat JSON object
// of KEY -> value.
type DopplerSource struct {
	token   string
	project string
	config  string
	client  *http.Client
	log     zerolog.Logger

	once  sync.Once
	cache map[string]string
}

// NewDopplerSource creates a Doppler-backed source for the given service
// token, project, and config.
func NewDopplerSource(token, project, config string, log zerolog.Logger) *DopplerSource {
	return &DopplerSource{
		token:   token,
		project: project,
		config:  config,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

func (d *DopplerSource) Name() string { return "doppler" }

// Lookup answers from the cached secret set, fetching it on first use.
func (d *DopplerSource) Lookup(ctx context.Context, key string) (string, bool) {
	d.once.Do(func() {
		secrets, err := d.fetch(ctx)
		if err != nil {
			d.log.Error().Err(err).Msg("failed to fetch Doppler secrets")
			return
		}
		d.log.Info().Int("count", len(secrets)).Msg("Doppler connection successful")
		d.cache = secrets
	})

	value, ok := d.cache[key]
	return value, ok && value != ""
}

func (d *DopplerSource) fetch(ctx context.Context) (map[string]string, error) {
	endpoint := fmt.Sprintf("%s?%s", dopplerDownloadURL, url.Values{
		"project": {d.project},
		"config":  {d.config},
		"format":  {"json"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building Doppler request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+d.token)
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling Doppler: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Doppler returned status %d", resp.StatusCode)
	}

	var secrets map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&secrets); err != nil {
		return nil, fmt.Errorf("decoding Doppler response: %w", err)
	}

	return secrets, nil
}
