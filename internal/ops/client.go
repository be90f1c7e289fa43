package ops

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://ops.epo.org/3.2"

	tokenPath  = "/auth/accesstoken"
	searchPath = "/rest-services/published-data/search/biblio"

	DefaultTimeout = 10 * time.Second
)

// Config carries the OPS credential pair and transport knobs. Both
// credentials may be absent; the client then operates as unconfigured and
// the service runs in demo mode.
type Config struct {
	Key        string
	Secret     string
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	cfg.Key = strings.TrimSpace(cfg.Key)
	cfg.Secret = strings.TrimSpace(cfg.Secret)
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{cfg: cfg}
}

// Configured reports whether both credentials are present.
func (c *Client) Configured() bool {
	return c.cfg.Key != "" && c.cfg.Secret != ""
}

// Token exchanges the stored credentials for a short-lived bearer token.
// Missing credentials return absence without a network call; so does any
// transport or non-2xx failure. Absence means "operate in fallback mode",
// never a fatal condition.
func (c *Client) Token(ctx context.Context) (string, bool) {
	if !c.Configured() {
		return "", false
	}
	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.cfg.BaseURL, "/")+tokenPath, body)
	if err != nil {
		return "", false
	}
	req.SetBasicAuth(c.cfg.Key, c.cfg.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		log.Printf("patent-search token_exchange_failed err=%q", err.Error())
		return "", false
	}
	defer res.Body.Close()
	blob, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.Printf("patent-search token_exchange_rejected status=%d", res.StatusCode)
		return "", false
	}
	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(blob, &parsed); err != nil || strings.TrimSpace(parsed.AccessToken) == "" {
		log.Printf("patent-search token_exchange_malformed body_len=%d", len(blob))
		return "", false
	}
	return parsed.AccessToken, true
}

// Search issues one published-data search for the 1-based inclusive record
// range [start, end] and returns the raw XML body. The caller parses and
// decides on fallback.
func (c *Client) Search(ctx context.Context, token, query string, start, end int) ([]byte, error) {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + searchPath + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("X-OPS-Range", fmt.Sprintf("%d-%d", start, end))

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	blob, _ := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("status code: %d", res.StatusCode)
	}
	return blob, nil
}
