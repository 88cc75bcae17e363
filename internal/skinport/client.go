// Package skinport fetches the account transaction history from the Skinport
// REST API.
package skinport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/skinledger/skinledger/internal/logging"
	"github.com/skinledger/skinledger/internal/model"
)

const (
	DefaultBaseURL     = "https://api.skinport.com"
	transactionsPath   = "/v1/account/transactions"
	defaultTimeout     = 30 * time.Second
	maxErrorBodyLength = 512
)

// Credentials is the client id and secret issued on the account page.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// AuthorizationHeader returns the Basic value for the Authorization header.
func (c Credentials) AuthorizationHeader() string {
	raw := c.ClientID + ":" + c.ClientSecret
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("skinport API returned %d: %s", e.StatusCode, e.Body)
}

// Config holds the Client settings.
type Config struct {
	BaseURL     string
	HTTPClient  *http.Client
	RateLimiter *rate.Limiter
	Logger      logrus.FieldLogger
}

// DefaultConfig talks to the public API with a 30s timeout and no pacing.
func DefaultConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		HTTPClient:  &http.Client{Timeout: defaultTimeout},
		RateLimiter: rate.NewLimiter(rate.Inf, 1),
	}
}

// Client implements store.Fetcher against the transactions endpoint.
type Client struct {
	creds   Credentials
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  logrus.FieldLogger
}

// NewClient creates a Client. Zero-valued Config fields fall back to
// DefaultConfig.
func NewClient(creds Credentials, cfg Config) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = def.HTTPClient
	}
	if cfg.RateLimiter == nil {
		cfg.RateLimiter = def.RateLimiter
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	return &Client{
		creds:   creds,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    cfg.HTTPClient,
		limiter: cfg.RateLimiter,
		logger:  cfg.Logger.WithField("source", "skinport"),
	}
}

// FetchPage requests a single page of transactions. Transport failures,
// non-2xx statuses and undecodable bodies are all returned as errors.
func (c *Client) FetchPage(ctx context.Context, page, limit int, order model.Order) (*model.Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("order", string(order))
	endpoint := c.baseURL + transactionsPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", c.creds.AuthorizationHeader())
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting transactions: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"page":     page,
		"status":   resp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond),
	}).Debug("transactions request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: truncate(string(body), maxErrorBodyLength)}
	}

	var p model.Page
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decoding page %d: %w", page, err)
	}
	return &p, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
