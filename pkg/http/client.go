// Package http wraps net/http with the timeout, user agent and retry policy used for every page fetch.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DefaultUserAgent identifies the crawler to the site it reads.
const DefaultUserAgent = "ultimasgeek-rss-bot/1.0 (+https://github.com/franvillafanez/ultimasgeek-rss)"

// ClientConfig represents HTTP client configuration
type ClientConfig struct {
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	UserAgent    string
	Headers      map[string]string

	// MinRequestInterval spaces out requests made through one client. Zero disables pacing.
	MinRequestInterval time.Duration
}

// DefaultConfig returns default HTTP client configuration
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Timeout:      25 * time.Second,
		MaxRetries:   2,
		RetryBackoff: 1 * time.Second,
		UserAgent:    DefaultUserAgent,
		Headers: map[string]string{
			"Accept": "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		},
	}
}

// Client represents an HTTP client with retry logic
type Client struct {
	client *http.Client
	config *ClientConfig
	pacer  *Pacer
}

// NewClient creates a new HTTP client with the given configuration
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	return &Client{
		client: &http.Client{
			Timeout: config.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		config: config,
		pacer:  NewPacer(config.MinRequestInterval),
	}
}

// GetWithContext performs an HTTP GET request with context and retry logic
func (c *Client) GetWithContext(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}

	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	return c.doWithRetry(req)
}

// FetchText GETs url and returns the body decoded to UTF-8.
// Any non-2xx response is returned as a *StatusError.
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	resp, err := c.GetWithContext(ctx, url)
	if err != nil {
		return "", err
	}

	if err := EnsureSuccess(resp); err != nil {
		_ = resp.Body.Close()
		return "", err
	}

	body, err := ReadResponseBody(resp)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return DecodeToUTF8(body, GetContentType(resp)), nil
}

// doWithRetry performs an HTTP request, retrying only on retryable status codes
func (c *Client) doWithRetry(req *http.Request) (*http.Response, error) {
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	for key, value := range c.config.Headers {
		req.Header.Set(key, value)
	}

	var lastErr error
	backoff := c.config.RetryBackoff

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(backoff):
				backoff *= 2
			}
		}

		// Transport errors (timeouts included) are final; the timeout bounds the whole fetch.
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}

		if IsRetryableStatusCode(resp.StatusCode) && attempt < c.config.MaxRetries {
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("retryable HTTP status: %d", resp.StatusCode)
			continue
		}

		return resp, nil
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", c.config.MaxRetries+1, lastErr)
}

// IsRetryableStatusCode determines if an HTTP status code should be retried
func IsRetryableStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
