package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// userAgent is sent on every request; wttr.in serves its short format only
// to curl-style agents.
const userAgent = "curl/7.79.1"

// maxBodyBytes caps how much of the response we read; the endpoint returns
// a single short line.
const maxBodyBytes = 4 << 10

var (
	errBadStatus = errors.New("unexpected status code")
	errEmptyBody = errors.New("empty response body")
)

// Client fetches a one-line weather summary over HTTP. A circuit breaker
// sits in front of the endpoint so a flapping or dead service is
// short-circuited instead of timing out on every refresh interval.
type Client struct {
	url     string
	http    *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewClient returns a Client for the given URL with a bounded per-request
// timeout. The timeout is distinct from (and much shorter than) the refresh
// interval, so a hung connection cannot hold the fetching state past the
// next due cycle.
func NewClient(url string, timeout time.Duration) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weather",
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		url:     url,
		http:    &http.Client{Timeout: timeout},
		circuit: cb,
	}
}

// Fetch performs one GET and returns the trimmed one-line summary. Any
// network error, non-2xx status, or blank body is an error; the caller keeps
// its previous value in that case.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	result, err := c.circuit.Execute(func() (interface{}, error) {
		return c.fetchOnce(ctx)
	})
	if err != nil {
		return "", err
	}
	text, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("unexpected result type from circuit breaker")
	}
	return text, nil
}

func (c *Client) fetchOnce(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("build weather request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %d", errBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read weather response: %w", err)
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", errEmptyBody
	}
	// Keep only the first line; the display has a single-row slot.
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	return text, nil
}
