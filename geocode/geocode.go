// Package geocode resolves place names to coordinates through a
// Nominatim-compatible search API.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/abhurtya/real-deal-server-side/utils"
)

var ErrNoMatch = errors.New("geocode: no match")

// UpstreamError is a failed exchange with the geocoding service.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("geocode: upstream answered %d", e.StatusCode)
}

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	cache     redis.Cmdable
	cacheTTL  time.Duration
	policy    utils.RetryPolicy
	logger    *slog.Logger
}

// NewClient builds a client. cache may be nil to disable caching.
func NewClient(baseURL, userAgent string, cache redis.Cmdable, cacheTTL time.Duration, policy utils.RetryPolicy, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      &http.Client{},
		cache:     cache,
		cacheTTL:  cacheTTL,
		policy:    policy,
		logger:    logger,
	}
}

// Lookup returns the first match for location exactly as the service
// reported it.
func (c *Client) Lookup(ctx context.Context, location string) (json.RawMessage, error) {
	location = strings.TrimSpace(location)
	key := utils.GenerateQueryCacheKey("geocode", map[string]string{"q": strings.ToLower(location)})

	if c.cache != nil {
		var cached json.RawMessage
		found, err := utils.GetCached(ctx, c.cache, key, &cached)
		if err != nil {
			c.logger.Warn("geocode cache read failed", "error", err)
		} else if found {
			return cached, nil
		}
	}

	var matches []json.RawMessage
	err := c.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		matches, err = c.search(ctx, location)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNoMatch
	}

	if c.cache != nil {
		if err := utils.SetCached(ctx, c.cache, key, matches[0], c.cacheTTL); err != nil {
			c.logger.Warn("geocode cache write failed", "error", err)
		}
	}
	return matches[0], nil
}

func (c *Client) search(ctx context.Context, location string) ([]json.RawMessage, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("q", location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("geocode: build request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		upstream := &UpstreamError{StatusCode: resp.StatusCode}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, upstream
		}
		return nil, backoff.Permanent(upstream)
	}

	var matches []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("geocode: decode: %w", err))
	}
	return matches, nil
}
