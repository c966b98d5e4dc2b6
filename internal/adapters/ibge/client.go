// Package ibge is a small client for the IBGE localities API used by the
// lead form to offer states and municipalities.
package ibge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidState = errors.New("invalid state code")
	ErrUpstream     = errors.New("locality service unavailable")
)

// State is a Brazilian federative unit
type State struct {
	ID    int    `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// City is a municipality of a state
type City struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// Client fetches localities and keeps the raw responses in memory for ttl.
// Concurrent misses on the same path share one upstream request.
type Client struct {
	baseURL string
	http    *http.Client

	cache    *ttlcache.Cache[string, json.RawMessage] // nil when caching is off
	inflight singleflight.Group
}

// NewClient creates a client for baseURL (no trailing slash); ttl <= 0 disables caching
func NewClient(baseURL string, timeout, ttl time.Duration) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	if ttl > 0 {
		c.cache = ttlcache.New[string, json.RawMessage](
			ttlcache.WithTTL[string, json.RawMessage](ttl),
			ttlcache.WithDisableTouchOnHit[string, json.RawMessage](),
		)
	}
	return c
}

// States lists every state ordered by name
func (c *Client) States(ctx context.Context) ([]State, error) {
	var states []State
	if err := c.getCached(ctx, "/estados?orderBy=nome", &states); err != nil {
		return nil, err
	}
	return states, nil
}

// Cities lists the municipalities of a state given its two-letter code or numeric ID
func (c *Client) Cities(ctx context.Context, uf string) ([]City, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	if !validUF(uf) {
		return nil, ErrInvalidState
	}

	var cities []City
	if err := c.getCached(ctx, "/estados/"+url.PathEscape(uf)+"/municipios", &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func validUF(uf string) bool {
	if len(uf) != 2 {
		return false
	}
	letters, digits := 0, 0
	for _, r := range uf {
		switch {
		case r >= 'A' && r <= 'Z':
			letters++
		case r >= '0' && r <= '9':
			digits++
		}
	}
	return letters == 2 || digits == 2
}

// getCached decodes the JSON at path into out, serving from cache while fresh
func (c *Client) getCached(ctx context.Context, path string, out interface{}) error {
	if c.cache != nil {
		if item := c.cache.Get(path); item != nil {
			return json.Unmarshal(item.Value(), out)
		}
	}

	v, err, _ := c.inflight.Do(path, func() (interface{}, error) {
		raw, err := c.fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		if c.cache != nil {
			c.cache.Set(path, raw, ttlcache.DefaultTTL)
		}
		return raw, nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(v.(json.RawMessage), out); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

// fetch returns the raw JSON body at path
func (c *Client) fetch(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return raw, nil
}
