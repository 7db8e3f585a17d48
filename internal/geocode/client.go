// Package geocode implements the external lookup client used by the geo
// tools: forward geocoding, reverse geocoding, and great-circle distance.
//
// The HTTP client targets any Nominatim-compatible endpoint. One Client is
// constructed at startup and shared by every tool handler; it enforces the
// minimum request interval the public Nominatim service requires.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

const (
	defaultBaseURL     = "https://nominatim.openstreetmap.org"
	defaultUserAgent   = "geonet-agent"
	defaultTimeout     = 10 * time.Second
	defaultMinInterval = time.Second
)

// ErrNotFound is returned when the service resolved the request but found no
// matching place. Callers treat this as an informative outcome, not a fault.
var ErrNotFound = errors.New("geocode: no matching place")

// UnavailableError wraps a transport or service failure: the lookup could not
// be completed at all, as opposed to completing with no result.
type UnavailableError struct {
	Op  string // "geocode" or "reverse"
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("geocoding service unavailable (%s): %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Place is one resolved location.
type Place struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// Geocoder is the lookup contract the geo tools consume.
// Implemented by Client; tests substitute a stub.
type Geocoder interface {
	// Geocode resolves a free-form place name to coordinates.
	// Returns ErrNotFound when the service knows no such place.
	Geocode(ctx context.Context, place string) (Place, error)
	// Reverse resolves coordinates to a human-readable address.
	// Returns ErrNotFound when nothing is near the coordinates.
	Reverse(ctx context.Context, lat, lon float64) (Place, error)
}

// Client is a Nominatim-compatible HTTP geocoding client.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client

	// Nominatim usage policy: at most one request per second.
	mu          sync.Mutex
	minInterval time.Duration
	nextAt      time.Time
}

// Options configures a Client. Zero values select the public Nominatim
// endpoint with its documented limits.
type Options struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	MinInterval time.Duration
}

// NewClient creates a geocoding client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MinInterval < 0 {
		opts.MinInterval = 0
	} else if opts.MinInterval == 0 {
		opts.MinInterval = defaultMinInterval
	}
	return &Client{
		baseURL:     opts.BaseURL,
		userAgent:   opts.UserAgent,
		httpClient:  &http.Client{Timeout: opts.Timeout},
		minInterval: opts.MinInterval,
	}
}

// Geocode implements Geocoder using the /search endpoint.
func (c *Client) Geocode(ctx context.Context, place string) (Place, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "jsonv2")
	q.Set("limit", "1")

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := c.get(ctx, "/search", q, &results); err != nil {
		return Place{}, &UnavailableError{Op: "geocode", Err: err}
	}
	if len(results) == 0 {
		return Place{}, ErrNotFound
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return Place{}, &UnavailableError{Op: "geocode", Err: fmt.Errorf("malformed coordinates %q,%q", results[0].Lat, results[0].Lon)}
	}

	return Place{Latitude: lat, Longitude: lon, Address: results[0].DisplayName}, nil
}

// Reverse implements Geocoder using the /reverse endpoint.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (Place, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("format", "jsonv2")

	var result struct {
		DisplayName string `json:"display_name"`
		Error       string `json:"error"`
	}
	if err := c.get(ctx, "/reverse", q, &result); err != nil {
		return Place{}, &UnavailableError{Op: "reverse", Err: err}
	}
	// Nominatim reports "Unable to geocode" as a 200 with an error field.
	if result.Error != "" || result.DisplayName == "" {
		return Place{}, ErrNotFound
	}

	return Place{Latitude: lat, Longitude: lon, Address: result.DisplayName}, nil
}

// get performs one throttled GET against path and decodes the JSON body.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if err := c.throttle(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// throttle blocks until the next request slot, or until ctx is cancelled.
func (c *Client) throttle(ctx context.Context) error {
	if c.minInterval <= 0 {
		return ctx.Err()
	}

	c.mu.Lock()
	now := time.Now()
	wait := c.nextAt.Sub(now)
	if wait < 0 {
		wait = 0
	}
	c.nextAt = now.Add(wait + c.minInterval)
	c.mu.Unlock()

	if wait == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
