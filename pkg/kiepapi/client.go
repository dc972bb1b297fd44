// Package kiepapi provides a client for the KIEP industrial-data API.
package kiepapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/kiep-data/analytics-cli/internal/model"
)

// ErrNotFound is returned when a key has no matching record upstream.
var ErrNotFound = eris.New("kiepapi: record not found")

// Client defines the KIEP data API operations consumed by the analytics
// layer. Every call is bounded by the client's timeout; a timeout or
// transport failure is final for that key — no retries.
type Client interface {
	// Region fetches one region by its 5-digit administrative code.
	Region(ctx context.Context, code string) (*model.Region, error)
	// RegionHealth fetches the health component indicators for a region.
	RegionHealth(ctx context.Context, code string) (*model.HealthMetrics, error)
	// Regions lists regions up to the given limit.
	Regions(ctx context.Context, limit int) ([]model.Region, error)
	// Company fetches one company by business registration number.
	Company(ctx context.Context, bizNo string) (*model.Company, error)
	// Complex fetches one industrial complex by its code.
	Complex(ctx context.Context, id string) (*model.Complex, error)
	// Complexes lists industrial complexes, optionally filtered by province.
	Complexes(ctx context.Context, province string) ([]model.Complex, error)
}

// Option configures the API client.
type Option func(*httpClient)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit overrides the default request rate limit.
func WithRateLimit(rps rate.Limit, burst int) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rps, burst)
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a KIEP data API client for the given base URL.
func NewClient(baseURL string, opts ...Option) Client {
	c := &httpClient{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(20, 20),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues a GET to path with optional query params and unmarshals the
// body into out. A 404 maps to ErrNotFound; any other non-200 status is an
// upstream error.
func (c *httpClient) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "kiepapi: rate limiter wait")
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return eris.Wrap(err, "kiepapi: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrapf(err, "kiepapi: GET %s", path)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "kiepapi: read response body")
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("kiepapi: unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrapf(err, "kiepapi: unmarshal %s response", path)
	}

	return nil
}

func (c *httpClient) Region(ctx context.Context, code string) (*model.Region, error) {
	var region model.Region
	if err := c.get(ctx, "/api/regions/"+url.PathEscape(code), nil, &region); err != nil {
		return nil, err
	}
	return &region, nil
}

func (c *httpClient) RegionHealth(ctx context.Context, code string) (*model.HealthMetrics, error) {
	var health model.HealthMetrics
	if err := c.get(ctx, fmt.Sprintf("/api/health/%s", url.PathEscape(code)), nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *httpClient) Regions(ctx context.Context, limit int) ([]model.Region, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var regions []model.Region
	if err := c.get(ctx, "/api/regions", query, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

func (c *httpClient) Company(ctx context.Context, bizNo string) (*model.Company, error) {
	var company model.Company
	if err := c.get(ctx, "/api/companies/"+url.PathEscape(bizNo), nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *httpClient) Complex(ctx context.Context, id string) (*model.Complex, error) {
	var cx model.Complex
	if err := c.get(ctx, "/api/complexes/"+url.PathEscape(id), nil, &cx); err != nil {
		return nil, err
	}
	return &cx, nil
}

func (c *httpClient) Complexes(ctx context.Context, province string) ([]model.Complex, error) {
	query := url.Values{}
	if province != "" {
		query.Set("province", province)
	}
	var complexes []model.Complex
	if err := c.get(ctx, "/api/complexes", query, &complexes); err != nil {
		return nil, err
	}
	return complexes, nil
}
