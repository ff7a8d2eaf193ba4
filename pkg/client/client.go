// Package client is a typed Go client for the listings API. It also owns the
// client-side filter state: the current search criteria are held on the
// Client, serialized to the query string for shareable URLs, and re-sent in
// full on every change.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Clara4555/ROOFTY/pkg/models"
)

// ErrNotFound is returned when the server reports a missing record.
var ErrNotFound = errors.New("not found")

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	hc      *http.Client
	filters models.SearchFilters
}

// New builds a Client. A nil httpClient gets a default one configured from
// cfg.Timeout.
func New(cfg Config, httpClient *http.Client) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      httpClient,
	}, nil
}

// Filters returns the current search criteria.
func (c *Client) Filters() models.SearchFilters {
	return c.filters
}

// SetFilters replaces the criteria wholesale and re-fetches with the full new
// set; results replace, never merge.
func (c *Client) SetFilters(ctx context.Context, f models.SearchFilters) ([]models.Property, error) {
	c.filters = f
	return c.Search(ctx)
}

// ApplyQuery restores filter state from a raw query string, e.g. from a
// shared or bookmarked URL, and fetches the matching properties.
func (c *Client) ApplyQuery(ctx context.Context, rawQuery string) ([]models.Property, error) {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	return c.SetFilters(ctx, models.ParseFilters(q))
}

// SearchQuery returns the current criteria encoded as a query string.
func (c *Client) SearchQuery() string {
	return c.filters.Values().Encode()
}

// Search fetches the properties matching the current criteria.
func (c *Client) Search(ctx context.Context) ([]models.Property, error) {
	path := "/api/properties/search"
	if q := c.SearchQuery(); q != "" {
		path += "?" + q
	}
	var out []models.Property
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListProperties(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	if err := c.getJSON(ctx, "/api/properties", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FeaturedProperties(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	if err := c.getJSON(ctx, "/api/properties/featured", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	var out models.Property
	if err := c.getJSON(ctx, fmt.Sprintf("/api/properties/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var out []models.Testimonial
	if err := c.getJSON(ctx, "/api/testimonials", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	var out models.Property
	if err := c.postJSON(ctx, "/api/properties", p, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTestimonial(ctx context.Context, t models.Testimonial) (*models.Testimonial, error) {
	var out models.Testimonial
	if err := c.postJSON(ctx, "/api/testimonials", t, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitContact sends a contact form submission and returns the server's
// acknowledgement message.
func (c *Client) SubmitContact(ctx context.Context, msg models.ContactMessage) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, "/api/contact", msg, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return apiError(res)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any, wantStatus int) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != wantStatus {
		return apiError(res)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func apiError(res *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	b, _ := io.ReadAll(res.Body)
	_ = json.Unmarshal(b, &body)

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", body.Message, ErrNotFound)
	}
	if body.Message != "" {
		return fmt.Errorf("server returned %d: %s", res.StatusCode, body.Message)
	}
	return fmt.Errorf("server returned %d", res.StatusCode)
}
