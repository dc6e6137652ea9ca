package radarapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher is the read-only surface of the Radar backend used by the poller
// and the CLI. It is implemented by *Client.
type Fetcher interface {
	FetchHealth(ctx context.Context) (Health, error)
	FetchRadar(ctx context.Context, date string) (RadarResponse, error)
	FetchItems(ctx context.Context, query ItemsQuery) (ItemList, error)
	FetchItem(ctx context.Context, id int64) (Trend, error)
}

var _ Fetcher = (*Client)(nil)

// Client talks to the Radar HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultAPIURL         = "127.0.0.1:8000"
	defaultUserAgent      = "radar/0.1"
	DefaultRequestTimeout = 5 * time.Second
)

// StatusError is returned when the backend answers with a 4xx/5xx status.
type StatusError struct {
	Path   string
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Code, e.Detail)
	}
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// NewClient builds a Client for apiURL, a host:port or full URL. A zero
// timeout uses DefaultRequestTimeout.
func NewClient(apiURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized backend address.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchHealth calls the root health endpoint.
func (c *Client) FetchHealth(ctx context.Context) (Health, error) {
	if c == nil {
		return Health{}, fmt.Errorf("client is nil")
	}
	var payload Health
	if err := c.do(ctx, &url.URL{Path: "/"}, &payload); err != nil {
		return Health{}, err
	}
	return payload, nil
}

// FetchRadar retrieves the radar for date (YYYY-MM-DD), or the latest
// radar when date is empty.
func (c *Client) FetchRadar(ctx context.Context, date string) (RadarResponse, error) {
	if c == nil {
		return RadarResponse{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if d := strings.TrimSpace(date); d != "" {
		values.Set("date", d)
	}
	rel := &url.URL{Path: "/api/radar", RawQuery: values.Encode()}
	var payload RadarResponse
	if err := c.do(ctx, rel, &payload); err != nil {
		return RadarResponse{}, err
	}
	return payload, nil
}

// ItemsQuery configures /items pagination.
type ItemsQuery struct {
	Skip  int
	Limit int
}

// FetchItems lists stored trends across all radar dates.
func (c *Client) FetchItems(ctx context.Context, query ItemsQuery) (ItemList, error) {
	if c == nil {
		return ItemList{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if query.Skip > 0 {
		values.Set("skip", strconv.Itoa(query.Skip))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	rel := &url.URL{Path: "/items", RawQuery: values.Encode()}
	var payload ItemList
	if err := c.do(ctx, rel, &payload); err != nil {
		return ItemList{}, err
	}
	return payload, nil
}

// FetchItem retrieves one stored trend by backend id.
func (c *Client) FetchItem(ctx context.Context, id int64) (Trend, error) {
	if c == nil {
		return Trend{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return Trend{}, fmt.Errorf("item id required")
	}
	rel := &url.URL{Path: "/items/" + strconv.FormatInt(id, 10)}
	var payload Trend
	if err := c.do(ctx, rel, &payload); err != nil {
		return Trend{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		se := &StatusError{Path: rel.Path, Code: resp.StatusCode}
		var body errorBody
		if json.NewDecoder(resp.Body).Decode(&body) == nil {
			se.Detail = body.Detail
		}
		return se
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = DefaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", apiURL)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
