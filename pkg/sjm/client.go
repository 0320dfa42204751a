package sjm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

// ErrInvalidEndpoint is returned when the requested endpoint is not a
// plain path segment.
var ErrInvalidEndpoint = errors.New("invalid endpoint")

// DefaultBaseURL points at the public test tier of the matching API.
const DefaultBaseURL = "https://snapjobsai.com/api/v1/test"

// endpointPattern limits proxied endpoints to a single path segment.
var endpointPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Client talks to the SnapJobs matching API. The site backend uses it
// for the playground proxy and for availability probes; the server-side
// credential never reaches the browser.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a matching API client. An empty baseURL falls back
// to the public test tier.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ProxyResponse mirrors the upstream response for the playground UI
type ProxyResponse struct {
	Status     int             `json:"status"`
	StatusText string          `json:"statusText"`
	Data       json.RawMessage `json:"data"`
}

// Do proxies a playground request to the matching API. Only simple
// endpoint names are accepted, so callers cannot redirect the proxy
// elsewhere.
func (c *Client) Do(ctx context.Context, endpoint, method string, params map[string]interface{}) (*ProxyResponse, error) {
	if !endpointPattern.MatchString(endpoint) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}
	if method == "" {
		method = http.MethodPost
	}

	target := c.baseURL + "/" + endpoint

	var body io.Reader
	if (method == http.MethodPost || method == http.MethodPut) && params != nil {
		payload, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode params: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	if method == http.MethodGet && params != nil {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, fmt.Sprintf("%v", v))
		}
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("matching API request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if !json.Valid(data) {
		data, _ = json.Marshal(string(data))
	}

	return &ProxyResponse{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Data:       data,
	}, nil
}

// Healthy probes the matching API health endpoint
func (c *Client) Healthy(ctx context.Context) bool {
	resp, err := c.Do(ctx, "health", http.MethodGet, nil)
	if err != nil {
		return false
	}
	return resp.Status == http.StatusOK
}
