// Package api is the HTTP client for the school backend. It owns the
// /api/v1 path layout, retry/backoff for transient failures, the
// created_by_id query-parameter quirk, and per-call journaling.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// CallLogger receives one entry per HTTP call, success or failure.
// Implementations must not fail the call.
type CallLogger interface {
	LogCall(entry CallEntry)
}

// CallEntry describes one completed (or failed) HTTP call.
type CallEntry struct {
	Method   string
	Path     string
	Status   int
	Duration time.Duration
	Detail   string
}

// createdByQueryParam lists the resources where the backend wants the
// caller identity as a query parameter instead of a body field. This
// is a documented backend quirk, not a general rule.
var createdByQueryParam = map[string]bool{
	"events":  true,
	"vendors": true,
}

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	logger  CallLogger
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Logger     CallLogger // optional

	// Backoff bounds; zero values fall back to 500ms / 15s.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// NewClient builds a client with bounded exponential-backoff retries.
// Transport errors and 5xx responses are retried; 4xx responses are
// not, since resending an invalid payload cannot succeed.
func NewClient(opts Options) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.MaxRetries
	rc.RetryWaitMin = 500 * time.Millisecond
	if opts.RetryWaitMin > 0 {
		rc.RetryWaitMin = opts.RetryWaitMin
	}
	rc.RetryWaitMax = 15 * time.Second
	if opts.RetryWaitMax > 0 {
		rc.RetryWaitMax = opts.RetryWaitMax
	}
	rc.Logger = nil
	if opts.Timeout > 0 {
		rc.HTTPClient.Timeout = opts.Timeout
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    rc,
		logger:  opts.Logger,
	}
}

// Create POSTs a JSON body to /api/v1/{resource} and returns the
// created record's body. Query parameters carry the per-resource
// caller-identity quirk when needed.
func (c *Client) Create(ctx context.Context, resource string, body any, query url.Values) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s body: %w", resource, err)
	}

	u := c.resourceURL(resource, query)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, u, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", resource, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, resource)
}

// List GETs /api/v1/{resource} with the given filters and returns the
// result items. Both bare arrays and {"items": [...]} envelopes are
// accepted.
func (c *Client) List(ctx context.Context, resource string, query url.Values) ([]json.RawMessage, error) {
	u := c.resourceURL(resource, query)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", resource, err)
	}

	raw, err := c.do(req, resource)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	var envelope struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse %s list response: %w", resource, err)
	}
	return envelope.Items, nil
}

// RequiresCreatedByQuery reports whether a resource wants
// created_by_id as a query parameter rather than a body field.
func RequiresCreatedByQuery(resource string) bool {
	return createdByQueryParam[resource]
}

func (c *Client) resourceURL(resource string, query url.Values) string {
	u := c.baseURL + "/api/v1/" + resource
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) do(req *retryablehttp.Request, resource string) (json.RawMessage, error) {
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		// Retries exhausted or transport failure.
		c.log(CallEntry{
			Method:   req.Method,
			Path:     req.URL.Path,
			Duration: time.Since(started),
			Detail:   err.Error(),
		})
		return nil, fmt.Errorf("%s %s: %w", req.Method, resource, &Error{
			Resource: resource,
			Err:      err,
		})
	}
	defer resp.Body.Close()

	entry := CallEntry{
		Method: req.Method,
		Path:   req.URL.Path,
		Status: resp.StatusCode,
	}

	data, err := io.ReadAll(resp.Body)
	entry.Duration = time.Since(started)
	if err != nil {
		entry.Detail = err.Error()
		c.log(entry)
		return nil, fmt.Errorf("failed to read %s response: %w", resource, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseError(resource, resp.StatusCode, data)
		entry.Detail = apiErr.Detail
		c.log(entry)
		return nil, apiErr
	}

	c.log(entry)
	return json.RawMessage(bytes.TrimSpace(data)), nil
}

func (c *Client) log(entry CallEntry) {
	if c.logger != nil {
		c.logger.LogCall(entry)
	}
}
