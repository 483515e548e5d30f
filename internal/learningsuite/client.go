// Package learningsuite is a thin client for the LearningSuite REST API.
// Every operation is a single authenticated round trip with no retries,
// caching or pagination.
package learningsuite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultBaseURL = "https://api.learningsuite.io/api/v1"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the default traced client. Timeouts are whatever the given
// client has configured.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client bound to apiKey. The key cannot be changed afterwards.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a read operation. Reads never carry a body.
func (c *Client) Get(ctx context.Context, op Operation, path map[string]string, query url.Values) (json.RawMessage, error) {
	if op.Method != http.MethodGet {
		return nil, fmt.Errorf("%s is not a read operation", op)
	}
	return c.do(ctx, op, path, query, nil)
}

// Send performs a mutating operation with an optional JSON body.
func (c *Client) Send(ctx context.Context, op Operation, path map[string]string, body any) (json.RawMessage, error) {
	if !op.HasBody() && body != nil {
		return nil, fmt.Errorf("%s does not accept a request body", op)
	}
	return c.do(ctx, op, path, nil, body)
}

func (c *Client) do(ctx context.Context, op Operation, path map[string]string, query url.Values, body any) (json.RawMessage, error) {
	p, err := op.Expand(path)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + p
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op.Method, p, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("operation", op.Name).
		Str("method", op.Method).
		Str("path", p).
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Msg("learningsuite request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return json.RawMessage(`{}`), nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w from %s %s", ErrMalformedResponse, op.Method, p)
	}
	return json.RawMessage(data), nil
}
