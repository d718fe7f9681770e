package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Request is the GraphQL request body posted to Shopify.
// Variables is omitted from the wire when empty; Shopify treats an absent
// variables member differently from null.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Client executes GraphQL documents against one Shopify store.
type Client struct {
	cfg    Config
	url    string
	doer   Doer
	logger Logger
}

// New creates a new Client with the given configuration.
// Missing credentials are not an error here; every Execute call reports them.
func New(cfg Config) *Client {
	cfg.applyDefaults()
	return &Client{
		cfg:    cfg,
		url:    cfg.URL(),
		doer:   cfg.HTTPClient,
		logger: cfg.Logger,
	}
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.url
}

// Config returns a copy of the effective configuration, defaults applied.
func (c *Client) Config() Config {
	return c.cfg
}

// Execute posts query and variables to the Admin API and classifies the
// result. It never panics and never returns a Go error: every failure is
// an Outcome whose Envelope is safe to hand to the caller.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (out Outcome) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out = c.unexpected(fmt.Errorf("panic: %v", r))
		}
		if out.Kind != KindConfigError {
			c.logger.Info("shopify request finished",
				"kind", out.Kind.String(),
				"status", out.StatusCode,
				"duration", time.Since(start))
		}
	}()

	if err := c.cfg.Validate(); err != nil {
		c.logger.Error("shopify request rejected", "error", err)
		return Outcome{Kind: KindConfigError, Err: err}
	}

	payload, err := json.Marshal(Request{Query: query, Variables: variables})
	if err != nil {
		return c.unexpected(fmt.Errorf("encode request: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return c.unexpected(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set(AccessTokenHeader, c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.doer.Do(req)
	if err != nil {
		return c.transport(err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.cfg.MaxResponseBytes))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("shopify http status error", "status", resp.StatusCode)
		return Outcome{
			Kind:       KindStatusError,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %d", ErrHTTPStatus, resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxResponseBytes+1))
	if err != nil {
		// The status line arrived but the body did not; the connection or
		// deadline failed mid-read.
		return c.transport(err)
	}
	if int64(len(body)) > c.cfg.MaxResponseBytes {
		return c.unexpected(fmt.Errorf("response body exceeds %d bytes", c.cfg.MaxResponseBytes))
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || !json.Valid(body) {
		return c.unexpected(fmt.Errorf("response body is not valid JSON (%d bytes)", len(body)))
	}

	out = Outcome{
		Kind:       KindSuccess,
		StatusCode: resp.StatusCode,
		Body:       json.RawMessage(body),
	}
	if out.HasGraphQLErrors() {
		c.logger.Warn("shopify graphql errors detected", "status", resp.StatusCode)
	}
	return out
}

func (c *Client) transport(err error) Outcome {
	c.logger.Error("shopify http request error", "endpoint", c.url, "error", err)
	return Outcome{
		Kind: KindTransportError,
		Err:  fmt.Errorf("%w: %w", ErrTransport, err),
	}
}

func (c *Client) unexpected(err error) Outcome {
	c.logger.Error("shopify request error", "error", err)
	return Outcome{
		Kind: KindUnexpectedError,
		Err:  fmt.Errorf("%w: %w", ErrUnexpected, err),
	}
}
