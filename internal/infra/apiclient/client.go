package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxErrorBody = 4 << 10

// Client talks to the salon REST API. A zero token sends no credentials;
// use WithToken to get a copy bound to a session.
type Client struct {
	base    *url.URL
	http    *http.Client
	scheme  string
	token   string
	log     *zap.Logger
	metrics *Metrics
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithAuthScheme sets the Authorization prefix ("Token" or "Bearer").
func WithAuthScheme(scheme string) Option {
	return func(c *Client) { c.scheme = scheme }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", baseURL)
	}

	c := &Client{
		base:   u,
		http:   http.DefaultClient,
		scheme: "Token",
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// WithToken returns a copy of c that authenticates as token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) Token() string { return c.token }

// do sends one request. body is JSON-encoded when non-nil; out is decoded
// and validated when non-nil.
func (c *Client) do(
	ctx context.Context,
	resource string,
	method string,
	path string,
	body any,
	out any,
	authenticate bool,
) error {

	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse path %q: %w", path, err)
	}
	target := c.base.ResolveReference(ref)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticate && c.token != "" {
		req.Header.Set("Authorization", c.scheme+" "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(resource, method, "transport_error", time.Since(start).Seconds())
		c.log.Warn("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	elapsed := time.Since(start)
	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", elapsed),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.observe(resource, method, strconv.Itoa(resp.StatusCode), elapsed.Seconds())
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(raw)),
		}
	}

	c.metrics.observe(resource, method, "ok", elapsed.Seconds())

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return decode(path, resp.Body, out)
}
