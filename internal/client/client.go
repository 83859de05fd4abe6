// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/baymaxhuang/atomix/internal/log"
	"github.com/baymaxhuang/atomix/internal/version"
)

// DefaultServer is the REST endpoint of a coordination node on localhost.
const DefaultServer = "http://localhost:5678"

// Sentinel errors so callers can match failures with errors.Is.
var (
	ErrInvalidServer = errors.New("invalid server URL")
	ErrMissingParam  = errors.New("missing path parameter")
)

var paramPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Client issues requests against a single coordination service endpoint.
type Client struct {
	base *url.URL
	http *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the request succeeded. Only 200 counts as success.
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// New returns a Client for server, which must be an absolute http or https
// URL. A trailing slash is ignored.
func New(server string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(server, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidServer, server, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w %q: want http(s)://host[:port]", ErrInvalidServer, server)
	}

	c := &Client{
		base: u,
		http: cleanhttp.DefaultClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Server returns the base URL requests are sent to.
func (c *Client) Server() string {
	return c.base.String()
}

// Path expands a template such as "/v1/primitives/maps/{map}/{key}" with
// path-escaped values from params.
func Path(template string, params map[string]string) (string, error) {
	var missing []string
	out := paramPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := params[name]
		if !ok {
			missing = append(missing, name)
			return m
		}
		return url.PathEscape(v)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s in %s", ErrMissingParam, strings.Join(missing, ","), template)
	}
	return out, nil
}

// Do sends one request. The status code is never turned into an error; only
// transport failures are.
func (c *Client) Do(ctx context.Context, method, path string, body []byte, contentType string) (*Response, error) {
	target := c.base.String() + path

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	log.Debugf("request: method=%s url=%s", method, target)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	log.Debugf("response: method=%s url=%s status=%d size=%s",
		method, target, resp.StatusCode, humanize.Bytes(uint64(doc.Len())))
	log.Tracef("response body: %s", doc.String())

	return &Response{StatusCode: resp.StatusCode, Body: doc.Bytes()}, nil
}

// Get issues a GET for path.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, "")
}
