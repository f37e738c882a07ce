package transport

import (
	"compress/gzip"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sukalov/lyrical/internal/logger"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	maxRedirects     = 10
)

// ErrInsecureURL is returned for any request or redirect that is not https
var ErrInsecureURL = errors.New("only https URLs are supported")

// Client performs the HTTP requests for catalog queries and lyrics pages
type Client struct {
	httpClient    *http.Client
	userAgent     string
	allowInsecure bool
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// AllowInsecure lifts the https-only restriction. Meant for tests against
// local servers.
func AllowInsecure() Option {
	return func(c *Client) { c.allowInsecure = true }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
					MaxVersion: tls.VersionTLS13,
				},
			},
		},
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient.CheckRedirect = c.checkRedirect
	return c
}

func (c *Client) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	return c.checkScheme(req.URL)
}

func (c *Client) checkScheme(u *url.URL) error {
	if c.allowInsecure || u.Scheme == "https" {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInsecureURL, u.Redacted())
}

// Request describes a GET request
type Request struct {
	URL         string
	Query       url.Values
	BearerToken string
	Accept      string
}

// GetPage fetches rawURL and returns the decoded body as a string
func (c *Client) GetPage(ctx context.Context, rawURL string) (string, error) {
	body, err := c.get(ctx, Request{
		URL:    rawURL,
		Accept: "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetJSON performs req and decodes the JSON response into v
func (c *Client) GetJSON(ctx context.Context, req Request, v any) error {
	if req.Accept == "" {
		req.Accept = "application/json"
	}

	body, err := c.get(ctx, req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, r Request) ([]byte, error) {
	target, err := url.Parse(r.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", r.URL, err)
	}
	if err := c.checkScheme(target); err != nil {
		return nil, err
	}

	if len(r.Query) > 0 {
		query := target.Query()
		for key, values := range r.Query {
			for _, value := range values {
				query.Add(key, value)
			}
		}
		target.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", r.Accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip")
	if r.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.BearerToken)
	}

	logger.Debug(fmt.Sprintf("GET %s", target.Redacted()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", target.Redacted(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: target.Redacted(), StatusCode: resp.StatusCode}
	}

	var reader io.Reader = resp.Body
	if strings.Contains(resp.Header.Get("Content-Encoding"), "gzip") {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// StatusError reports a non-200 response
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.URL)
}
