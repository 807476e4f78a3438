// Package http provides the shared HTTP transport for the Invobox API client.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/invobox-io/invobox-client/internal/auth"
	"github.com/invobox-io/invobox-client/pkg/invobox"
)

// Logger interface for transport-level logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Location returns the Location header of the response, or "".
func (r *Response) Location() string {
	return r.Headers.Get("Location")
}

// ResponseCheck maps a completed response to a success/failure verdict.
type ResponseCheck func(*Response) error

// Client is the shared connection to the API: it owns the base URL, the
// underlying transport, and the success-verdict policy. Resource clients
// borrow it per call; it keeps no per-request state.
type Client struct {
	baseURL       string
	provider      auth.Provider
	httpClient    *retryablehttp.Client
	logger        Logger
	debug         bool
	userAgent     string
	checkResponse ResponseCheck
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the transport logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables transport-level retries for transient failures
// (connection errors, 429, and 5xx). Retries are off unless this option is
// applied; by default every call is a single attempt whose outcome is final.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithResponseCheck replaces the success-verdict policy applied to completed
// responses. The default treats any non-2xx status as a failure.
func WithResponseCheck(check ResponseCheck) Option {
	return func(c *Client) {
		c.checkResponse = check
	}
}

// NewClient creates a new API transport client. provider may be nil, in which
// case requests are sent without an Authorization header.
func NewClient(baseURL string, provider auth.Provider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// retryablehttp treats 429 and 5xx as retryable; once attempts are
	// exhausted its default handler discards the response. Pass the final
	// response through so checkResponse can turn it into a ResponseError
	// carrying the status and body.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		provider:      provider,
		httpClient:    retryClient,
		userAgent:     "invobox-client/1.0 (Go)",
		checkResponse: ensureSuccess,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// ensureSuccess is the default verdict policy: 2xx passes, anything else
// becomes a ResponseError carrying the status and body detail.
func ensureSuccess(resp *Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return invobox.ParseResponseError(resp.StatusCode, resp.Body)
}

// Do executes a request. On a non-success verdict both the response and the
// error are returned, so callers can still inspect status and headers.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Path) == "" {
		return nil, invobox.ErrPathRequired
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.provider != nil {
		header, err := c.provider.AuthorizationHeader(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting credentials: %w", err)
		}

		httpReq.Header.Set("Authorization", header)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"status": resp.StatusCode,
		})
	}

	return resp, c.checkResponse(resp)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
