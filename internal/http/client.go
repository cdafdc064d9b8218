// Package http provides the retrying HTTP transport used by all resource
// clients. It owns request serialization, Bearer token injection, retry and
// backoff policy, and decoding of API error envelopes.
package http

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

	"github.com/substrate-io/crm-client/internal/auth"
	"github.com/substrate-io/crm-client/internal/constants"
	"github.com/substrate-io/crm-client/pkg/crm"
)

// Request describes a single API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the parsed outcome of a request. Body is the raw response body
// and is populated even on API errors so callers can surface diagnostics.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client issues requests against a fixed base URL.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	logger       crm.Logger
	debug        bool
	userAgent    string
	interceptors *crm.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger crm.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is present.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the retry policy executed by the transport.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithInterceptors attaches an interceptor chain run around every request.
func WithInterceptors(chain *crm.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport bound to baseURL. tokenManager may be nil for
// unauthenticated requests.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
		userAgent:    constants.UserAgentBase + "/" + constants.Version,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes the request and returns the parsed response. A non-2xx status
// yields both the response (for diagnostics) and an error decoded from the
// API's error envelope.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	bodyBytes, err := marshalBody(req.Body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	interceptReq := &crm.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: http.Header{},
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, fmt.Errorf("request interceptor: %w", err)
		}
	}

	// Interceptors may rewrite headers and body; both are honored.
	httpReq, err := c.buildRequest(ctx, req, interceptReq.Body, interceptReq.Headers)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
		})
	}

	if c.interceptors != nil {
		interceptResp := &crm.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Duration:   time.Since(start),
		}

		err = c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
		if err != nil {
			return resp, fmt.Errorf("response interceptor: %w", err)
		}
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, c.decodeError(resp)
	}

	return resp, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func marshalBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}

	return data, nil
}

func (c *Client) buildRequest(ctx context.Context, req *Request, body []byte, extraHeaders http.Header) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, values := range extraHeaders {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return httpReq, nil
}

func (c *Client) decodeError(resp *Response) error {
	if len(resp.Body) > 0 {
		errResp, parseErr := crm.ParseResponseError(resp.Body)
		if parseErr == nil && errResp.Err.Code != 0 {
			return errResp
		}
	}

	return &crm.ResponseError{
		Err: crm.APIError{
			Code:    resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
			Status:  statusFromCode(resp.StatusCode),
		},
	}
}

func statusFromCode(code int) string {
	switch code {
	case http.StatusNotFound:
		return crm.StatusNotFound
	case http.StatusForbidden:
		return crm.StatusPermissionDenied
	case http.StatusUnauthorized:
		return crm.StatusUnauthenticated
	case http.StatusConflict:
		return crm.StatusAlreadyExists
	case http.StatusBadRequest:
		return crm.StatusInvalidArgument
	case http.StatusTooManyRequests:
		return crm.StatusResourceExhausted
	default:
		return "UNKNOWN"
	}
}
