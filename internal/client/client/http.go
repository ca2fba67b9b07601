package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/devshowcase/internal/common"
	"github.com/dmitrijs2005/devshowcase/internal/logging"
	"golang.org/x/time/rate"
)

const defaultTimeout = 15 * time.Second

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 8 << 20

// Envelope is the wrapper every endpoint answers with.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (and its timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRateLimit caps outgoing requests at rps per second. rps <= 0 disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

// HTTPClient implements API over JSON/multipart HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     logging.Logger

	mu     sync.RWMutex
	tokens TokenSource
}

var _ API = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://127.0.0.1:5000/api").
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource binds the session the client reads its bearer token from.
func (c *HTTPClient) SetTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
}

func (c *HTTPClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// requestBody is an encoded request payload.
type requestBody interface {
	ContentType() string
	Reader() (io.Reader, error)
}

type jsonBody struct {
	v any
}

func (b jsonBody) ContentType() string { return "application/json" }

func (b jsonBody) Reader() (io.Reader, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return bytes.NewReader(data), nil
}

// do sends one request and unwraps the envelope into T.
func do[T any](ctx context.Context, c *HTTPClient, method, path string, query url.Values, body requestBody) (T, error) {
	var zero T

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return zero, err
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		r, err := body.Reader()
		if err != nil {
			return zero, err
		}
		reader = r
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", body.ContentType())
	}
	if token := c.token(); token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}
		c.logger.Debug(ctx, "api request failed", "method", method, "path", path, "error", err)
		return zero, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(started))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return zero, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var env Envelope[json.RawMessage]
		_ = json.Unmarshal(raw, &env)
		return zero, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	var env Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return zero, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return env.Data, nil
}
