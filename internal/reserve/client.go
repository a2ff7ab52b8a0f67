// Package reserve is a typed client for the medical reservation platform's
// REST API. It covers the appointment, schedule, rating, medical-history,
// notification, and admin surfaces consumed by the booking applications.
package reserve

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/medreserve/medreserve-go/internal/observability/metrics"
	"github.com/medreserve/medreserve-go/pkg/logging"
)

const (
	defaultBaseURL   = "http://localhost:8080/api"
	defaultUserAgent = "medreserve-go/0.1"
	defaultTimeout   = 15 * time.Second
)

var tracer = otel.Tracer("medreserve.internal.reserve")

// TokenSource supplies the bearer token attached to authenticated requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed token.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// Config controls how the reservation client behaves.
type Config struct {
	BaseURL    string
	Tokens     TokenSource
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
	Metrics    *metrics.ClientMetrics
	UserAgent  string
}

// Client wraps the reservation platform's REST endpoints. Each method issues
// exactly one HTTP request; there is no retry, caching, or deduplication
// layer. The backend owns all scheduling invariants.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	logger     *logging.Logger
	metrics    *metrics.ClientMetrics
	userAgent  string
}

// New creates a configured Client with sane defaults.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("reserve: invalid base URL: %w", err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL:    baseURL,
		tokens:     cfg.Tokens,
		httpClient: httpClient,
		logger:     logger,
		metrics:    cfg.Metrics,
		userAgent:  userAgent,
	}, nil
}

// APIError is the normalized shape for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("reserve: %s (status=%d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("reserve: http status %d", e.StatusCode)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsNotFound reports whether err is a 404 APIError.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// decodeAPIError mirrors the error body shapes the backend emits: a JSON
// object with "message" or "error", or a bare string.
func decodeAPIError(status int, body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return &APIError{StatusCode: status}
	}
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &parsed); err == nil {
		if parsed.Message != "" {
			return &APIError{StatusCode: status, Message: parsed.Message}
		}
		if parsed.Error != "" {
			return &APIError{StatusCode: status, Message: parsed.Error}
		}
	}
	var asString string
	if err := json.Unmarshal(trimmed, &asString); err == nil {
		return &APIError{StatusCode: status, Message: asString}
	}
	return &APIError{StatusCode: status, Message: string(trimmed)}
}

// invoke performs a single request against the API and returns the response
// body and status. Non-2xx statuses return an *APIError.
func (c *Client) invoke(ctx context.Context, operation, method, path string, query url.Values, payload any) ([]byte, int, error) {
	var bodyReader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("reserve: marshal %s request: %w", operation, err)
		}
		bodyReader = bytes.NewReader(body)
	}

	fullURL := c.buildURL(path, query)
	ctx, span := tracer.Start(ctx, operation, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("reserve: build %s request: %w", operation, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("reserve: resolve token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}
		c.metrics.ObserveRequest(operation, "transport_error")
		return nil, 0, fmt.Errorf("reserve: %s request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reserve: read %s response: %w", operation, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.metrics.ObserveRequest(operation, fmt.Sprintf("%d", resp.StatusCode))
	c.metrics.ObserveLatency(operation, elapsed.Seconds())
	c.logger.Debug("api call",
		"operation", operation,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, decodeAPIError(resp.StatusCode, data)
	}
	return data, resp.StatusCode, nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	trimmedPath := "/" + strings.TrimLeft(path, "/")
	full := c.baseURL + trimmedPath
	if len(query) > 0 {
		full = full + "?" + query.Encode()
	}
	return full
}

func decodeJSON[T any](operation string, data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("reserve: decode %s response: %w", operation, err)
	}
	return &out, nil
}

func decodeList[T any](operation string, data []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("reserve: decode %s response: %w", operation, err)
	}
	return out, nil
}
