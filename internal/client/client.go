// Package client provides an HTTP client for the budget service API.
package client

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

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/logger"
	"budgetdash/internal/session"
	"budgetdash/internal/uuid"
)

// RequestIDHeader is sent on every upstream request.
const RequestIDHeader = "X-Request-ID"

const maxBodySize = 1 << 20

// BudgetClient communicates with the budget service. The bearer token is
// taken from the session carried by each request's context.
type BudgetClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBudgetClient creates a new budget service client.
func NewBudgetClient(baseURL string, httpClient *http.Client) *BudgetClient {
	return &BudgetClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// NewHTTPClient returns an http.Client with the given request timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

type requestIDKey struct{}

// WithRequestID returns a copy of ctx whose upstream requests carry id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID set by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// call describes one upstream exchange.
type call struct {
	method string
	path   string
	query  url.Values
	body   any
	// login marks the auth exchanges where a 401 means bad credentials
	// rather than an expired session.
	login bool
}

// do performs the request and returns the response body of a 2xx reply.
// Failures are mapped onto AppErrors.
func (c *BudgetClient) do(ctx context.Context, req call) ([]byte, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		jsonBody, err := json.Marshal(req.body)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("marshaling request: %w", err))
		}
		body = bytes.NewReader(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("creating request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New()
	}
	httpReq.Header.Set(RequestIDHeader, requestID)

	if sess, ok := session.FromContext(ctx); ok && sess.Authenticated() {
		httpReq.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		logger.Named("client").Warnw("budget service unreachable",
			"method", req.method, "path", req.path, "request_id", requestID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrNetworkUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrNetworkUnavailable, fmt.Errorf("reading response: %w", err))
	}

	logger.Named("client").Debugw("budget service call",
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	return nil, statusError(req, resp.StatusCode, data)
}

// statusError maps a non-2xx reply onto an AppError.
func statusError(req call, status int, data []byte) error {
	msg := upstreamMessage(data)
	cause := fmt.Errorf("%s %s: unexpected status %d", req.method, req.path, status)

	var sentinel *apperrors.AppError
	switch {
	case status == http.StatusUnauthorized && req.login:
		sentinel = apperrors.ErrInvalidCredentials
	case status == http.StatusUnauthorized:
		return apperrors.Wrap(apperrors.ErrUnauthenticated, cause)
	case status == http.StatusNotFound:
		sentinel = apperrors.ErrNotFound
	case status == http.StatusBadRequest:
		sentinel = apperrors.ErrValidation
	default:
		sentinel = apperrors.ErrUpstream
	}

	if msg != "" {
		sentinel = apperrors.WithMessage(sentinel, msg)
	}
	return apperrors.Wrap(sentinel, cause)
}

// upstreamMessage extracts a human-readable message from an error body. The
// budget service answers either {"message": "..."}, {"error": "..."}, or plain text.
func upstreamMessage(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}

	var obj struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if data[0] == '{' {
		if err := json.Unmarshal(data, &obj); err == nil {
			if obj.Message != "" {
				return obj.Message
			}
			return obj.Error
		}
		return ""
	}

	var s string
	if data[0] == '"' && json.Unmarshal(data, &s) == nil {
		return s
	}
	if len(data) > 200 || data[0] == '<' {
		return ""
	}
	return string(data)
}
