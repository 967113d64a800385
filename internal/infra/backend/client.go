// Package backend is the HTTP client for the external agenda backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"agenda-web/internal/infra"
	"agenda-web/internal/pkg/errs"
)

// responses larger than this are truncated before decoding
const maxBodyBytes = 1 << 20

// Observer receives one observation per backend call.
type Observer interface {
	ObserveBackendCall(operation, outcome string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveBackendCall(string, string, time.Duration) {}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	observer   Observer
}

type ClientOption func(*Client)

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithObserver(o Observer) ClientOption {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient creates a backend client. baseURL includes the API prefix,
// e.g. "https://agenda.example.com/api".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
		observer:   nopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "backend")
	return c
}

type request struct {
	operation string
	method    string
	path      string
	query     url.Values
	token     string
	body      any
}

// do sends req and decodes a 2xx JSON body into out (when out is non-nil).
// Non-2xx answers become an infra.BackendError carrying the backend "error" text.
func (c *Client) do(ctx context.Context, req request, out any) error {
	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return errs.Wrapf(err, "backend: marshal %s request", req.operation)
		}
		body = bytes.NewReader(raw)
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return errs.Wrapf(err, "backend: create %s request", req.operation)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.observer.ObserveBackendCall(req.operation, "unreachable", time.Since(start))
		return infra.WrapBackendErr(c.logger, infra.KindUnavailable, 0, "", req.operation+" request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	elapsed := time.Since(start)
	if err != nil {
		c.observer.ObserveBackendCall(req.operation, "unreachable", elapsed)
		return infra.WrapBackendErr(c.logger, infra.KindUnavailable, resp.StatusCode, "", req.operation+" read body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.observer.ObserveBackendCall(req.operation, strconv.Itoa(resp.StatusCode/100)+"xx", elapsed)
		return infra.WrapBackendErr(c.logger, kindForStatus(resp.StatusCode), resp.StatusCode,
			errorMessage(raw), req.operation+" returned "+strconv.Itoa(resp.StatusCode), nil)
	}

	c.observer.ObserveBackendCall(req.operation, "ok", elapsed)
	c.logger.Debug("backend call",
		"operation", req.operation,
		"status", resp.StatusCode,
		"elapsed_ms", elapsed.Milliseconds(),
	)

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return infra.WrapBackendErr(c.logger, infra.KindMalformed, resp.StatusCode, "", req.operation+" decode response", err)
	}
	return nil
}

func kindForStatus(status int) infra.BackendErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.KindUnauthorized
	case status == http.StatusNotFound:
		return infra.KindNotFound
	case status >= 500:
		return infra.KindUnavailable
	default:
		return infra.KindRejected
	}
}

// errorMessage extracts {"error": "..."} (or "message") from an error body.
func errorMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}
