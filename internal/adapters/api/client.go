// Package api is the HTTP adapter for the project repository REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/ports"
	"github.com/renato0307/tmlsync/version"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultTLSTimeout     = 10 * time.Second
	// maxErrorBody caps how much of a failed response is kept for diagnostics
	maxErrorBody = 8 * 1024

	authTokenPath = "/api/v1/user/auth-token/"
	projectsPath  = "/api/v1/projects/"
)

// Client talks to the project repository.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	http      *http.Client
	userAgent string
}

// Verify interface compliance at compile time
var _ ports.RemoteRepository = (*Client)(nil)

// defaultHTTPClient bounds connection setup. There is no client-wide timeout:
// each call carries its own deadline through its context.
func defaultHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   defaultConnectTimeout,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		ForceAttemptHTTP2:   true,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        16,
		MaxIdleConnsPerHost: 8,
		Proxy:               http.ProxyFromEnvironment,
		TLSHandshakeTimeout: defaultTLSTimeout,
	}
	return &http.Client{Transport: transport}
}

// NewClient creates a client with a pooled transport
func NewClient() *Client {
	return NewClientWithHTTP(defaultHTTPClient())
}

// NewClientWithHTTP creates a client around an existing *http.Client
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{
		http:      httpClient,
		userAgent: version.UserAgent(),
	}
}

func endpoint(serverAddress, path string) string {
	return strings.TrimRight(serverAddress, "/") + path
}

func projectEndpoint(serverAddress, projectID, action string) string {
	return endpoint(serverAddress, projectsPath+url.PathEscape(projectID)+"/"+action)
}

func (c *Client) newRequest(ctx context.Context, method, target, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	return req, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, target, token string, payload any) (*http.Request, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := c.newRequest(ctx, method, target, token, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do sends req and classifies transport failures.
// The caller owns the response body.
func (c *Client) do(op string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	logging.Logger.Debug("Repository request",
		"op", op,
		"method", req.Method,
		"url", req.URL.String(),
		"request_id", req.Header.Get("X-Request-ID"))

	resp, err := c.http.Do(req)
	if err != nil {
		classified := errclass.FromError(op, err)
		logging.Logger.Warn("Repository request failed",
			"op", op, "kind", classified.Kind, "error", err)
		return nil, classified
	}

	logging.Logger.Debug("Repository response",
		"op", op,
		"status", resp.StatusCode,
		"duration", time.Since(start))
	return resp, nil
}

// statusError drains a failed response into a classified error
func statusError(op string, resp *http.Response) *errclass.Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	text := strings.TrimSpace(string(body))
	return errclass.FromStatus(op, resp.StatusCode, extractMessage(body), text)
}

// extractMessage returns the server's literal message from a JSON error body
func extractMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	for _, key := range []string{"error", "detail", "message", "non_field_errors"} {
		if msg := messageFrom(payload[key]); msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(string(body))
}

func messageFrom(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := messageFrom(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		if msg := messageFrom(t["message"]); msg != "" {
			return msg
		}
	}
	return ""
}

func decodeJSON(op string, resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errclass.New(errclass.KindServer, op, "malformed response body", err)
	}
	return nil
}

func requireAuth(op string, creds domain.Credentials) error {
	if !creds.IsAuthenticated() {
		return errclass.New(errclass.KindAuth, op, "not authenticated", domain.ErrNotAuthenticated)
	}
	return nil
}
