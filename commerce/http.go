package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// headerToken is the auth header expected by the API. The server uses a
	// bare header literally named "token", not the Authorization scheme.
	headerToken       = "token"
	headerContentType = "Content-Type"
	headerRequestID   = "X-Request-Id"
	headerUserAgent   = "User-Agent"
	contentTypeJSON   = "application/json"
	clientUserAgent   = "e-commerce-go/1.0.0"
)

// doRequest performs an HTTP request and handles common error cases.
// When authed is true, the request fails with ErrNoToken before any network
// I/O if the token source has no token.
func (c *Client) doRequest(ctx context.Context, method, path string, authed bool, body, result any) error {
	var token string
	if authed {
		t, ok := c.tokens.Token()
		if !ok {
			return ErrNoToken
		}
		token = t
	}

	reqURL := c.baseURL + path
	if !strings.HasPrefix(path, "/") {
		reqURL = c.baseURL + "/" + path
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)
	req.Header.Set(headerUserAgent, clientUserAgent)
	if token != "" {
		req.Header.Set(headerToken, token)
	}
	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug("request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		return parseError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}

// get performs an unauthenticated GET request.
func (c *Client) get(ctx context.Context, path string, result any) error {
	return c.doRequest(ctx, http.MethodGet, path, false, nil, result)
}

// getAuthed performs a GET request with the token header.
func (c *Client) getAuthed(ctx context.Context, path string, result any) error {
	return c.doRequest(ctx, http.MethodGet, path, true, nil, result)
}

// post performs an unauthenticated POST request.
func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPost, path, false, body, result)
}

// postAuthed performs a POST request with the token header.
func (c *Client) postAuthed(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPost, path, true, body, result)
}

// putAuthed performs a PUT request with the token header.
func (c *Client) putAuthed(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPut, path, true, body, result)
}

// deleteAuthed performs a DELETE request with the token header.
func (c *Client) deleteAuthed(ctx context.Context, path string, result any) error {
	return c.doRequest(ctx, http.MethodDelete, path, true, nil, result)
}
