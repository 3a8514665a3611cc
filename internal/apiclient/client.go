package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenSource supplies the bearer token for authenticated calls.
// An empty string means no Authorization header is sent.
type TokenSource interface {
	Token() string
}

// Client is the shared HTTP core behind every resource client. It owns
// the base URL, the http.Client, request tracing and logging. Each call
// is a single request/response exchange with no caching and no retry;
// errors propagate unmodified as *APIError or transport errors.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	log     zerolog.Logger
}

// New creates a Client rooted at baseURL (e.g. "http://localhost:8080/api").
func New(baseURL string, timeout time.Duration, tokens TokenSource, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// Sessions returns the session resource client.
func (c *Client) Sessions() *SessionClient { return &SessionClient{c: c} }

// Teachers returns the teacher resource client.
func (c *Client) Teachers() *TeacherClient { return &TeacherClient{c: c} }

// Users returns the user resource client.
func (c *Client) Users() *UserClient { return &UserClient{c: c} }

// Auth returns the auth resource client.
func (c *Client) Auth() *AuthClient { return &AuthClient{c: c} }

// do issues one request. body (if non-nil) is JSON-encoded; out (if
// non-nil) receives the decoded response body. Non-2xx statuses are
// returned as *APIError with the server message when one was sent.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("Request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID).
		Msg("Request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
			RequestID:  requestID,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readErrorMessage extracts {"message": ...} from an error body.
// Anything unparseable is returned verbatim (truncated) so callers still
// see what the server said.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(raw))
}
