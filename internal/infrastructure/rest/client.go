// Package rest implements the resource clients over the support-desk REST
// backend. Every failure is normalized to a state.Fault: a structured
// `{err}` body becomes a known fault carrying the server's message, and
// anything else (transport failure, unexpected shape) an unknown fault.
// There is no retry and no backoff.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/supportdesk/deskclient/internal/core/state"
)

// Client is the shared HTTP layer under the per-resource clients.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client for the backend at baseURL. A zero timeout
// means calls are never timed out locally; a hung call then stays pending
// until the server answers or the context is cancelled.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// errBody is the structured error envelope the backend uses on failure.
type errBody struct {
	Err string `json:"err"`
}

// do performs one call. A non-empty token is attached as a bearer
// credential. When out is non-nil the 2xx response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, body any, token string, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return state.UnknownFault()
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return state.UnknownFault()
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("backend request")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("path", path).Msg("backend transport failure")
		return state.UnknownFault()
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return state.UnknownFault()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errBody
		if json.Unmarshal(raw, &eb) == nil && eb.Err != "" {
			return state.ServerFault(eb.Err)
		}
		return state.UnknownFault()
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return state.UnknownFault()
		}
	}
	return nil
}
