// Package webhook posts registration payloads to the external automation endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrNoURL = errors.New("webhook url is empty")

// StatusError is returned for non-2xx replies.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook: status %d: %s", e.Code, e.Body)
}

// Client sends JSON to one fixed URL.
type Client struct {
	url    string
	client *http.Client
}

func New(url string, timeout time.Duration) *Client {
	return &Client{url: url, client: &http.Client{Timeout: timeout}}
}

// PostJSON sends body as JSON. A 2xx reply counts as success even when its body is
// empty or not JSON; out is only filled when the reply decodes.
func (c *Client) PostJSON(ctx context.Context, body, out any) error {
	if c.url == "" {
		return ErrNoURL
	}
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook post: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(raw))}
	}
	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		_ = json.Unmarshal(raw, out)
	}
	return nil
}

// CloseIdle drops pooled connections.
func (c *Client) CloseIdle() { c.client.CloseIdleConnections() }
