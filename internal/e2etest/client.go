package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// Client is a JSON API client for end-to-end tests.
type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a cookie-aware JSON client for the given server URL.
func NewClient(url string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		client: &http.Client{Jar: jar},
		url:    url,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return fmt.Errorf("close response body: %w", err)
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return fmt.Errorf("close response body: %w", err)
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// GetJSON issues a GET request and decodes the response body into dst when
// dst is non-nil. It returns the HTTP status code.
func (c *Client) GetJSON(ctx context.Context, urlPath string, dst any) (int, error) {
	return c.do(ctx, http.MethodGet, urlPath, nil, dst)
}

// PostJSON issues a POST request with the given body and decodes the
// response into dst when dst is non-nil. It returns the HTTP status code.
func (c *Client) PostJSON(ctx context.Context, urlPath string, body, dst any) (int, error) {
	return c.do(ctx, http.MethodPost, urlPath, body, dst)
}

// PutJSON issues a PUT request with the given body and decodes the response
// into dst when dst is non-nil. It returns the HTTP status code.
func (c *Client) PutJSON(ctx context.Context, urlPath string, body, dst any) (int, error) {
	return c.do(ctx, http.MethodPut, urlPath, body, dst)
}

// Delete issues a DELETE request and returns the HTTP status code.
func (c *Client) Delete(ctx context.Context, urlPath string) (int, error) {
	return c.do(ctx, http.MethodDelete, urlPath, nil, nil)
}

func (c *Client) do(ctx context.Context, method, urlPath string, body, dst any) (int, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, reader)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Same-origin browser requests carry this header; the server's
	// cross-origin protection checks it on state-changing methods.
	req.Header.Set("Sec-Fetch-Site", "same-origin")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, urlPath, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}
	if dst != nil && len(raw) > 0 {
		if err = json.Unmarshal(raw, dst); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response body %q: %w", raw, err)
		}
	}
	return resp.StatusCode, nil
}
