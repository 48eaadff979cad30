// Package remote implements the four-verb Ultimate 64 HTTP surface the
// core relies on: pause, resume, read, write. Client is an explicit value
// threaded through every call site — no package-level HTTP session.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultTimeout is the absolute per-request deadline (spec.md §5: "≥5s
// per request" so a lost Ultimate 64 cannot hang a capture indefinitely).
const DefaultTimeout = 5 * time.Second

// Client talks to one Ultimate 64 at a fixed base URL.
type Client struct {
	HTTP     *http.Client
	BaseURL  string
	Password string
	Timeout  time.Duration
}

// New builds a Client for the machine at host (e.g. "192.168.1.100" or
// "192.168.1.100:80"). An empty password omits the X-Password header.
func New(host, password string) *Client {
	return &Client{
		HTTP:     &http.Client{},
		BaseURL:  "http://" + host,
		Password: password,
		Timeout:  DefaultTimeout,
	}
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if c.Password != "" {
		req.Header.Set("X-Password", c.Password)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.HTTP.Do(req)
}

// Pause freezes the machine. A non-200 response is non-fatal: the
// machine may already be paused (spec.md §4.2).
func (c *Client) Pause(ctx context.Context) bool {
	resp, err := c.do(ctx, http.MethodPut, "/v1/machine:pause", nil, nil, "")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Resume unfreezes the machine. Must be called on every exit path from a
// capture, success or failure (spec.md §4.2, §4.10).
func (c *Client) Resume(ctx context.Context) bool {
	resp, err := c.do(ctx, http.MethodPut, "/v1/machine:resume", nil, nil, "")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Read fetches exactly length bytes from addr via DMA. A non-200 response
// or short body is a fatal read-failure error.
func (c *Client) Read(ctx context.Context, addr uint32, length int) ([]byte, error) {
	q := url.Values{
		"address": {fmt.Sprintf("%X", addr)},
		"length":  {strconv.Itoa(length)},
	}
	resp, err := c.do(ctx, http.MethodGet, "/v1/machine:readmem", q, nil, "")
	if err != nil {
		return nil, fmt.Errorf("read $%04X+%d: %w", addr, length, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("read $%04X+%d: non-200 status %d", addr, length, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read $%04X+%d: %w", addr, length, err)
	}
	if len(data) != length {
		return nil, fmt.Errorf("read $%04X+%d: got %d bytes", addr, length, len(data))
	}
	return data, nil
}

// Write stores data at addr via DMA. A non-200 response or transport
// error is a fatal error (spec.md §4.2).
func (c *Client) Write(ctx context.Context, addr uint32, data []byte) error {
	q := url.Values{"address": {fmt.Sprintf("%X", addr)}}
	resp, err := c.do(ctx, http.MethodPost, "/v1/machine:writemem", q, data, "application/octet-stream")
	if err != nil {
		return fmt.Errorf("write $%04X+%d: %w", addr, len(data), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("write $%04X+%d: non-200 status %d", addr, len(data), resp.StatusCode)
	}
	return nil
}
