// Package imghost relays uploaded image payloads to the third-party image
// hosting API and passes its response through verbatim.
package imghost

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Client posts upload payloads to the configured hosting endpoint. It adds no
// authentication of its own; the API key travels inside the payload exactly as
// the storefront sent it.
type Client struct {
	uploadURL  string
	httpClient *http.Client
}

// NewClient creates a relay client for the given upload endpoint.
func NewClient(uploadURL string) *Client {
	return &Client{
		uploadURL:  uploadURL,
		httpClient: &http.Client{},
	}
}

// Relay forwards the raw request body to the image host, preserving the
// Content-Type, and returns the upstream status code and response body
// verbatim. The caller's context is the only bound on the call.
func (c *Client) Relay(ctx context.Context, contentType string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to reach image host: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read image host response: %w", err)
	}

	return resp.StatusCode, data, nil
}
