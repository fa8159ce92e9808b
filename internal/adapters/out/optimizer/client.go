// Package optimizer implements ports.OptimizerClient against the route
// optimization backend. The backend's compute endpoint is loose about field
// names (optimal_order vs order, total_distance_km vs distance_km) and about
// sequence item shapes (raw identifiers vs geocoded objects); this package
// normalizes all variants into one result type at the boundary so the
// application layer never sees them.
package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

const serviceName = "optimization backend"

// Client implements ports.OptimizerClient.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates the optimizer client. httpClient may be nil, in which
// case http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}, nil
}

// send executes a JSON request and decodes the response into out. Transport
// failures and non-2xx responses come back as *ports.UpstreamError with the
// backend's {"error": "..."} message when present.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ports.UpstreamError{Service: serviceName, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ports.UpstreamError{
			Service: serviceName,
			Status:  resp.StatusCode,
			Message: errorMessage(resp),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return malformed(resp.StatusCode, fmt.Sprintf("decode response: %s", err))
	}
	return nil
}

func errorMessage(resp *http.Response) string {
	var decoded struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err == nil && decoded.Error != "" {
		return decoded.Error
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}

// malformed reports a 2xx response whose body does not match the contract.
func malformed(status int, message string) *ports.UpstreamError {
	return &ports.UpstreamError{Service: serviceName, Status: status, Message: message}
}
