// Package backend implements the domain clients for the persistence backend:
// a REST CRUD service holding orders, routes, users, cars and work areas.
// Non-2xx responses carry {"error": "..."}; the client surfaces that string,
// or "HTTP <status>" when the body has none.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

const serviceName = "persistence backend"

// Client is the shared HTTP plumbing behind the order, route and courier
// domain clients.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates the shared backend client. httpClient may be nil, in
// which case http.DefaultClient is used.
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

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// send executes the request and decodes a JSON response into out when out is
// non-nil. Transport failures and non-2xx responses come back as
// *ports.UpstreamError.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
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
		return &ports.UpstreamError{
			Service: serviceName,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("decode response: %s", err),
		}
	}
	return nil
}

// errorMessage extracts the backend's error string from a non-2xx response.
func errorMessage(resp *http.Response) string {
	var decoded struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err == nil && decoded.Error != "" {
		return decoded.Error
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}

// isNotFound reports whether the error is an upstream 404.
func isNotFound(err error) bool {
	var upstream *ports.UpstreamError
	return errors.As(err, &upstream) && upstream.Status == http.StatusNotFound
}
