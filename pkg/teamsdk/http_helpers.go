package teamsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// UserIDHeader carries the acting user's id, as set by the gateway.
const UserIDHeader = "X-User-ID"

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest sends method path with an optional JSON body. userID, when set,
// is sent as the identity header.
func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	body any,
	userID string,
) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// decodeJSON reads resp and decodes it into target when the status matches,
// or returns an *APIError otherwise.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// call is doRequest followed by decodeJSON.
func call[T any](ctx context.Context, c *SDKClient, method, path string, body any, userID string, expected int) (*T, error) {
	resp, err := c.doRequest(ctx, method, path, body, userID)
	if err != nil {
		return nil, err
	}

	var out T
	if err := decodeJSON(resp, &out, expected); err != nil {
		return nil, err
	}
	return &out, nil
}
