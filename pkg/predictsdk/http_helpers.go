package predictsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an HTTP request with the SDKClient's HTTP client.
// A non-nil payload is sent as a JSON body.
func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	payload any,
	headers map[string]string,
) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// doAuthRequest performs a request carrying the session's Bearer token.
func (s *Session) doAuthRequest(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	return s.client.doRequest(ctx, method, path, payload, map[string]string{
		"Authorization": "Bearer " + s.Token(),
	})
}

// decodeJSON decodes a JSON response into target, or returns an *APIError
// when the status is not the expected one.
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

// checkStatus returns an *APIError unless the response has the expected
// status. The body is discarded.
func checkStatus(resp *http.Response, expectedStatus int) error {
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}

	return nil
}
