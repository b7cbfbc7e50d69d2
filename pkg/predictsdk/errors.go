package predictsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned in the "error" field of API error bodies.
const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeUnauthorized        = "unauthorized"
	ErrorCodeForbidden           = "forbidden"
	ErrorCodeNotFound            = "not_found"
	ErrorCodeConflict            = "conflict"
	ErrorCodeRateLimited         = "rate_limited"
	ErrorCodeServerError         = "server_error"
	ErrorCodeInvalidToken        = "invalid_token"
	ErrorCodeTokenUsed           = "token_used"
	ErrorCodeTokenExpired        = "token_expired"
	ErrorCodeInvalidConfidence   = "invalid_confidence"
	ErrorCodeAllocationExhausted = "allocation_exhausted"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
// Bodies that are not JSON error documents fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err == nil && apiErr.Code != "" {
		return apiErr
	}

	apiErr.Code = ErrorCodeServerError
	apiErr.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	return apiErr
}
