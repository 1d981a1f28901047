package teamsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Description)
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsBadRequest(err error) bool    { return statusOf(err) == http.StatusBadRequest }
func IsUnauthorized(err error) bool  { return statusOf(err) == http.StatusUnauthorized }
func IsForbidden(err error) bool     { return statusOf(err) == http.StatusForbidden }
func IsNotFound(err error) bool      { return statusOf(err) == http.StatusNotFound }
func IsConflict(err error) bool      { return statusOf(err) == http.StatusConflict }
func IsUnprocessable(err error) bool { return statusOf(err) == http.StatusUnprocessableEntity }
func IsRateLimited(err error) bool   { return statusOf(err) == http.StatusTooManyRequests }

// parseErrorResponse turns an error body into an *APIError, falling back to
// the status text when the body is not the expected JSON.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        "server_error",
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
