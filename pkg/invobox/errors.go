package invobox

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a single error item from the Invobox API.
type APIError struct {
	Title  string `json:"title"  yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail == "" {
		return e.Title
	}

	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

// ResponseError represents a non-success response from the API. It carries the
// HTTP status and whatever detail the response body provided.
type ResponseError struct {
	StatusCode int        `json:"-"                yaml:"-"`
	Errors     []APIError `json:"errors,omitempty" yaml:"errors,omitempty"`
	// Body holds the raw response body when it did not parse as the API's
	// structured error shape.
	Body string `json:"-" yaml:"-"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	detail := e.Body

	switch len(e.Errors) {
	case 0:
	case 1:
		detail = e.Errors[0].Error()
	default:
		detail = fmt.Sprintf("multiple errors: %v", e.Errors)
	}

	if strings.TrimSpace(detail) == "" {
		return fmt.Sprintf("API request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, detail)
}

// FirstError returns the first structured error item or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// ParseResponseError builds a ResponseError from a non-success response body.
// The body is parsed as the API's structured error shape when possible and
// carried verbatim otherwise.
func ParseResponseError(statusCode int, body []byte) *ResponseError {
	respErr := &ResponseError{StatusCode: statusCode}

	if len(body) > 0 {
		if err := json.Unmarshal(body, respErr); err != nil || len(respErr.Errors) == 0 {
			respErr.Errors = nil
			respErr.Body = string(body)
		}
	}

	return respErr
}

// LocationPattern documents the shape a creation response's Location header
// must have for the new entity's identifier to be extractable.
const LocationPattern = "scheme://anystring/123456.json"

// InvalidLocationError reports a creation response whose Location header does
// not end in a numeric identifier.
type InvalidLocationError struct {
	Location string
}

// Error implements the error interface.
func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("cannot parse new entity id from location %q: expected format %q", e.Location, LocationPattern)
}

// Invalid-argument errors, raised synchronously before any network call.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrAccountRequired     = errors.New("account slug is required")
	ErrCredentialsRequired = errors.New("credentials are required: set AccessToken or Email and APIKey")
	ErrPathRequired        = errors.New("path is required")
	ErrEntityRequired      = errors.New("entity is required")
	ErrPageOutOfRange      = errors.New("page must be 1 or greater")
	ErrIDOutOfRange        = errors.New("id must be 1 or greater")
	ErrNoMoreItems         = errors.New("no more items")
)

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsUnprocessable checks if the error is a 422 response, the API's shape for
// validation failures.
func IsUnprocessable(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity)
}

// IsRateLimited checks if the error is a 429 response.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, statusCode int) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == statusCode
	}

	return false
}
