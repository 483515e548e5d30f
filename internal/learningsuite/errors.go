package learningsuite

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when a successful response carries a body
// that is not valid JSON.
var ErrMalformedResponse = errors.New("malformed response body")

// APIError is a non-2xx answer from the LearningSuite API. Body is the raw
// response text; it is never parsed.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error %d: %s", e.StatusCode, e.Body)
}

// ErrMissingPathParameter is returned before any request is sent when a path
// template variable has no value.
var ErrMissingPathParameter = errors.New("missing path parameter")
