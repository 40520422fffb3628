package fetch

import (
	"errors"
	"fmt"
)

// Common fetch errors
var (
	ErrBadStatus  = errors.New("non-success HTTP status")
	ErrTransport  = errors.New("transport failure")
	ErrParseError = errors.New("failed to parse response body")
)

// FetchError carries the URL and cause of a failed page retrieval.
// A fetch failure is fatal for the crawl that issued it; callers are
// expected to propagate it, not recover.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches any *FetchError, or the underlying sentinel
func (e *FetchError) Is(target error) bool {
	if _, ok := target.(*FetchError); ok {
		return true
	}
	return errors.Is(e.Err, target)
}
