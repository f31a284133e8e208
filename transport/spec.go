package transport

import (
	"fmt"
	"net/http"

	"github.com/weaveworks/kubeapi"
)

// Spec describes one HTTP call against the API server. Specs are
// constructed per call and discarded after use.
type Spec struct {
	Method  string
	Path    string
	Body    kubeapi.Document  // optional, JSON-encoded when present
	Headers map[string]string // optional caller-supplied headers
	// Suppress disables the APIError normally returned for a non-2xx
	// status, turning it into a plain Outcome the caller inspects by
	// status code.
	Suppress bool
}

// Outcome is everything a caller may want to know about a response.
type Outcome struct {
	StatusCode int
	Status     string
	Header     http.Header
	RawBody    []byte
	// Body is the decoded JSON object, when the response was one.
	Body kubeapi.Document
}

// APIError is returned for a non-2xx status. It is a value to branch
// on, retrievable with errors.Cause(err), not a fault in the client;
// the server answered, it just said no.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("%s (%s)", err.Status, err.Body)
}

// IsMissing: the resource (or the route) isn't there.
func (err *APIError) IsMissing() bool {
	return err.StatusCode == http.StatusNotFound
}

// IsUnavailable: the API service itself is having trouble.
func (err *APIError) IsUnavailable() bool {
	switch err.StatusCode {
	case 502, 503, 504:
		return true
	}
	return false
}
