package kubeapi

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failures are divided into a small number of categories, essentially
// distinguished by what the caller can do about them: fix their
// configuration, or look at the network. Non-2xx API responses are not
// errors of either category; they come back as inspectable outcomes
// (see the transport package).
type ErrorType string

const (
	// Config: a precondition failed before any network call was made —
	// a malformed descriptor, or a document missing a required field.
	Config ErrorType = "config"
	// Transport: the HTTP round trip itself failed.
	Transport ErrorType = "transport"
)

type Error struct {
	Type ErrorType
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// ConfigErrorf makes a precondition-failure error.
func ConfigErrorf(format string, args ...interface{}) *Error {
	return &Error{Type: Config, Err: fmt.Errorf(format, args...)}
}

// TransportError wraps a network-level failure.
func TransportError(err error) *Error {
	return &Error{Type: Transport, Err: err}
}

func typeOf(err error) ErrorType {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Type
	}
	return ""
}

func IsConfig(err error) bool    { return typeOf(err) == Config }
func IsTransport(err error) bool { return typeOf(err) == Transport }
