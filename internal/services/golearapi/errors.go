package golearapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotSupported marks operations the backend does not expose yet.
var ErrNotSupported = errors.New("operation not supported by backend")

// Error describes a failed API call.
//
// Status is the HTTP status returned by the backend, or zero when the call
// never got a response (transport failure, open breaker, cancelled context).
type Error struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Status > 0 {
		return fmt.Sprintf("golearapi %s: status %d: %s", e.Op, e.Status, msg)
	}
	return fmt.Sprintf("golearapi %s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// StatusOf returns the backend status carried by err, or zero.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsUnauthorized reports whether the backend rejected the bearer token.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// IsNotSupported reports whether err came from an operation the backend lacks.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}

// RemoteMessage returns the message the backend sent with a failure, if any.
func RemoteMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status > 0 {
		return apiErr.Message
	}
	return ""
}

func notSupported(op string) error {
	return &Error{Op: op, Status: http.StatusNotImplemented, Message: "not implemented by backend", Err: ErrNotSupported}
}
