package ampache

import (
	"fmt"
)

// Error represents a failure explicitly reported by the Ampache server
// inside the XML stream.
//
// The Error type carries the server's numeric code and message. It
// implements error, and errors.Is matches two *Error values by code.
// A protocol error never invalidates the session by itself; the caller
// decides whether to retry, correct the request, or re-handshake.
type Error struct {
	Code    int    // Ampache error code
	Message string // Error message from the server
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("ampache: error %d: %s", e.Code, e.Message)
}

// Is checks if the target error is an Ampache error with the same code.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ErrCodeInvalidHandshake is reported when the handshake token is
// rejected or the session has expired. Callers seeing this code on an
// established session should re-handshake.
const ErrCodeInvalidHandshake = 4710

// UnknownEntityError reports a request to materialize an entity kind
// the library does not recognize. This is a bug in the calling code,
// not a server condition, and is raised before any document scanning.
type UnknownEntityError struct {
	Kind string // the unrecognized kind name
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("ampache: unknown entity kind %q", e.Kind)
}

// MissingFieldError reports a response that lacks a field the protocol
// guarantees, such as a handshake reply without an auth token.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("ampache: response missing required field %q", e.Field)
}

// MalformedResponseError reports a response the client cannot
// interpret at all: unparsable XML, or protocol invariant violations
// such as multiple error elements in one response. The failure is
// fatal for that call only; the session remains usable.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("ampache: malformed response: %s", e.Reason)
}
