package adapter

import (
	"errors"
	"fmt"
)

// Status-class sentinels. A [*RemoteError] unwraps to one of these when the
// response status is known.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrTransport wraps every failure to obtain a response at all (DNS,
	// refused connection, timeout, cancelled context).
	ErrTransport = errors.New("server unavailable")

	// ErrEmptyToken is returned when a login or code verification succeeds
	// but carries no token.
	ErrEmptyToken = errors.New("server returned an empty token")

	// ErrCredentialStore wraps credential store failures hit while preparing
	// a request or persisting a login.
	ErrCredentialStore = errors.New("credential store failure")

	// ErrDecodingResponse is returned when a 2xx body cannot be decoded.
	ErrDecodingResponse = errors.New("error decoding response body")
)

// RemoteError is a non-2xx response from the gateway.
//
// Message is the server's "message" field when the body is a JSON error
// document, otherwise the trimmed body or the status text.
type RemoteError struct {
	StatusCode int
	Message    string

	kind error
}

func (e *RemoteError) Error() string {
	if e.kind != nil {
		return fmt.Sprintf("%s: %s", e.kind, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the status-class sentinel, or nil for unmapped statuses.
func (e *RemoteError) Unwrap() error {
	return e.kind
}

// RemoteMessage returns the server-provided message carried by err, if any.
func RemoteMessage(err error) (string, bool) {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message, true
	}
	return "", false
}
