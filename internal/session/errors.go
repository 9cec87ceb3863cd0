package session

import "errors"

// ErrClosed is returned by Login after Close.
var ErrClosed = errors.New("session controller is closed")
