package client

import "errors"

var ErrUnavailable = errors.New("server unavailable")

// RemoteError is a failure reported by the server. It unwraps to the
// matching sentinel of package common.
type RemoteError struct {
	Sentinel error
	Message  string
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Sentinel
}
