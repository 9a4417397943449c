package client

import "errors"

var (
	// ErrUnavailable means the request never got an HTTP response.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnexpectedResponse means the response could not be read as an envelope.
	ErrUnexpectedResponse = errors.New("unexpected response")
	// ErrProfileImage means the selected profile image could not be read.
	ErrProfileImage = errors.New("profile image unreadable")
)
