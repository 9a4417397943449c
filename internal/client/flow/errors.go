package flow

import "errors"

var (
	ErrIllegalTransition = errors.New("illegal auth mode transition")
	ErrMissingHandoff    = errors.New("missing email handoff")
)
