package services

import "errors"

var ErrEmptyToken = errors.New("empty token")
