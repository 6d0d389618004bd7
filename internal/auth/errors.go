package auth

import "errors"

var (
	ErrNoUser         = errors.New("no user logged in")
	ErrAlreadyStarted = errors.New("session manager already started")
)
