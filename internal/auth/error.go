package auth

import "errors"

var (
	ErrLoginFailed        = errors.New("login failed")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrRenewalFailed      = errors.New("session renewal failed")
)
