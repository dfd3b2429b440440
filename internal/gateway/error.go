package gateway

import "errors"

// ErrSessionExpired signals that renewal failed and the local session
// was cleared; callers route the shopper to the login entry point.
var ErrSessionExpired = errors.New("session expired")

const genericErrorMessage = "something went wrong"

// Error is the single shape every failed request is normalized into
// before it reaches orchestration logic.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
