package cart

import "errors"

var (
	ErrFailedReadCart  = errors.New("failed to read cart")
	ErrFailedWriteCart = errors.New("failed to write cart")
	ErrFailedClearCart = errors.New("failed to clear cart")
)
