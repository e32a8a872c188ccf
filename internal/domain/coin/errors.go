package coin

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrUnknownEvent    = errors.New("unknown catalog event")
	ErrInternal        = errors.New("internal error")
)
