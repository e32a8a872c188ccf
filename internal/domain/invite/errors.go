package invite

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrAlreadyActivated = errors.New("user already activated an invite code")
	ErrCodeNotFound     = errors.New("invite code not found")
	ErrCodeExhausted    = errors.New("invite code has no uses left")
	ErrCodeExpired      = errors.New("invite code has expired")
	ErrCodegenExhausted = errors.New("could not generate a unique invite code")
)
