package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameAlreadyUsed = errors.New("username already used")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredential   = errors.New("invalid credential")
)
