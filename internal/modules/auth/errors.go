package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidRole        = errors.New("role must be OWNER or CUSTOMER")
	ErrInvalidToken       = errors.New("invalid refresh token")
)
