package services

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserTaken          = errors.New("username or email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrGameNotFound       = errors.New("game not found")
	ErrGameExists         = errors.New("game already exists")
)
