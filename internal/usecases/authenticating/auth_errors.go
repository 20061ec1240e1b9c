package authenticating

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrMissingSubject = errors.New("token has no user id")
	ErrMissingSecret  = errors.New("auth secret is not configured")
)
