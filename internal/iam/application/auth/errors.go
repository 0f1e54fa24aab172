package auth

import "errors"

var (
	ErrNotConfigured   = errors.New("identity provider is not configured")
	ErrMissingToken    = errors.New("bearer token is missing")
	ErrMissingClaims   = errors.New("token is missing required claims")
	ErrMissingIdentity = errors.New("X-User-Id header is missing")
	ErrInvalidIdentity = errors.New("X-User-Id header is not a valid UUID")
)
