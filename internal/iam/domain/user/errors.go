package user

import "errors"

var (
	ErrNotFound             = errors.New("user not found")
	ErrExternalIDDuplicated = errors.New("cognito user id already exists")
	ErrEmailDuplicated      = errors.New("email already exists")
	ErrInvalidInput         = errors.New("invalid input data")
)
