package report

import "errors"

var (
	ErrNotFound       = errors.New("previous day report not found")
	ErrForbidden      = errors.New("report belongs to another user")
	ErrDateDuplicated = errors.New("a report already exists for this date")
	ErrUnknownUser    = errors.New("user not found")
	ErrInvalidInput   = errors.New("invalid input data")
)
