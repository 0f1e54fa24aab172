package rest_err

const (
	ErrBadRequest          = "bad_request"
	ErrUnauthorized        = "unauthorized"
	ErrForbidden           = "forbidden"
	ErrNotFound            = "not_found"
	ErrConflict            = "conflict"
	ErrInternalServerError = "internal_server_error"
	ErrNotImplemented      = "not_implemented"
)
