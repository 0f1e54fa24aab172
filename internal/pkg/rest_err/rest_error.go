package rest_err

import "net/http"

// RestErr é o corpo JSON de toda resposta de erro. Err traz o tipo para
// máquinas; Message, o detalhe legível.
type RestErr struct {
	Message string   `json:"message"`
	Err     string   `json:"error"`
	Code    int      `json:"code"`
	Causes  []Causes `json:"causes,omitempty"`
}

func (r *RestErr) Error() string {
	return r.Message
}

func NewRestErr(message, err string, code int, causes []Causes) *RestErr {
	return &RestErr{
		Message: message,
		Err:     err,
		Code:    code,
		Causes:  causes,
	}
}

func NewBadRequestError(message string) *RestErr {
	return NewRestErr(message, ErrBadRequest, http.StatusBadRequest, nil)
}

func NewBadRequestValidationError(message string, causes []Causes) *RestErr {
	return NewRestErr(message, ErrBadRequest, http.StatusBadRequest, causes)
}

func NewUnauthorizedError(message string) *RestErr {
	return NewRestErr(message, ErrUnauthorized, http.StatusUnauthorized, nil)
}

func NewForbiddenError(message string) *RestErr {
	return NewRestErr(message, ErrForbidden, http.StatusForbidden, nil)
}

func NewNotFoundError(message string) *RestErr {
	return NewRestErr(message, ErrNotFound, http.StatusNotFound, nil)
}

func NewConflictValidationError(message string, causes []Causes) *RestErr {
	return NewRestErr(message, ErrConflict, http.StatusConflict, causes)
}

func NewInternalServerError(message string, causes []Causes) *RestErr {
	return NewRestErr(message, ErrInternalServerError, http.StatusInternalServerError, causes)
}

func NewNotImplementedError(message string) *RestErr {
	return NewRestErr(message, ErrNotImplemented, http.StatusNotImplemented, nil)
}
