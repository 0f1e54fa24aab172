package middleware

import (
	"errors"
	"sync"

	"okiteru-api/internal/iam/application/auth"
)

var (
	middlewareInstance Middleware
	once               sync.Once
	initErr            error
	ErrNotInitialized  = errors.New("middleware not initialized")
)

type UseMiddleware struct {
	Middleware Middleware
	Mode       Mode
}

var modeInstance Mode

// New inicializa o singleton do middleware sobre o serviço de autenticação.
func New(service auth.Service, mode Mode) (Middleware, error) {
	once.Do(func() {
		if service == nil {
			initErr = errors.New("auth service cannot be nil")
			return
		}
		modeInstance = mode
		middlewareInstance = NewMiddleware(service, mode)
	})

	return middlewareInstance, initErr
}

func Use() (Middleware, error) {
	if middlewareInstance == nil {
		return nil, ErrNotInitialized
	}
	return middlewareInstance, nil
}

// MustUse entra em pânico se o singleton não foi inicializado.
func MustUse() *UseMiddleware {
	if middlewareInstance == nil {
		panic(ErrNotInitialized)
	}
	return &UseMiddleware{
		Middleware: middlewareInstance,
		Mode:       modeInstance,
	}
}
