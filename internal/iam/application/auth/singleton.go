package auth

import (
	"errors"
	"sync"

	"okiteru-api/internal/iam/domain/user"
)

var (
	serviceInstance   Service
	once              sync.Once
	initErr           error
	ErrNotInitialized = errors.New("auth service not initialized")
)

// New inicializa o serviço de autenticação sobre o diretório de usuários.
func New(verifier TokenVerifier, users user.Service) (Service, error) {
	once.Do(func() {
		if users == nil {
			initErr = errors.New("user service cannot be nil")
			return
		}
		serviceInstance = NewService(verifier, users)
	})
	return serviceInstance, initErr
}

func Use() (Service, error) {
	if serviceInstance == nil {
		return nil, ErrNotInitialized
	}
	return serviceInstance, nil
}

func MustUse() Service {
	if serviceInstance == nil {
		panic(ErrNotInitialized)
	}
	return serviceInstance
}
