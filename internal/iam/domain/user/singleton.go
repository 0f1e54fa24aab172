package user

import (
	"errors"
	"sync"

	"gorm.io/gorm"
)

var (
	directory *Directory
	once      sync.Once
	initErr   error

	ErrNotInitialized = errors.New("user directory not initialized")
	ErrNilDatabase    = errors.New("user directory requires a database connection")
)

// Directory agrupa as camadas do diretório de usuários. O Service também é
// usado pelo serviço de autenticação para provisionar no primeiro login.
type Directory struct {
	Repository Repository
	Service    Service
	Controller Controller
}

func newDirectory(db *gorm.DB) (*Directory, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}
	repository := NewRepository(db)
	service := NewService(repository)
	return &Directory{
		Repository: repository,
		Service:    service,
		Controller: NewController(service),
	}, nil
}

// New monta o diretório uma única vez; chamadas seguintes devolvem o mesmo resultado.
func New(db *gorm.DB) (Controller, error) {
	once.Do(func() {
		directory, initErr = newDirectory(db)
	})
	if initErr != nil {
		return nil, initErr
	}
	return directory.Controller, nil
}

func Use() (Controller, error) {
	if directory == nil {
		return nil, ErrNotInitialized
	}
	return directory.Controller, nil
}

func MustUse() *Directory {
	if directory == nil {
		panic(ErrNotInitialized)
	}
	return directory
}
