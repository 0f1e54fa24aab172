package report

import (
	"errors"
	"sync"

	"gorm.io/gorm"
)

var (
	store   *Store
	once    sync.Once
	initErr error

	ErrNotInitialized = errors.New("report store not initialized")
	ErrNilDatabase    = errors.New("report store requires a database connection")
)

// Store agrupa as camadas dos relatórios do dia anterior.
type Store struct {
	Repository Repository
	Service    Service
	Controller Controller
}

func newStore(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}
	repository := NewRepository(db)
	service := NewService(repository)
	return &Store{
		Repository: repository,
		Service:    service,
		Controller: NewController(service),
	}, nil
}

func New(db *gorm.DB) (Controller, error) {
	once.Do(func() {
		store, initErr = newStore(db)
	})
	if initErr != nil {
		return nil, initErr
	}
	return store.Controller, nil
}

func Use() (Controller, error) {
	if store == nil {
		return nil, ErrNotInitialized
	}
	return store.Controller, nil
}

func MustUse() *Store {
	if store == nil {
		panic(ErrNotInitialized)
	}
	return store
}
