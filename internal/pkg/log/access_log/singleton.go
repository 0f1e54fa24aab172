package access_log

import (
	"errors"
	"sync"

	"gorm.io/gorm"
)

var (
	instance *Service
	once     sync.Once
	initErr  error

	ErrLogDisabled = errors.New("access log disabled in config")
)

type Config struct {
	Enabled bool
}

// New inicializa a persistência do access log uma única vez.
func New(db *gorm.DB, cfg Config) (*Service, error) {
	once.Do(func() {
		if !cfg.Enabled {
			initErr = ErrLogDisabled
			return
		}
		if db == nil {
			initErr = errors.New("database required for access log")
			return
		}
		instance = NewService(NewRepository(db))
	})
	return instance, initErr
}

// MustUse retorna a instância; nil quando a persistência está desligada.
func MustUse() *Service {
	return instance
}
