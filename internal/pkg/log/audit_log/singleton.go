package audit_log

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"okiteru-api/internal/pkg/logger"
)

var (
	instance *Service
	once     sync.Once
	initErr  error

	ErrLogDisabled = errors.New("audit log disabled in config")
)

type Config struct {
	Enabled bool
}

func New(db *gorm.DB, cfg Config) (*Service, error) {
	once.Do(func() {
		if !cfg.Enabled {
			initErr = ErrLogDisabled
			return
		}
		if db == nil {
			initErr = errors.New("database required for audit log")
			return
		}
		instance = NewService(NewRepository(db))
	})
	return instance, initErr
}

// MustUse retorna a instância; nil quando a auditoria está desligada.
func MustUse() *Service {
	return instance
}

// LogAsync registra auditoria em goroutine destacada. Sem instância é no-op,
// mas a ação ainda aparece no log da aplicação.
func LogAsync(ctx context.Context, entry AuditLog) {
	logger.Use().Info("[AUDIT]",
		zap.String("domain", entry.Domain),
		zap.String("action", entry.Action),
		zap.Bool("success", entry.Success),
		zap.String("request_id", entry.RequestID),
	)
	if instance == nil {
		return
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		if err := instance.Log(detached, entry); err != nil {
			logger.Use().Warn("[AUDIT] log de auditoria não persistido", zap.Error(err), zap.String("request_id", entry.RequestID))
		}
	}()
}
