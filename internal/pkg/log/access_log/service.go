package access_log

import (
	"context"

	"go.uber.org/zap"

	"okiteru-api/internal/pkg/logger"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Log(ctx context.Context, entry AccessLog) error {
	return s.repo.Save(ctx, entry)
}

// LogAsync persiste a entrada em goroutine destacada do request.
func (s *Service) LogAsync(ctx context.Context, entry AccessLog) {
	if s == nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := s.Log(detached, entry); err != nil {
			logger.Use().Warn("[ACCESS] log de acesso não persistido", zap.Error(err), zap.String("request_id", entry.RequestID))
		}
	}()
}
