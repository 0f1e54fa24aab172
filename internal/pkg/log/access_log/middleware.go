package access_log

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"okiteru-api/internal/iam/identity"
	"okiteru-api/internal/pkg/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "RequestIDKey"
)

// RequestID devolve o id que o Middleware atribuiu à requisição atual.
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// Middleware atribui um id a cada requisição e escreve uma linha no zap.
// Com a persistência habilitada, grava também um AccessLog.
func Middleware(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 100 {
			requestID = ksuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Int("size", c.Writer.Size()),
			zap.Float64("duration_ms", float64(latency.Microseconds())/1000),
			zap.String("ip", c.ClientIP()),
		}
		switch {
		case status >= 500:
			logger.Use().Error("[ACCESS] requisição", fields...)
		case status >= 400:
			logger.Use().Warn("[ACCESS] requisição", fields...)
		default:
			logger.Use().Debug("[ACCESS] requisição", fields...)
		}

		if svc == nil {
			return
		}
		entry := AccessLog{
			RequestID:    requestID,
			Method:       c.Request.Method,
			Path:         c.Request.URL.Path,
			Host:         c.Request.Host,
			StatusCode:   status,
			IP:           c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
			Referer:      c.Request.Referer(),
			ContentType:  c.ContentType(),
			UserLanguage: c.GetHeader("Accept-Language"),
			RequestTime:  start.UTC(),
			LatencyMs:    float64(latency.Microseconds()) / 1000,
		}
		if id, ok := identity.Get(c); ok {
			entry.UserID = &id.UserID
			entry.Identifier = id.Email
		}
		svc.LogAsync(c.Request.Context(), entry)
	}
}
