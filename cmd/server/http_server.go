package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"okiteru-api/cmd/server/routes"
	"okiteru-api/internal/pkg/logger"
)

const defaultPort = "8000"

type HTTPServer struct {
	server *http.Server
}

func NewHTTPServer() *HTTPServer {
	router := routes.SetupRouter()
	port := viper.GetString("server.http.port")
	if port == "" {
		port = defaultPort
	}

	return &HTTPServer{server: &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}}
}

func (s *HTTPServer) Start() error {
	logger.Use().Info("[SERVER] Iniciando servidor", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			logger.Use().Info("[SERVER] Servidor finalizado.")
			return nil
		}
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	logger.Use().Info("[SERVER] Encerrando servidor...")
	return s.server.Shutdown(ctx)
}
