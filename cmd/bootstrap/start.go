package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.ngrok.com/ngrok/v2"
	"gorm.io/gorm"

	"okiteru-api/cmd/server"
	"okiteru-api/internal/attendance/domain/report"
	"okiteru-api/internal/iam/application/auth"
	"okiteru-api/internal/iam/domain/user"
	"okiteru-api/internal/iam/middleware"
	"okiteru-api/internal/infra/database/postgres"
	"okiteru-api/internal/infra/jwt"
	"okiteru-api/internal/pkg/log/access_log"
	"okiteru-api/internal/pkg/log/audit_log"
	"okiteru-api/internal/pkg/logger"
)

// Application armazena as dependências centrais da aplicação.
type Application struct {
	server *server.HTTPServer
}

// Environment carrega .env (opcional), configs.json (opcional) e variáveis de
// ambiente. COGNITO_USER_POOL_ID sobrescreve cognito.user_pool_id, e assim por diante.
func Environment() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("WARNING: falha ao ler .env: %v\n", err)
	}

	setDefaults()

	viper.SetConfigName("configs")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/okiteru/")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	bindLegacyEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error in configuration file: %w", err))
		}
	}
}

func setDefaults() {
	viper.SetDefault("app.name", "okiteru-api")
	viper.SetDefault("app.env", "dev")
	viper.SetDefault("server.http.port", "8000")
	viper.SetDefault("server.cors_origins", []string{"http://localhost:3000", "http://localhost:3001"})
	viper.SetDefault("databases.postgres.ssl_mode", "disable")
	viper.SetDefault("cognito.region", "ap-northeast-1")
	viper.SetDefault("auth.mode", string(middleware.ModeCognito))
	viper.SetDefault("auth.require_manager", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.max_age_days", 7)
	viper.SetDefault("log.access.enabled", true)
	viper.SetDefault("log.audit.enabled", true)
}

// bindLegacyEnv aceita os nomes de variáveis usados pelo deploy existente.
func bindLegacyEnv() {
	_ = viper.BindEnv("databases.postgres.url", "DATABASES_POSTGRES_URL", "DATABASE_URL")
	_ = viper.BindEnv("cognito.region", "COGNITO_REGION", "AWS_REGION")
	_ = viper.BindEnv("server.cors_origins", "SERVER_CORS_ORIGINS", "CORS_ORIGINS")
}

// InitLogger configura o zap global a partir de log.*.
func InitLogger() error {
	_, err := logger.Init(logger.Config{
		Level:      viper.GetString("log.level"),
		Dev:        viper.GetBool("log.dev") || viper.GetString("app.env") == "dev",
		File:       viper.GetString("log.file"),
		MaxAgeDays: viper.GetInt("log.max_age_days"),
	})
	return err
}

func initVerifier() *jwt.Verifier {
	verifier := jwt.Init(jwt.Config{
		Region:     viper.GetString("cognito.region"),
		UserPoolID: viper.GetString("cognito.user_pool_id"),
		ClientID:   viper.GetString("cognito.client_id"),
		JWKSURL:    viper.GetString("cognito.jwks_url"),
	})
	if !verifier.Configured() {
		logger.Use().Warn("[BOOTSTRAP-TOKEN] Cognito não configurado; requisições Bearer responderão 501")
	}
	return verifier
}

func initLogs(db *gorm.DB) {
	if _, err := access_log.New(db, access_log.Config{Enabled: viper.GetBool("log.access.enabled")}); err != nil {
		logger.Use().Info("[BOOTSTRAP-LOG] access log sem persistência", zap.Error(err))
	}
	if _, err := audit_log.New(db, audit_log.Config{Enabled: viper.GetBool("log.audit.enabled")}); err != nil {
		logger.Use().Info("[BOOTSTRAP-LOG] audit log sem persistência", zap.Error(err))
	}
}

func initDomains(db *gorm.DB, verifier *jwt.Verifier) error {
	if _, err := user.New(db); err != nil {
		return fmt.Errorf("user: %w", err)
	}
	if _, err := report.New(db); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	authService, err := auth.New(verifier, user.MustUse().Service)
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	mode, err := middleware.ParseMode(viper.GetString("auth.mode"))
	if err != nil {
		return err
	}
	if mode == middleware.ModeHeader {
		if viper.GetString("app.env") == "prod" {
			return errors.New("auth.mode=header não é permitido com app.env=prod")
		}
		logger.Use().Warn("[BOOTSTRAP-AUTH] modo header ativo: X-User-Id é aceito sem verificação")
	}
	if _, err := middleware.New(authService, mode); err != nil {
		return fmt.Errorf("middleware: %w", err)
	}
	return nil
}

// New prepara a aplicação (config, log, db, di) e retorna a instância.
func New() (*Application, error) {
	Environment()
	if err := InitLogger(); err != nil {
		return nil, fmt.Errorf("[BOOTSTRAP-LOG] falha ao iniciar logger: %w", err)
	}
	log := logger.Use()
	log.Info("[BOOTSTRAP-ENV] Configuração de ambiente carregada.", zap.String("env", viper.GetString("app.env")))

	verifier := initVerifier()
	log.Info("[BOOTSTRAP-TOKEN] Verificador de token inicializado.", zap.Bool("configured", verifier.Configured()))

	db := postgres.InitPostgres()
	log.Info("[BOOTSTRAP-DATABASE] Conexão com o banco de dados inicializada.")

	initLogs(db)
	if err := initDomains(db, verifier); err != nil {
		return nil, fmt.Errorf("[BOOTSTRAP-DI] %w", err)
	}
	log.Info("[BOOTSTRAP-DI] Contêiner de dependências inicializado.")

	return &Application{
		server: server.NewHTTPServer(),
	}, nil
}

func startNgrokForward(ctx context.Context, token string, port int) error {
	log := logger.Use()

	agent, err := ngrok.NewAgent(
		ngrok.WithAuthtoken(token),
		ngrok.WithAutoConnect(true),
	)
	if err != nil {
		return fmt.Errorf("erro criando ngrok Agent: %w", err)
	}

	upstream := ngrok.WithUpstream(fmt.Sprintf("http://127.0.0.1:%d", port))
	endpoint, err := agent.Forward(ctx, upstream)
	if err != nil {
		if ngErr, ok := err.(ngrok.Error); ok {
			log.Error("[NGROK] erro ao criar forward", zap.String("code", ngErr.Code()), zap.Error(ngErr))
		}
		return fmt.Errorf("erro iniciando ngrok Forward: %w", err)
	}

	log.Info("[NGROK] Endpoint online", zap.Any("url", endpoint.URL()))

	<-ctx.Done()

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := endpoint.CloseWithContext(closeCtx); err != nil {
		return fmt.Errorf("erro ao fechar endpoint ngrok: %w", err)
	}
	if err := agent.Disconnect(); err != nil {
		return fmt.Errorf("erro ao desconectar ngrok Agent: %w", err)
	}
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	log := logger.Use()
	defer logger.Sync()

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	if viper.GetBool("dev.ngrok.live") {
		token := viper.GetString("dev.ngrok.token")
		if token == "" {
			log.Warn("[NGROK] dev.ngrok.live=true mas dev.ngrok.token está vazio; ngrok NÃO será iniciado")
		} else {
			port := viper.GetInt("server.http.port")
			go func() {
				if err := startNgrokForward(ctx, token, port); err != nil {
					log.Error("[NGROK] erro", zap.Error(err))
				}
			}()
		}
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("falha ao encerrar servidor: %w", err)
		}
		return <-errCh

	case err := <-errCh:
		return err
	}
}
