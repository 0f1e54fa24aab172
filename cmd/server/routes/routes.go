package routes

import (
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"okiteru-api/internal/attendance/domain/report"
	"okiteru-api/internal/iam/domain/model"
	"okiteru-api/internal/iam/domain/user"
	"okiteru-api/internal/iam/middleware"
	"okiteru-api/internal/pkg/log/access_log"
	"okiteru-api/internal/pkg/logger"

	_ "okiteru-api/docs"
)

const apiVersion = "1.0.0"

// DefaultCORSOrigins são os front-ends locais usados em desenvolvimento.
var DefaultCORSOrigins = []string{"http://localhost:3000", "http://localhost:3001"}

// Dependencies agrupa o que o roteador precisa; SetupRouter preenche a partir dos singletons.
type Dependencies struct {
	Users          user.Controller
	Reports        report.Controller
	Auth           middleware.Middleware
	AccessLog      *access_log.Service
	CORSOrigins    []string
	RequireManager bool
}

func SetupRouter() *gin.Engine {
	env := viper.GetString("app.env")
	switch env {
	case "dev":
		gin.SetMode(gin.DebugMode)
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	case "":
		logger.Use().Warn("'app.env' não definido, usando modo 'dev'")
		gin.SetMode(gin.DebugMode)
	default:
		logger.Use().Error("valor inválido para 'app.env', use 'dev' ou 'prod'", zap.String("app.env", env))
		os.Exit(1)
	}

	userController, err := user.Use()
	if err != nil {
		panic(err)
	}
	reportController, err := report.Use()
	if err != nil {
		panic(err)
	}

	return NewRouter(Dependencies{
		Users:          userController,
		Reports:        reportController,
		Auth:           middleware.MustUse().Middleware,
		AccessLog:      access_log.MustUse(),
		CORSOrigins:    splitOrigins(viper.GetStringSlice("server.cors_origins")),
		RequireManager: viper.GetBool("auth.require_manager"),
	})
}

func NewRouter(deps Dependencies) *gin.Engine {
	registerJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(access_log.Middleware(deps.AccessLog))
	r.Use(corsMiddleware(deps.CORSOrigins))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Okiteru API", "version": apiVersion, "docs": "/docs"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Acessível em /docs/index.html
	r.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	SetupApiRoutes(r, deps)
	return r
}

func SetupApiRoutes(r *gin.Engine, deps Dependencies) {
	route := r.Group("/api", deps.Auth.SetContextAuthorization())

	var adminGuards []gin.HandlerFunc
	if deps.RequireManager {
		adminGuards = append(adminGuards, deps.Auth.AuthorizeRole(model.RoleManager))
	}

	deps.Users.Routes(route, adminGuards...)
	deps.Reports.Routes(route)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = DefaultCORSOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderUserID, middleware.HeaderUserRole, access_log.RequestIDHeader},
		ExposeHeaders:    []string{access_log.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// splitOrigins aceita tanto uma lista JSON quanto "a,b" vindo de variável de ambiente.
func splitOrigins(values []string) []string {
	var out []string
	for _, v := range values {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}

// registerJSONFieldNames faz os erros de validação citarem o nome do campo no JSON.
func registerJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}
