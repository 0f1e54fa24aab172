package postgres

import (
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"okiteru-api/internal/pkg/logger"
)

// Modos SSL aceitos pelo PostgreSQL.
const (
	SSLDisable    = "disable"
	SSLRequire    = "require"
	SSLVerifyFull = "verify-full"
	SSLVerifyCA   = "verify-ca"
)

var (
	db   *gorm.DB
	once sync.Once
)

// InitPostgres abre a conexão GORM uma única vez. Falhas aqui encerram o processo.
func InitPostgres() *gorm.DB {
	once.Do(func() {
		log := logger.Use()

		gormLogLevel := gormlogger.Warn
		if viper.GetString("app.env") == "prod" {
			gormLogLevel = gormlogger.Error
		}

		var err error
		db, err = gorm.Open(gormPostgres.Open(BuildDSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormLogLevel),
		})
		if err != nil {
			log.Fatal("[DATABASE] erro ao abrir conexão GORM", zap.Error(err))
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("[DATABASE] erro ao obter *sql.DB do GORM", zap.Error(err))
		}

		if n := viper.GetInt("databases.postgres.max_open_conns"); n > 0 {
			sqlDB.SetMaxOpenConns(n)
		}
		if n := viper.GetInt("databases.postgres.max_idle_conns"); n > 0 {
			sqlDB.SetMaxIdleConns(n)
		}
		sqlDB.SetConnMaxLifetime(30 * time.Minute)

		if err := sqlDB.Ping(); err != nil {
			log.Fatal("[DATABASE] erro ao testar conexão com o banco de dados", zap.Error(err))
		}

		log.Info("[DATABASE] Conexão GORM com PostgreSQL estabelecida com sucesso.")
	})

	return db
}

// GetDB retorna a instância atual da conexão GORM.
func GetDB() *gorm.DB {
	if db == nil {
		logger.Use().Fatal("[DATABASE] a conexão GORM não foi inicializada. Chame InitPostgres() primeiro.")
	}
	return db
}

// Close encerra a conexão com o banco de dados e permite nova inicialização.
func Close() {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Use().Warn("[DATABASE] erro ao obter *sql.DB para fechamento", zap.Error(err))
	} else if err := sqlDB.Close(); err != nil {
		logger.Use().Warn("[DATABASE] erro ao fechar conexão com banco", zap.Error(err))
	}

	db = nil
	once = sync.Once{}
}

// BuildDSN usa databases.postgres.url (DATABASE_URL) quando presente;
// caso contrário monta o DSN a partir dos campos individuais.
func BuildDSN() string {
	if url := strings.TrimSpace(viper.GetString("databases.postgres.url")); url != "" {
		return url
	}

	host := viper.GetString("databases.postgres.host")
	if host == "" {
		host = "localhost"
	}
	port := viper.GetString("databases.postgres.port")
	if port == "" {
		port = "5432"
	}
	user := viper.GetString("databases.postgres.user")
	pass := viper.GetString("databases.postgres.pwd")
	name := viper.GetString("databases.postgres.db_name")
	if name == "" {
		name = "okiteru"
	}
	ssl := viper.GetString("databases.postgres.ssl_mode")
	if !isValidSSLMode(ssl) {
		logger.Use().Warn("[DATABASE] modo SSL inválido, usando o padrão",
			zap.String("ssl_mode", ssl), zap.String("default", SSLDisable))
		ssl = SSLDisable
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, ssl,
	)
}

func isValidSSLMode(mode string) bool {
	switch mode {
	case SSLDisable, SSLRequire, SSLVerifyFull, SSLVerifyCA:
		return true
	default:
		return false
	}
}
