package admin

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"okiteru-api/internal/pkg/logger"
)

// Status resume o estado do banco: tabelas existentes e contagem das tabelas de domínio.
type Status struct {
	Tables    []string
	Rows      map[string]int64
	CheckedAt time.Time
}

var domainTables = []string{"users", "previous_day_reports"}

func Check(db *gorm.DB) (Status, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return Status{}, fmt.Errorf("falha ao obter conexão subjacente: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return Status{}, fmt.Errorf("banco de dados indisponível: %w", err)
	}

	tables, err := listTables(db)
	if err != nil {
		return Status{}, err
	}

	rows := make(map[string]int64)
	for _, table := range domainTables {
		if !db.Migrator().HasTable(table) {
			continue
		}
		var n int64
		if err := db.Table(table).Count(&n).Error; err != nil {
			return Status{}, fmt.Errorf("falha ao contar registros de %s: %w", table, err)
		}
		rows[table] = n
	}

	return Status{Tables: tables, Rows: rows, CheckedAt: time.Now()}, nil
}

func listTables(db *gorm.DB) ([]string, error) {
	type record struct {
		Tablename string
	}
	var out []record
	err := db.Raw(`
SELECT tablename
FROM pg_catalog.pg_tables
WHERE schemaname = current_schema()
ORDER BY tablename;
`).Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao listar tabelas: %w", err)
	}

	tables := make([]string, len(out))
	for i, r := range out {
		tables[i] = r.Tablename
	}
	return tables, nil
}

// DeleteAll remove todas as tabelas do schema atual, incluindo schema_migrations.
func DeleteAll(db *gorm.DB) error {
	tables, err := listTables(db)
	if err != nil {
		return err
	}

	for _, table := range tables {
		query := fmt.Sprintf("DROP TABLE IF EXISTS \"%s\" CASCADE", table)
		if err := db.Exec(query).Error; err != nil {
			return fmt.Errorf("falha ao remover tabela %s: %w", table, err)
		}
		logger.Use().Info("[ADMIN] tabela removida", zap.String("table", table))
	}
	return nil
}

type BackupOptions struct {
	Destination string
}

// Backup executa pg_dump e retorna o caminho final do arquivo gerado.
func Backup(opts BackupOptions) (string, error) {
	if opts.Destination == "" {
		return "", errors.New("destino do backup não informado (use --local=<caminho>)")
	}

	info := connectionInfoFromConfig()
	if info.URL == "" && info.Database == "" {
		return "", errors.New("nome do banco de dados não configurado")
	}

	destination := resolveDestination(opts.Destination, time.Now())
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return "", fmt.Errorf("falha ao criar diretório do backup: %w", err)
	}

	cmd := exec.Command("pg_dump", dumpArgs(info, destination)...)
	cmd.Env = os.Environ()
	if info.Password != "" {
		cmd.Env = append(cmd.Env, "PGPASSWORD="+info.Password)
	}

	if output, err := cmd.CombinedOutput(); err != nil {
		if len(output) > 0 {
			return "", fmt.Errorf("pg_dump falhou: %w - %s", err, strings.TrimSpace(string(output)))
		}
		return "", fmt.Errorf("pg_dump falhou: %w", err)
	}

	return destination, nil
}

type connectionInfo struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

func connectionInfoFromConfig() connectionInfo {
	return connectionInfo{
		URL:      viper.GetString("databases.postgres.url"),
		Host:     viper.GetString("databases.postgres.host"),
		Port:     viper.GetString("databases.postgres.port"),
		User:     viper.GetString("databases.postgres.user"),
		Password: viper.GetString("databases.postgres.pwd"),
		Database: viper.GetString("databases.postgres.db_name"),
	}
}

func dumpArgs(info connectionInfo, destination string) []string {
	var args []string
	if info.URL != "" {
		args = append(args, "-d", info.URL)
	} else {
		if info.Host != "" {
			args = append(args, "-h", info.Host)
		}
		if info.Port != "" {
			args = append(args, "-p", info.Port)
		}
		if info.User != "" {
			args = append(args, "-U", info.User)
		}
		args = append(args, "-d", info.Database)
	}
	return append(args, "-F", detectFormat(destination), "-f", destination)
}

// resolveDestination torna o caminho absoluto; diretórios (existentes ou
// terminados em separador) recebem um nome de arquivo com carimbo de data.
func resolveDestination(path string, now time.Time) string {
	isDir := strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator))
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		isDir = true
	}

	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		if abs, err := filepath.Abs(clean); err == nil {
			clean = abs
		}
	}
	if isDir {
		clean = filepath.Join(clean, fmt.Sprintf("okiteru_%s.dump", now.Format("20060102_150405")))
	}
	return clean
}

func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sql":
		return "p"
	case ".tar":
		return "t"
	default:
		return "c"
	}
}
