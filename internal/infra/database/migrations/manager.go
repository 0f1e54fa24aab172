package migrations

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"okiteru-api/internal/pkg/logger"
)

// Category agrupa migrations: update altera o schema, seed insere dados de desenvolvimento.
type Category string

const (
	Seed   Category = "seed"
	Update Category = "update"

	timestampLayout = "20060102150405"
)

//go:embed sql/seed/*.sql sql/update/*.sql
var embeddedMigrations embed.FS

type migrationFile struct {
	Name      string
	Content   string
	Category  Category
	Timestamp time.Time
}

// Status descreve uma migration embutida e se já foi aplicada.
type Status struct {
	Name     string
	Category Category
	Applied  bool
}

type Manager struct {
	db    *gorm.DB
	files fs.FS
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db, files: embeddedMigrations}
}

// ApplySeed aplica as migrations de seed pendentes e retorna os nomes aplicados.
func (m *Manager) ApplySeed() ([]string, error) {
	return m.apply(Seed)
}

// ApplyUpdate aplica as migrations de schema pendentes e retorna os nomes aplicados.
func (m *Manager) ApplyUpdate() ([]string, error) {
	return m.apply(Update)
}

func (m *Manager) apply(category Category) ([]string, error) {
	files, err := loadFiles(m.files, category)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	var done []string
	err = m.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSchemaMigrationsTable(tx); err != nil {
			return err
		}

		applied, err := fetchApplied(tx, category)
		if err != nil {
			return err
		}

		for _, file := range files {
			if applied[file.Name] {
				continue
			}
			if err := executeMigration(tx, file); err != nil {
				return err
			}
			logger.Use().Info("[MIGRATIONS] aplicada", zap.String("name", file.Name), zap.String("category", string(category)))
			done = append(done, file.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return done, nil
}

// Pending lista as migrations embutidas da categoria com a marcação de aplicadas.
func (m *Manager) Pending(category Category) ([]Status, error) {
	files, err := loadFiles(m.files, category)
	if err != nil {
		return nil, err
	}

	var out []Status
	err = m.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSchemaMigrationsTable(tx); err != nil {
			return err
		}
		applied, err := fetchApplied(tx, category)
		if err != nil {
			return err
		}
		for _, f := range files {
			out = append(out, Status{Name: f.Name, Category: category, Applied: applied[f.Name]})
		}
		return nil
	})
	return out, err
}

func loadFiles(fsys fs.FS, category Category) ([]migrationFile, error) {
	if category != Seed && category != Update {
		return nil, fmt.Errorf("categoria de migration desconhecida: %s", category)
	}
	dir := path.Join("sql", string(category))

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("falha ao ler diretório de migrations %s: %w", dir, err)
	}

	files := make([]migrationFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		name := entry.Name()
		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("falha ao ler migration %s: %w", name, err)
		}

		ts, err := parseTimestamp(name)
		if err != nil {
			return nil, err
		}

		files = append(files, migrationFile{
			Name:      name,
			Content:   string(content),
			Category:  category,
			Timestamp: ts,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Timestamp.Equal(files[j].Timestamp) {
			return files[i].Name < files[j].Name
		}
		return files[i].Timestamp.Before(files[j].Timestamp)
	})

	return files, nil
}

// parseTimestamp lê o prefixo YYYYMMDDHHMMSS de nomes como 20251218010000_create_users_table.sql.
func parseTimestamp(name string) (time.Time, error) {
	prefix, _, found := strings.Cut(path.Base(name), "_")
	if !found || len(prefix) != len(timestampLayout) {
		return time.Time{}, fmt.Errorf("migration %s não segue o padrão 'YYYYMMDDHHMMSS_nome.sql'", name)
	}

	parsed, err := time.Parse(timestampLayout, prefix)
	if err != nil {
		return time.Time{}, fmt.Errorf("falha ao interpretar data da migration %s: %w", name, err)
	}
	return parsed, nil
}

func ensureSchemaMigrationsTable(tx *gorm.DB) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    name VARCHAR(255) NOT NULL,
    category VARCHAR(50) NOT NULL,
    applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (name, category)
);`
	return tx.Exec(createTable).Error
}

func fetchApplied(tx *gorm.DB, category Category) (map[string]bool, error) {
	type record struct {
		Name string
	}
	var rows []record
	if err := tx.Raw(
		"SELECT name FROM schema_migrations WHERE category = ?",
		string(category),
	).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("falha ao consultar migrations aplicadas (%s): %w", category, err)
	}

	applied := make(map[string]bool, len(rows))
	for _, row := range rows {
		applied[row.Name] = true
	}
	return applied, nil
}

func executeMigration(tx *gorm.DB, file migrationFile) error {
	if err := tx.Exec(file.Content).Error; err != nil {
		return fmt.Errorf("falha ao aplicar migration %s: %w", file.Name, err)
	}

	if err := tx.Exec(
		"INSERT INTO schema_migrations (name, category) VALUES (?, ?)",
		file.Name,
		string(file.Category),
	).Error; err != nil {
		return fmt.Errorf("falha ao registrar migration %s: %w", file.Name, err)
	}
	return nil
}
