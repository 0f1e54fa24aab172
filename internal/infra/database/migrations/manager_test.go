package migrations

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestParseTimestamp(t *testing.T) {
	got, err := parseTimestamp("20251218010000_create_users_table.sql")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, 12, 18, 1, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	for _, bad := range []string{"create_users.sql", "2025_users.sql", "20251399010000_x.sql", "20251218010000.sql"} {
		if _, err := parseTimestamp(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestEmbeddedFilesAreOrdered(t *testing.T) {
	files, err := loadFiles(embeddedMigrations, Update)
	if err != nil {
		t.Fatalf("load update: %v", err)
	}
	if len(files) < 3 {
		t.Fatalf("expected at least 3 update migrations, got %d", len(files))
	}
	if !strings.Contains(files[0].Name, "create_users_table") {
		t.Fatalf("users table must come first, got %s", files[0].Name)
	}
	for i := 1; i < len(files); i++ {
		if files[i].Timestamp.Before(files[i-1].Timestamp) {
			t.Fatalf("files out of order: %s before %s", files[i-1].Name, files[i].Name)
		}
	}

	seeds, err := loadFiles(embeddedMigrations, Seed)
	if err != nil || len(seeds) == 0 {
		t.Fatalf("expected seed migrations, got %d (%v)", len(seeds), err)
	}
	if !strings.Contains(seeds[0].Content, "test-manager-001") {
		t.Fatal("seed must include the sample manager")
	}

	if _, err := loadFiles(embeddedMigrations, Category("other")); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	m := &Manager{db: db, files: fstest.MapFS{
		"sql/update/20250101000000_b.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		"sql/update/20240101000000_a.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"sql/update/README.md":            {Data: []byte("ignored")},
	}}

	applied, err := m.ApplyUpdate()
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(applied) != 2 || applied[0] != "20240101000000_a.sql" {
		t.Fatalf("unexpected applied list %v", applied)
	}

	applied, err = m.ApplyUpdate()
	if err != nil || len(applied) != 0 {
		t.Fatalf("second apply should be a no-op, got %v (%v)", applied, err)
	}

	status, err := m.Pending(Update)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	for _, s := range status {
		if !s.Applied {
			t.Fatalf("expected %s applied", s.Name)
		}
	}

	if applied, err := m.ApplySeed(); err != nil || applied != nil {
		t.Fatalf("missing seed dir should be a no-op, got %v (%v)", applied, err)
	}
}

func TestApplyRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	m := &Manager{db: db, files: fstest.MapFS{
		"sql/update/20240101000000_a.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"sql/update/20240102000000_b.sql": {Data: []byte("CREATE TABLE broken (")},
	}}

	if _, err := m.ApplyUpdate(); err == nil {
		t.Fatal("expected failure")
	}
	if db.Migrator().HasTable("a") {
		t.Fatal("first migration should have been rolled back")
	}
}
