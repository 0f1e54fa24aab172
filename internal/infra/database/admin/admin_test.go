package admin

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDetectFormat(t *testing.T) {
	cases := map[string]string{
		"backup.sql":  "p",
		"backup.SQL":  "p",
		"backup.tar":  "t",
		"backup.dump": "c",
		"backup":      "c",
	}
	for in, want := range cases {
		if got := detectFormat(in); got != want {
			t.Fatalf("detectFormat(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveDestination(t *testing.T) {
	now := time.Date(2025, 12, 18, 9, 30, 0, 0, time.UTC)
	dir := t.TempDir()

	got := resolveDestination(dir, now)
	if want := filepath.Join(dir, "okiteru_20251218_093000.dump"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	file := filepath.Join(dir, "nested", "db.sql")
	if got := resolveDestination(file, now); got != file {
		t.Fatalf("file path should be kept, got %q", got)
	}

	if got := resolveDestination("relative/db.sql", now); !filepath.IsAbs(got) || !strings.HasSuffix(got, filepath.Join("relative", "db.sql")) {
		t.Fatalf("expected absolute path, got %q", got)
	}
}

func TestDumpArgs(t *testing.T) {
	url := connectionInfo{URL: "postgres://u:p@db/okiteru", Host: "ignored"}
	got := strings.Join(dumpArgs(url, "/tmp/x.sql"), " ")
	if got != "-d postgres://u:p@db/okiteru -F p -f /tmp/x.sql" {
		t.Fatalf("unexpected args %q", got)
	}

	fields := connectionInfo{Host: "db", Port: "5432", User: "okiteru", Database: "okiteru"}
	got = strings.Join(dumpArgs(fields, "/tmp/x.dump"), " ")
	if got != "-h db -p 5432 -U okiteru -d okiteru -F c -f /tmp/x.dump" {
		t.Fatalf("unexpected args %q", got)
	}
}
