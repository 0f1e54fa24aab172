package postgres

import (
	"testing"

	"github.com/spf13/viper"
)

func TestBuildDSNPrefersURL(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("databases.postgres.url", "postgres://u:p@db:5432/okiteru?sslmode=disable")
	viper.Set("databases.postgres.host", "ignored")

	if got := BuildDSN(); got != "postgres://u:p@db:5432/okiteru?sslmode=disable" {
		t.Fatalf("unexpected dsn %q", got)
	}
}

func TestBuildDSNFromFields(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("databases.postgres.host", "db")
	viper.Set("databases.postgres.port", "6543")
	viper.Set("databases.postgres.user", "okiteru")
	viper.Set("databases.postgres.pwd", "secret")
	viper.Set("databases.postgres.ssl_mode", "bogus")

	want := "host=db port=6543 user=okiteru password=secret dbname=okiteru sslmode=disable"
	if got := BuildDSN(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
