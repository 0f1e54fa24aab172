package bootstrap

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestEnvironmentReadsOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("COGNITO_USER_POOL_ID", "ap-northeast-1_pool")
	t.Setenv("AUTH_MODE", "header")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/okiteru")

	Environment()

	if got := viper.GetString("cognito.user_pool_id"); got != "ap-northeast-1_pool" {
		t.Fatalf("expected pool id from env, got %q", got)
	}
	if got := viper.GetString("auth.mode"); got != "header" {
		t.Fatalf("expected header mode, got %q", got)
	}
	if got := viper.GetString("databases.postgres.url"); got != "postgres://u:p@db/okiteru" {
		t.Fatalf("expected DATABASE_URL fallback, got %q", got)
	}
	if got := viper.GetString("server.http.port"); got != "8000" {
		t.Fatalf("expected default port, got %q", got)
	}
	if viper.GetBool("auth.require_manager") {
		t.Fatal("require_manager should default to false")
	}
}
