package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"okiteru-api/internal/iam/domain/model"
	"okiteru-api/internal/iam/domain/user"
	infrajwt "okiteru-api/internal/infra/jwt"
)

type fakeVerifier struct {
	configured bool
	claims     *infrajwt.Claims
	err        error
	calls      int
}

func (f *fakeVerifier) Configured() bool { return f.configured }

func (f *fakeVerifier) Verify(context.Context, string) (*infrajwt.Claims, error) {
	f.calls++
	return f.claims, f.err
}

func newUserService(t *testing.T) (user.Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return user.NewService(user.NewRepository(db)), db
}

func claims(sub, email, name string, groups ...string) *infrajwt.Claims {
	return &infrajwt.Claims{
		Email:            email,
		Name:             name,
		Groups:           groups,
		TokenUse:         "id",
		RegisteredClaims: jwt.RegisteredClaims{Subject: sub},
	}
}

func TestAuthenticateNotConfigured(t *testing.T) {
	users, _ := newUserService(t)
	v := &fakeVerifier{configured: false}
	svc := NewService(v, users)

	if _, err := svc.Authenticate(context.Background(), "token"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if v.calls != 0 {
		t.Fatal("verifier must not be called when not configured")
	}
}

func TestAuthenticateRejections(t *testing.T) {
	users, _ := newUserService(t)

	svc := NewService(&fakeVerifier{configured: true}, users)
	if _, err := svc.Authenticate(context.Background(), ""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}

	svc = NewService(&fakeVerifier{configured: true, err: infrajwt.ErrUnknownKid}, users)
	if _, err := svc.Authenticate(context.Background(), "t"); !errors.Is(err, infrajwt.ErrUnknownKid) {
		t.Fatalf("expected verifier error to pass through, got %v", err)
	}

	svc = NewService(&fakeVerifier{configured: true, claims: claims("", "a@x.com", "A")}, users)
	if _, err := svc.Authenticate(context.Background(), "t"); !errors.Is(err, ErrMissingClaims) {
		t.Fatalf("expected ErrMissingClaims for missing sub, got %v", err)
	}

	svc = NewService(&fakeVerifier{configured: true, claims: claims("sub", "", "A")}, users)
	if _, err := svc.Authenticate(context.Background(), "t"); !errors.Is(err, ErrMissingClaims) {
		t.Fatalf("expected ErrMissingClaims for missing email, got %v", err)
	}
}

func TestResolveOrProvision(t *testing.T) {
	users, db := newUserService(t)
	svc := NewService(&fakeVerifier{configured: true}, users)
	ctx := context.Background()

	staff, err := svc.ResolveOrProvision(ctx, claims("sub-1", "s@x.com", ""))
	if err != nil {
		t.Fatalf("provision staff: %v", err)
	}
	if staff.Role != model.RoleStaff {
		t.Fatalf("expected staff role, got %s", staff.Role)
	}
	stored, err := users.GetByID(ctx, staff.UserID)
	if err != nil {
		t.Fatalf("get provisioned: %v", err)
	}
	if stored.Name != "s@x.com" {
		t.Fatalf("name should default to email, got %q", stored.Name)
	}

	manager, err := svc.ResolveOrProvision(ctx, claims("sub-2", "m@x.com", "M", "staff", "manager"))
	if err != nil {
		t.Fatalf("provision manager: %v", err)
	}
	if manager.Role != model.RoleManager {
		t.Fatalf("expected manager role, got %s", manager.Role)
	}

	again, err := svc.ResolveOrProvision(ctx, claims("sub-1", "s@x.com", "Renamed"))
	if err != nil {
		t.Fatalf("resolve existing: %v", err)
	}
	if again.UserID != staff.UserID {
		t.Fatal("expected the same user on second login")
	}

	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 users, got %d", count)
	}
}

func TestFromHeaders(t *testing.T) {
	users, db := newUserService(t)
	svc := NewService(nil, users)

	if _, err := svc.FromHeaders("", ""); !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("expected ErrMissingIdentity, got %v", err)
	}
	if _, err := svc.FromHeaders("not-a-uuid", ""); !errors.Is(err, ErrInvalidIdentity) {
		t.Fatalf("expected ErrInvalidIdentity, got %v", err)
	}

	id := uuid.New()
	got, err := svc.FromHeaders(id.String(), "")
	if err != nil {
		t.Fatalf("from headers: %v", err)
	}
	if got.UserID != id || got.Role != model.RoleStaff || got.Email != devEmail {
		t.Fatalf("unexpected dev identity: %+v", got)
	}

	got, err = svc.FromHeaders(id.String(), "manager")
	if err != nil || !got.IsManager() {
		t.Fatalf("expected manager identity, got %+v, %v", got, err)
	}

	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 0 {
		t.Fatal("header identity must not touch the directory")
	}
}
