package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"okiteru-api/internal/iam/application/auth"
	"okiteru-api/internal/iam/domain/model"
	"okiteru-api/internal/iam/domain/user"
	"okiteru-api/internal/iam/identity"
	"okiteru-api/internal/infra/jwt"
)

type fakeAuth struct {
	authErr    error
	resolveErr error
	resolved   identity.Identity
	gotToken   string
}

func (f *fakeAuth) Authenticate(_ context.Context, token string) (*jwt.Claims, error) {
	f.gotToken = token
	if f.authErr != nil {
		return nil, f.authErr
	}
	return &jwt.Claims{Email: f.resolved.Email}, nil
}

func (f *fakeAuth) ResolveOrProvision(context.Context, *jwt.Claims) (identity.Identity, error) {
	if f.resolveErr != nil {
		return identity.Identity{}, f.resolveErr
	}
	return f.resolved, nil
}

func (f *fakeAuth) FromHeaders(userID, role string) (identity.Identity, error) {
	return auth.NewService(nil, nil).FromHeaders(userID, role)
}

func newRouter(mw Middleware, guards ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{mw.SetContextAuthorization()}, guards...)
	handlers = append(handlers, func(c *gin.Context) {
		id, ok := identity.Get(c)
		if !ok {
			c.String(http.StatusTeapot, "no identity")
			return
		}
		c.String(http.StatusOK, "%s|%s", id.UserID, id.Role)
	})
	r.GET("/probe", handlers...)
	return r
}

func get(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBearerModeStoresIdentity(t *testing.T) {
	id := identity.Identity{UserID: uuid.New(), Email: "a@x.com", Role: model.RoleManager}
	fake := &fakeAuth{resolved: id}
	r := newRouter(NewMiddleware(fake, ModeCognito))

	w := get(r, map[string]string{"Authorization": "Bearer abc.def.ghi"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if fake.gotToken != "abc.def.ghi" {
		t.Fatalf("token not extracted: %q", fake.gotToken)
	}
	if want := fmt.Sprintf("%s|manager", id.UserID); w.Body.String() != want {
		t.Fatalf("expected %q, got %q", want, w.Body.String())
	}
}

func TestBearerModeErrors(t *testing.T) {
	cases := []struct {
		name       string
		authErr    error
		resolveErr error
		status     int
		challenge  bool
	}{
		{"not configured", auth.ErrNotConfigured, nil, http.StatusNotImplemented, false},
		{"missing token", auth.ErrMissingToken, nil, http.StatusUnauthorized, true},
		{"bad signature", fmt.Errorf("%w: signature is invalid", jwt.ErrInvalidToken), nil, http.StatusUnauthorized, true},
		{"unknown kid", jwt.ErrUnknownKid, nil, http.StatusUnauthorized, true},
		{"wrong token use", jwt.ErrWrongTokenUse, nil, http.StatusUnauthorized, true},
		{"jwks down", fmt.Errorf("%w: dial tcp", jwt.ErrKeySetUnavailable), nil, http.StatusInternalServerError, false},
		{"email taken", nil, user.ErrEmailDuplicated, http.StatusConflict, false},
		{"storage", nil, fmt.Errorf("connection reset"), http.StatusInternalServerError, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(NewMiddleware(&fakeAuth{authErr: tc.authErr, resolveErr: tc.resolveErr}, ModeCognito))
			w := get(r, map[string]string{"Authorization": "Bearer x"})
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if got := w.Header().Get("WWW-Authenticate") == "Bearer"; got != tc.challenge {
				t.Fatalf("challenge header present=%v, want %v", got, tc.challenge)
			}
		})
	}
}

func TestHeaderMode(t *testing.T) {
	r := newRouter(NewMiddleware(&fakeAuth{}, ModeHeader))
	uid := uuid.New()

	w := get(r, map[string]string{HeaderUserID: uid.String()})
	if w.Code != http.StatusOK || w.Body.String() != uid.String()+"|staff" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
	}

	w = get(r, map[string]string{HeaderUserID: uid.String(), HeaderUserRole: "manager"})
	if w.Body.String() != uid.String()+"|manager" {
		t.Fatalf("expected manager role, got %q", w.Body.String())
	}

	if w = get(r, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}
	if w = get(r, map[string]string{HeaderUserID: "nope"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid id, got %d", w.Code)
	}
}

func TestAuthorizeRole(t *testing.T) {
	mw := NewMiddleware(&fakeAuth{}, ModeHeader)
	r := newRouter(mw, mw.AuthorizeRole(model.RoleManager))
	uid := uuid.New().String()

	if w := get(r, map[string]string{HeaderUserID: uid}); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for staff, got %d", w.Code)
	}
	if w := get(r, map[string]string{HeaderUserID: uid, HeaderUserRole: "manager"}); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for manager, got %d", w.Code)
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"Bearer":       "",
		"Basic abc":    "",
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"BEARER a.b.c": "a.b.c",
	}
	for in, want := range cases {
		if got := extractBearerToken(in); got != want {
			t.Fatalf("extractBearerToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != ModeCognito {
		t.Fatalf("empty mode should default to cognito, got %q %v", m, err)
	}
	if m, err := ParseMode(" Header "); err != nil || m != ModeHeader {
		t.Fatalf("expected header mode, got %q %v", m, err)
	}
	if _, err := ParseMode("basic"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
