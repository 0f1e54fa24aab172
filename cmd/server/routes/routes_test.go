package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"okiteru-api/internal/attendance/domain/report"
	"okiteru-api/internal/iam/application/auth"
	"okiteru-api/internal/iam/domain/user"
	"okiteru-api/internal/iam/middleware"
	"okiteru-api/internal/infra/jwt"
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

	if err := db.AutoMigrate(&user.User{}, &report.Report{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestRouter(t *testing.T, mode middleware.Mode, requireManager bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	userService := user.NewService(user.NewRepository(db))
	reportService := report.NewService(report.NewRepository(db))
	authService := auth.NewService(jwt.NewVerifier(jwt.Config{}), userService)

	return NewRouter(Dependencies{
		Users:          user.NewController(userService),
		Reports:        report.NewController(reportService),
		Auth:           middleware.NewMiddleware(authService, mode),
		RequireManager: requireManager,
	})
}

type client struct {
	t      *testing.T
	router *gin.Engine
	userID string
	role   string
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.userID != "" {
		req.Header.Set(middleware.HeaderUserID, c.userID)
	}
	if c.role != "" {
		req.Header.Set(middleware.HeaderUserRole, c.role)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return m
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func TestBannerAndHealth(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, middleware.ModeHeader, false)}

	w := c.do(http.MethodGet, "/", nil)
	expectStatus(t, w, http.StatusOK)
	banner := decodeMap(t, w)
	if banner["message"] != "Okiteru API" || banner["version"] != "1.0.0" || banner["docs"] != "/docs" {
		t.Fatalf("unexpected banner %v", banner)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}

	w = c.do(http.MethodGet, "/health", nil)
	expectStatus(t, w, http.StatusOK)
	if decodeMap(t, w)["status"] != "ok" {
		t.Fatalf("unexpected health body %s", w.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, middleware.ModeHeader, false)
	req := httptest.NewRequest(http.MethodOptions, "/api/users/me", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin, got %q (status %d)", got, w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("credentials should be allowed")
	}
}

func TestBearerModeWithoutProvider(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, middleware.ModeCognito, false)}
	expectStatus(t, c.do(http.MethodGet, "/api/users/me", nil), http.StatusNotImplemented)
}

func TestHeaderModeRequiresIdentity(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, middleware.ModeHeader, false)}
	expectStatus(t, c.do(http.MethodGet, "/api/previous-day-reports", nil), http.StatusUnauthorized)

	c.userID = "not-a-uuid"
	expectStatus(t, c.do(http.MethodGet, "/api/previous-day-reports", nil), http.StatusUnauthorized)
}

func TestRequireManagerGuardsUserAdministration(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, middleware.ModeHeader, true), userID: uuid.NewString()}
	expectStatus(t, c.do(http.MethodGet, "/api/users", nil), http.StatusForbidden)

	c.role = "manager"
	expectStatus(t, c.do(http.MethodGet, "/api/users", nil), http.StatusOK)
}

func TestReportFlow(t *testing.T) {
	router := newTestRouter(t, middleware.ModeHeader, false)
	admin := &client{t: t, router: router, userID: uuid.NewString(), role: "manager"}

	w := admin.do(http.MethodPost, "/api/users", map[string]interface{}{
		"cognito_user_id": "test-staff-001",
		"email":           "staff001@example.com",
		"name":            "Staff 001",
	})
	expectStatus(t, w, http.StatusCreated)
	staffID, _ := decodeMap(t, w)["id"].(string)

	staff := &client{t: t, router: router, userID: staffID}
	w = staff.do(http.MethodGet, "/api/users/me", nil)
	expectStatus(t, w, http.StatusOK)
	if decodeMap(t, w)["email"] != "staff001@example.com" {
		t.Fatalf("unexpected me %s", w.Body.String())
	}

	w = staff.do(http.MethodGet, "/api/previous-day-reports/latest/me", nil)
	expectStatus(t, w, http.StatusOK)
	if strings.TrimSpace(w.Body.String()) != "null" {
		t.Fatalf("expected null latest, got %s", w.Body.String())
	}

	body := map[string]interface{}{
		"report_date":          "2025-12-17",
		"next_wake_up_time":    "06:00:00",
		"next_departure_time":  "07:30:00",
		"next_arrival_time":    "09:00:00",
		"appearance_photo_url": "https://example.com/a.jpg",
		"route_photo_url":      "https://example.com/r.jpg",
	}
	w = staff.do(http.MethodPost, "/api/previous-day-reports", body)
	expectStatus(t, w, http.StatusCreated)
	created := decodeMap(t, w)
	reportID, _ := created["id"].(string)
	if created["user_id"] != staffID || created["report_date"] != "2025-12-17" {
		t.Fatalf("unexpected report %v", created)
	}

	expectStatus(t, staff.do(http.MethodPost, "/api/previous-day-reports", body), http.StatusConflict)

	w = staff.do(http.MethodGet, "/api/previous-day-reports/latest/me", nil)
	expectStatus(t, w, http.StatusOK)
	if decodeMap(t, w)["id"] != reportID {
		t.Fatalf("latest should be the created report, got %s", w.Body.String())
	}

	other := &client{t: t, router: router, userID: uuid.NewString()}
	expectStatus(t, other.do(http.MethodGet, "/api/previous-day-reports/"+reportID, nil), http.StatusForbidden)

	expectStatus(t, staff.do(http.MethodDelete, "/api/previous-day-reports/"+reportID, nil), http.StatusNoContent)
	expectStatus(t, staff.do(http.MethodGet, "/api/previous-day-reports/"+reportID, nil), http.StatusNotFound)
}

func TestValidationCausesUseJSONNames(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, middleware.ModeHeader, false), userID: uuid.NewString()}
	w := c.do(http.MethodPost, "/api/users", map[string]interface{}{"email": "a@x.com", "name": "A"})
	expectStatus(t, w, http.StatusBadRequest)
	if !strings.Contains(w.Body.String(), `"field":"cognito_user_id"`) {
		t.Fatalf("expected cause for cognito_user_id, got %s", w.Body.String())
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins([]string{"http://a.test, http://b.test", " ", "http://c.test"})
	if strings.Join(got, "|") != "http://a.test|http://b.test|http://c.test" {
		t.Fatalf("unexpected origins %v", got)
	}
}
