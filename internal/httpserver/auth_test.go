package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"buildmart/internal/domain"
)

func TestLoginHandler_Success(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthSvc{
		token: "session-token",
		user:  &domain.User{ID: "u1", Email: "admin@buildmart.in", Role: "admin"},
	}
	router := newTestRouter(deps)

	body := `{"email":"admin@buildmart.in","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"session-token"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthSvc{loginErr: domain.ErrInvalidCredentials}
	router := newTestRouter(deps)

	body := `{"email":"admin@buildmart.in","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	router := newTestRouter(testDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.c"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogoutHandler(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthSvc{valid: true, user: &domain.User{ID: "u1"}}
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rec.Code, rec.Body.String())
	}
}
