package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket-tracker/utils"
)

func TestJWTAuthMiddlewareAttachesUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken("uid-1", "owner@example.com", "Owner", true)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var sawUser bool
	handler := JWTAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			t.Fatalf("no user on request context")
		}
		if user.Email != "owner@example.com" || user.UID != "uid-1" {
			t.Fatalf("user = %+v", user)
		}
		sawUser = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !sawUser {
		t.Fatalf("inner handler never ran")
	}
}

func TestJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	handler := JWTAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("inner handler should not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	handler := JWTAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("inner handler should not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
