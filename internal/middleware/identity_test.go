package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/assethub/hub-api/internal/middleware"
)

func TestIdentityResolvesHeader(t *testing.T) {
	userID := uuid.New()

	var got uuid.UUID
	handler := middleware.Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", userID.String())
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != userID {
		t.Fatalf("expected %s in context, got %s", userID, got)
	}
}

func TestIdentityAnonymousPassThrough(t *testing.T) {
	called := false
	handler := middleware.Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if middleware.GetUserID(r.Context()) != uuid.Nil {
			t.Error("expected nil user id for anonymous request")
		}
		if middleware.UserIDPtr(r.Context()) != nil {
			t.Error("expected nil user id pointer for anonymous request")
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Fatal("expected anonymous request to pass through")
	}
}

func TestIdentityRejectsMalformedHeader(t *testing.T) {
	handler := middleware.Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with a malformed identity")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "not-a-uuid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireUserBlocksAnonymous(t *testing.T) {
	handler := middleware.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without identity")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
