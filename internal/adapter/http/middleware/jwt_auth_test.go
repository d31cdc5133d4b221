package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kernel808/banknet/internal/domain"
)

type stubParser struct {
	actor domain.Actor
	err   error
}

func (s stubParser) ParseToken(string) (domain.Actor, error) {
	return s.actor, s.err
}

func TestJWTAuthAllowsValidToken(t *testing.T) {
	expected := domain.Actor{UserID: "u-1", Username: "officer-1", Role: domain.RoleOfficer}
	mw := JWTAuth(stubParser{actor: expected})

	var seen domain.Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			t.Fatal("expected actor on request context")
		}
		seen = actor
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transfers", nil)
	req.Header.Set("Authorization", "Bearer some-token")

	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if seen != expected {
		t.Fatalf("expected actor %+v, got %+v", expected, seen)
	}
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	mw := JWTAuth(stubParser{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transfers", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestJWTAuthRejectsNonBearerScheme(t *testing.T) {
	mw := JWTAuth(stubParser{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a basic auth header")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transfers", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestJWTAuthRejectsInvalidToken(t *testing.T) {
	mw := JWTAuth(stubParser{err: errors.New("expired")})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transfers", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestActorFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := ActorFromContext(req.Context()); ok {
		t.Fatal("expected no actor on a bare context")
	}
}
