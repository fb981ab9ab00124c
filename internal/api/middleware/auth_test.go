package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/limkokwing/luct-reporting/internal/auth"
	"github.com/limkokwing/luct-reporting/internal/core/domain"
)

type stubUsers struct {
	users map[int64]*domain.User
}

func (s *stubUsers) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUsers) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUsers) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	return nil, domain.ErrStoreUnavailable
}

func newTokens(t *testing.T, secret string, ttl time.Duration) *auth.TokenService {
	t.Helper()
	svc, err := auth.NewTokenService(secret, ttl)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return svc
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuth_ValidToken_AttachesFreshUser(t *testing.T) {
	tokens := newTokens(t, "secret", time.Hour)

	// The store's role differs from the one baked into the token; the
	// attached identity must carry the store's value.
	users := &stubUsers{users: map[int64]*domain.User{
		1: {ID: 1, Email: "test@example.com", Name: "Test User", Role: domain.RoleProgramLeader},
	}}

	signed, err := tokens.Issue(&domain.User{ID: 1, Email: "test@example.com", Role: domain.RoleLecturer}, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens, users, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		user := CurrentUser(c)
		if user == nil {
			t.Fatalf("no user attached")
		}
		if user.Role != domain.RoleProgramLeader {
			t.Fatalf("expected store role, got token role %s", user.Role)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := newTokens(t, "secret", time.Hour)
	users := &stubUsers{users: map[int64]*domain.User{}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(tokens, users, zerolog.Nop())
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if code := statusOf(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens := newTokens(t, "secret", time.Hour)
	users := &stubUsers{users: map[int64]*domain.User{}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(tokens, users, zerolog.Nop())
	err := mw(func(c echo.Context) error { return nil })(c)

	if code := statusOf(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := newTokens(t, "secret", time.Hour)
	users := &stubUsers{users: map[int64]*domain.User{}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(tokens, users, zerolog.Nop())
	err := mw(func(c echo.Context) error { return nil })(c)

	if code := statusOf(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestAuth_ForeignSecretToken(t *testing.T) {
	tokens := newTokens(t, "secret", time.Hour)
	foreign := newTokens(t, "other-secret", time.Hour)
	users := &stubUsers{users: map[int64]*domain.User{
		1: {ID: 1, Role: domain.RoleLecturer},
	}}

	signed, _ := foreign.Issue(&domain.User{ID: 1}, time.Now())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(tokens, users, zerolog.Nop())
	err := mw(func(c echo.Context) error { return nil })(c)

	if code := statusOf(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens := newTokens(t, "secret", time.Hour)
	users := &stubUsers{users: map[int64]*domain.User{
		1: {ID: 1, Role: domain.RoleLecturer},
	}}

	signed, _ := tokens.Issue(&domain.User{ID: 1}, time.Now().Add(-2*time.Hour))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(tokens, users, zerolog.Nop())
	err := mw(func(c echo.Context) error { return nil })(c)

	if code := statusOf(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestAuth_DeletedSubject(t *testing.T) {
	tokens := newTokens(t, "secret", time.Hour)
	users := &stubUsers{users: map[int64]*domain.User{}}

	signed, _ := tokens.Issue(&domain.User{ID: 99, Email: "gone@example.com"}, time.Now())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(tokens, users, zerolog.Nop())
	err := mw(func(c echo.Context) error { return nil })(c)

	if code := statusOf(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for stale token, got %d", code)
	}
}
