package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/VIJ4YKUMAR/todolist-API/internal/models"
	"github.com/VIJ4YKUMAR/todolist-API/internal/service"
)

// dummyHandler is a placeholder that records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

// fakeResolver resolves "alice" to a fixed user and rejects everything else.
type fakeResolver struct{}

func (fakeResolver) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	if token == "alice" {
		return &models.User{ID: 1, Username: "alice"}, nil
	}
	return nil, service.ErrInvalidToken
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(fakeResolver{})(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/todo_items/", nil)
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called without a header")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid authentication token") {
		t.Errorf("body = %q; want invalid-token message", rec.Body.String())
	}
}

func TestBearerAuth_MalformedHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(fakeResolver{})(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/todo_items/", nil)
	req.Header.Set("Authorization", "Basic alice")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called with a non-bearer scheme")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestBearerAuth_UnresolvableToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(fakeResolver{})(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/todo_items/", nil)
	req.Header.Set("Authorization", "Bearer nobody")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called for an unknown token")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid authentication token") {
		t.Errorf("body = %q; want invalid-token message", rec.Body.String())
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(fakeResolver{})(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/todo_items/", nil)
	req.Header.Set("Authorization", "Bearer alice")
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called for a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", rec.Code)
	}
	user := GetUserFromContext(dummy.ctx)
	if user == nil || user.Username != "alice" {
		t.Errorf("expected context user 'alice', got %+v", user)
	}
}

func TestGetUserFromContext(t *testing.T) {
	// no value
	if u := GetUserFromContext(context.Background()); u != nil {
		t.Errorf("expected nil for missing user, got %+v", u)
	}
	// with value
	want := &models.User{ID: 2, Username: "bob"}
	ctx := context.WithValue(context.Background(), userKey, want)
	if got := GetUserFromContext(ctx); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
