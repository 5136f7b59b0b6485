package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lekha1657/fedfproject/internal/application"
)

type principalResolverStub struct {
	principal application.Principal
	err       error
}

func (s *principalResolverStub) CurrentPrincipal(context.Context) (application.Principal, error) {
	return s.principal, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolvePrincipal(t *testing.T) {
	t.Parallel()

	t.Run("attaches the resolved principal", func(t *testing.T) {
		t.Parallel()

		resolver := &principalResolverStub{principal: application.Principal{Email: "jane@student.edu", Role: application.RoleStudent}}

		var seen application.Principal
		handler := ResolvePrincipal(resolver, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = PrincipalFromContext(r.Context())
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/calendar", nil))

		if seen.Email != "jane@student.edu" || seen.Role != application.RoleStudent {
			t.Fatalf("unexpected principal: %+v", seen)
		}
	})

	t.Run("degrades to a guest when resolution fails", func(t *testing.T) {
		t.Parallel()

		resolver := &principalResolverStub{err: errors.New("store unavailable")}

		var seen application.Principal
		var ok bool
		handler := ResolvePrincipal(resolver, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, ok = PrincipalFromContext(r.Context())
		}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("a resolution failure must not reject the request, got %d", rec.Code)
		}
		if !ok || seen.SignedIn() {
			t.Fatalf("expected a guest principal, got %+v", seen)
		}
	})
}

type countingHandler struct {
	records int
}

func (h *countingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *countingHandler) Handle(context.Context, slog.Record) error {
	h.records++
	return nil
}

func (h *countingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *countingHandler) WithGroup(string) slog.Handler { return h }

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	counting := &countingHandler{}

	var contextual *slog.Logger
	handler := RequestLogger(slog.New(counting))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextual = LoggerFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/programs", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if contextual == nil {
		t.Fatal("expected a request-scoped logger in the context")
	}
	if counting.records != 2 {
		t.Fatalf("expected start and completion records, got %d", counting.records)
	}
}
