package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Lekha1657/fedfproject/internal/application"
)

// PrincipalResolver derives the current identity from the persisted session
// snapshot. There are no tokens to validate: whoever the snapshot names is
// the principal, and an empty snapshot yields a guest.
type PrincipalResolver interface {
	CurrentPrincipal(ctx context.Context) (application.Principal, error)
}

// ResolvePrincipal attaches the resolved principal to every request context.
// Resolution failures degrade to a guest principal rather than rejecting the
// request; handlers that need a signed-in identity enforce that themselves.
func ResolvePrincipal(resolver PrincipalResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	base := defaultLogger(logger)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := resolver.CurrentPrincipal(r.Context())
			if err != nil {
				base.ErrorContext(r.Context(), "failed to resolve principal", "error", err)
				principal = application.Principal{}
			}

			ctx := ContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogger attaches a request-scoped logger to the context and records
// request start and completion.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	var counter atomic.Uint64

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := counter.Add(1)
			logger := base.With(
				"request_id", id,
				"method", r.Method,
				"path", r.URL.Path,
			)

			ctx := ContextWithLogger(r.Context(), logger)
			start := time.Now()
			logger.InfoContext(ctx, "request started")
			next.ServeHTTP(w, r.WithContext(ctx))
			logger.InfoContext(ctx, "request completed", "duration", time.Since(start))
		})
	}
}
