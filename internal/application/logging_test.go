package application

import (
	"context"
	"log/slog"
	"testing"

	"github.com/Lekha1657/fedfproject/internal/logging"
)

type captureHandler struct {
	records []slog.Record
	attrs   []slog.Attr
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	h.records = append(h.records, record)
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.attrs = append(h.attrs, attrs...)
	return h
}

func (h *captureHandler) WithGroup(string) slog.Handler { return h }

func attrValue(attrs []slog.Attr, key string) (string, bool) {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Value.String(), true
		}
	}
	return "", false
}

func TestServiceLogger(t *testing.T) {
	t.Parallel()

	t.Run("annotates the base logger with service and operation", func(t *testing.T) {
		t.Parallel()

		handler := &captureHandler{}
		base := slog.New(handler)

		logger := serviceLogger(context.Background(), base, "ProgramService", "Join", "program_id", "p-yoga")
		logger.Info("joined")

		if len(handler.records) != 1 {
			t.Fatalf("expected one record, got %d", len(handler.records))
		}
		if got, ok := attrValue(handler.attrs, "service"); !ok || got != "ProgramService" {
			t.Fatalf("expected service attribute, got %v", handler.attrs)
		}
		if got, ok := attrValue(handler.attrs, "operation"); !ok || got != "Join" {
			t.Fatalf("expected operation attribute, got %v", handler.attrs)
		}
		if got, ok := attrValue(handler.attrs, "program_id"); !ok || got != "p-yoga" {
			t.Fatalf("expected extra attribute, got %v", handler.attrs)
		}
	})

	t.Run("prefers a context logger over the base", func(t *testing.T) {
		t.Parallel()

		contextual := &captureHandler{}
		fallback := &captureHandler{}
		ctx := logging.ContextWithLogger(context.Background(), slog.New(contextual))

		serviceLogger(ctx, slog.New(fallback), "SessionService", "Login").Info("signed in")

		if len(contextual.records) != 1 {
			t.Fatalf("expected the context logger to record, got %d", len(contextual.records))
		}
		if len(fallback.records) != 0 {
			t.Fatalf("the base logger must stay silent, got %d records", len(fallback.records))
		}
	})
}

func TestDefaultLogger(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	provided := slog.New(handler)
	if defaultLogger(provided) != provided {
		t.Fatal("a provided logger must be returned as is")
	}
	if defaultLogger(nil) == nil {
		t.Fatal("nil must fall back to the process default logger")
	}
}
