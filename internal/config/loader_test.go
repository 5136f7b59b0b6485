package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	clearEnv := func(t *testing.T) {
		t.Helper()
		for _, key := range []string{
			"PORTAL_HTTP_PORT",
			"PORTAL_SQLITE_DSN",
			"PORTAL_ADMIN_EMAIL",
			"PORTAL_ADMIN_PASSWORD",
			"PORTAL_STUDENT_DOMAIN",
		} {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}
	}

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8080 {
			t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:portal.db" {
			t.Fatalf("unexpected default DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.AdminEmail != "admin@school.edu" {
			t.Fatalf("unexpected default admin email: %q", cfg.AdminEmail)
		}
		if cfg.AdminPassword != "admin123" {
			t.Fatalf("unexpected default admin password: %q", cfg.AdminPassword)
		}
		if cfg.StudentDomain != "student.edu" {
			t.Fatalf("unexpected default student domain: %q", cfg.StudentDomain)
		}
	})

	t.Run("honours overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORTAL_HTTP_PORT", "9090")
		t.Setenv("PORTAL_SQLITE_DSN", "file:custom.db")
		t.Setenv("PORTAL_ADMIN_EMAIL", "dean@uni.ac")
		t.Setenv("PORTAL_ADMIN_PASSWORD", "secret")
		t.Setenv("PORTAL_STUDENT_DOMAIN", "@uni.ac")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:custom.db" {
			t.Fatalf("unexpected DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.AdminEmail != "dean@uni.ac" {
			t.Fatalf("unexpected admin email: %q", cfg.AdminEmail)
		}
		if cfg.StudentDomain != "uni.ac" {
			t.Fatalf("leading @ must be stripped, got %q", cfg.StudentDomain)
		}
	})

	t.Run("reports every invalid value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORTAL_HTTP_PORT", "not-a-port")
		t.Setenv("PORTAL_ADMIN_EMAIL", "no-at-sign")

		_, err := Load()
		if err == nil {
			t.Fatal("expected an error for invalid values")
		}
		if !strings.Contains(err.Error(), "PORTAL_HTTP_PORT") || !strings.Contains(err.Error(), "PORTAL_ADMIN_EMAIL") {
			t.Fatalf("expected both variables to be reported, got %v", err)
		}
	})

	t.Run("rejects non-positive ports", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORTAL_HTTP_PORT", "0")

		if _, err := Load(); err == nil {
			t.Fatal("expected an error for port 0")
		}
	})
}
