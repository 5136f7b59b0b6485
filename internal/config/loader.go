package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config captures environment driven configuration values for the portal service.
type Config struct {
	HTTPPort      int
	SQLiteDSN     string
	AdminEmail    string
	AdminPassword string
	StudentDomain string
}

// Load parses configuration values from the current process environment.
//
// The loader applies sensible defaults for optional fields and reports every
// invalid entry at once instead of failing on the first one.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:      8080,
		SQLiteDSN:     "file:portal.db",
		AdminEmail:    "admin@school.edu",
		AdminPassword: "admin123",
		StudentDomain: "student.edu",
	}

	invalid := make([]string, 0, 1)

	if portValue := strings.TrimSpace(os.Getenv("PORTAL_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "PORTAL_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("PORTAL_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if email := strings.TrimSpace(os.Getenv("PORTAL_ADMIN_EMAIL")); email != "" {
		if !strings.Contains(email, "@") {
			invalid = append(invalid, "PORTAL_ADMIN_EMAIL")
		} else {
			cfg.AdminEmail = email
		}
	}

	if password := strings.TrimSpace(os.Getenv("PORTAL_ADMIN_PASSWORD")); password != "" {
		cfg.AdminPassword = password
	}

	if domain := strings.TrimSpace(os.Getenv("PORTAL_STUDENT_DOMAIN")); domain != "" {
		cfg.StudentDomain = strings.TrimPrefix(domain, "@")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
