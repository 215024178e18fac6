package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// missingConfigPath points at a file that does not exist, so LoadConfig
// runs on defaults plus environment overrides only.
func missingConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(missingConfigPath(t))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want default 8080", cfg.Server.Port)
	}
	if cfg.Payment.FeeAmount != 10000 {
		t.Errorf("Payment.FeeAmount = %d, want default 10000", cfg.Payment.FeeAmount)
	}
	if cfg.Storage.Driver != "local" {
		t.Errorf("Storage.Driver = %q, want default local", cfg.Storage.Driver)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PAYMENT_FEE_AMOUNT", "25000")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg, err := LoadConfig(missingConfigPath(t))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want env override 9090", cfg.Server.Port)
	}
	if cfg.Payment.FeeAmount != 25000 {
		t.Errorf("Payment.FeeAmount = %d, want env override 25000", cfg.Payment.FeeAmount)
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("Database.MaxOpenConns = %d, want env override 50", cfg.Database.MaxOpenConns)
	}
	if !cfg.Storage.MinioUseSSL {
		t.Error("Storage.MinioUseSSL not overridden from environment")
	}
	// Untouched fields keep their defaults.
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want default localhost", cfg.Database.Host)
	}
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "7070")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "server:\n  port: \"6060\"\n  mode: production\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.Mode != "production" {
		t.Errorf("Server.Mode = %q, want value from file", cfg.Server.Mode)
	}
	// Environment wins over the file.
	if cfg.Server.Port != "7070" {
		t.Errorf("Server.Port = %q, want env override 7070", cfg.Server.Port)
	}
}

func TestLoadConfigRejectsMalformedEnvValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric fee", "PAYMENT_FEE_AMOUNT", "one hundred"},
		{"non-numeric year", "ADMISSIONS_YEAR", "next"},
		{"non-boolean ssl flag", "MINIO_USE_SSL", "enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig(missingConfigPath(t))
			if err == nil {
				t.Fatalf("LoadConfig() accepted %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name the offending variable %s", err, tt.key)
			}
		})
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(missingConfigPath(t)); err == nil {
		t.Fatal("LoadConfig() accepted an empty JWT secret")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "portal"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "seva"

	got := cfg.GetPostgresConnectionString()
	want := "postgres://portal:pw@db.internal:5433/seva?sslmode=disable"
	if got != want {
		t.Errorf("connection string = %q, want %q", got, want)
	}
}
