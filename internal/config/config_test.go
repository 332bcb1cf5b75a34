package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CURIOLAB_ADDR", "")
	t.Setenv("CURIOLAB_DB", "/tmp/curiolab-test.db")
	t.Setenv("CURIOLAB_LOG_MODE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8000" {
		t.Errorf("Addr = %q, want :8000", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/curiolab-test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogMode != "production" {
		t.Errorf("LogMode = %q, want production", cfg.LogMode)
	}
	if len(cfg.AllowedOrigins) != 3 {
		t.Errorf("AllowedOrigins = %v, want the three localhost dev ports", cfg.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CURIOLAB_ADDR", "127.0.0.1:9000")
	t.Setenv("CURIOLAB_DB", "/tmp/other.db")
	t.Setenv("CURIOLAB_LOG_MODE", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.LogMode != "development" {
		t.Errorf("LogMode = %q", cfg.LogMode)
	}
}

func TestLoad_RejectsBadLogMode(t *testing.T) {
	t.Setenv("CURIOLAB_DB", "/tmp/curiolab-test.db")
	t.Setenv("CURIOLAB_LOG_MODE", "verbose")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid log mode")
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("CURIOLAB_TEST_INT", "42")
	if got := GetEnvAsInt("CURIOLAB_TEST_INT", 7); got != 42 {
		t.Errorf("got %d, want 42", got)
	}
	if got := GetEnvAsInt("CURIOLAB_TEST_MISSING", 7); got != 7 {
		t.Errorf("got %d, want fallback 7", got)
	}
	t.Setenv("CURIOLAB_TEST_INT", "not-a-number")
	if got := GetEnvAsInt("CURIOLAB_TEST_INT", 7); got != 7 {
		t.Errorf("got %d, want fallback 7 on parse failure", got)
	}
}
