package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load should succeed with defaults: %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Port)
	}
	if cfg.SessionCookieName != "session" {
		t.Errorf("expected cookie name session, got %s", cfg.SessionCookieName)
	}
	if cfg.SubmitRateWindow != time.Minute {
		t.Errorf("expected submit window 1m, got %s", cfg.SubmitRateWindow)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("expected addr :8000, got %s", cfg.Addr())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SECRET_KEY", "a-much-longer-secret-value")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load should succeed: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.SecretKey != "a-much-longer-secret-value" {
		t.Errorf("expected secret from env, got %q", cfg.SecretKey)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
}

func TestLoad_ShortSecretRejected(t *testing.T) {
	t.Setenv("SECRET_KEY", "short")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for short secret key")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Port:              8000,
		DatabaseURL:       "postgres://localhost/db",
		SecretKey:         "0123456789abcdef",
		SessionCookieName: "session",
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Port = 70000 }, true},
		{"missing database", func(c *Config) { c.DatabaseURL = "" }, true},
		{"missing cookie name", func(c *Config) { c.SessionCookieName = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
