// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
	"time"
)

var envVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV", "LOG_LEVEL",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_PUBLIC_URL",
	"RESEND_API_KEY", "MAIL_FROM", "ADMIN_EMAIL",
	"JWT_SECRET", "JWT_ISSUER", "DB_TIMEOUT", "UPSTREAM_TIMEOUT",
}

// clearEnv sets every variable Load reads to "", which envOrDefault treats
// the same as unset. t.Setenv restores the previous values afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	defaults := map[string][2]string{
		"Host":       {cfg.Host, "0.0.0.0"},
		"Port":       {cfg.Port, "8080"},
		"Env":        {cfg.Env, "development"},
		"LogLevel":   {cfg.LogLevel, "INFO"},
		"DBUser":     {cfg.DBUser, "apigs"},
		"DBPassword": {cfg.DBPassword, "changeme"},
		"DBName":     {cfg.DBName, "apigs"},
		"ValkeyPort": {cfg.ValkeyPort, "6379"},
		"S3Region":   {cfg.S3Region, "auto"},
		"S3Bucket":   {cfg.S3Bucket, "apigs-media"},
		"MailFrom":   {cfg.MailFrom, "APIGS Contact Form <onboarding@resend.dev>"},
		"JWTSecret":  {cfg.JWTSecret, ""},
	}
	for field, pair := range defaults {
		if pair[0] != pair[1] {
			t.Errorf("%s: got %q, want %q", field, pair[0], pair[1])
		}
	}

	if cfg.DBTimeout != 5*time.Second || cfg.UpstreamTimeout != 10*time.Second {
		t.Errorf("timeouts = %v / %v, want 5s / 10s", cfg.DBTimeout, cfg.UpstreamTimeout)
	}
	if cfg.StorageEnabled() {
		t.Error("StorageEnabled() = true without credentials")
	}
	if !cfg.IsDev() {
		t.Error("IsDev() = false for default env")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_TIMEOUT", "750ms")
	t.Setenv("S3_ENDPOINT", "https://s3.example")
	t.Setenv("S3_ACCESS_KEY", "ak")
	t.Setenv("S3_SECRET_KEY", "sk")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Addr() != "0.0.0.0:9000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.DBTimeout != 750*time.Millisecond {
		t.Errorf("DBTimeout = %v", cfg.DBTimeout)
	}
	if !cfg.StorageEnabled() {
		t.Error("StorageEnabled() = false with credentials")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "UPSTREAM_TIMEOUT") {
		t.Errorf("Load() error = %v, want UPSTREAM_TIMEOUT error", err)
	}
}

func TestLoad_ProductionRequiresPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("Load() in production with default password: want error")
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	if _, err := Load(); err != nil {
		t.Errorf("Load() with password: %v", err)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "1", DBName: "d"}
	if got, want := cfg.DSN(), "postgres://u:p@h:1/d?sslmode=disable"; got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
