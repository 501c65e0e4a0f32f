package config

import (
	"errors"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Addr == "" {
		t.Fatal("expected default server addr")
	}
	if cfg.Auth.TokenTTLMinutes != 60 {
		t.Fatalf("expected default ttl 60, got %d", cfg.Auth.TokenTTLMinutes)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("expected default bcrypt cost 10, got %d", cfg.Auth.BcryptCost)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TASKTRACK_AUTH_JWTSECRET", "env-secret")
	t.Setenv("TASKTRACK_SERVER_ADDR", "127.0.0.1:9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Fatalf("jwt secret not read from env, got %q", cfg.Auth.JWTSecret)
	}
	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Fatalf("server addr not read from env, got %q", cfg.Server.Addr)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}

func TestValidate_MissingSecret(t *testing.T) {
	var cfg Config
	cfg.Auth.TokenTTLMinutes = 60

	if err := cfg.Validate(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}

	cfg.Auth.JWTSecret = "   "
	if err := cfg.Validate(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret for blank secret, got %v", err)
	}

	cfg.Auth.JWTSecret = "s"
	cfg.Auth.TokenTTLMinutes = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive ttl")
	}
}
