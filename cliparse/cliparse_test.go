// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"testing"
)

// clearEnv blanks every variable ParseFlags reads
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "CATALOG_PATH", "CORS_ORIGIN"} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != DefaultSQLiteURL {
		t.Errorf("expected %s, got %s", DefaultSQLiteURL, cfg.DatabaseURL)
	}
	if cfg.CatalogPath != "" || cfg.CORSOrigin != "" {
		t.Errorf("expected empty catalog path and origin, got %+v", cfg)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("CATALOG_PATH", "parade.yaml")
	t.Setenv("CORS_ORIGIN", "https://jury.example")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" || cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected database config: %+v", cfg)
	}
	if cfg.CatalogPath != "parade.yaml" {
		t.Errorf("expected catalog path from env, got %s", cfg.CatalogPath)
	}
	if cfg.CORSOrigin != "https://jury.example" {
		t.Errorf("expected CORS origin from env, got %s", cfg.CORSOrigin)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "env.db")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "cli.db", "-c", "other.yaml"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "cli.db" {
		t.Errorf("CLI should override env: expected cli.db, got %s", cfg.DatabaseURL)
	}
	if cfg.CatalogPath != "other.yaml" {
		t.Errorf("expected other.yaml, got %s", cfg.CatalogPath)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"invalid port env", map[string]string{"PORT": "abc"}, nil},
		{"unknown database type", nil, []string{"-t", "mysql"}},
		{"postgres without url", nil, []string{"-t", "postgres"}},
		{"unknown flag", nil, []string{"-x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFlags_MemoryIgnoresURL(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-t", "memory", "-d", "ignored.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "" {
		t.Errorf("expected empty URL for memory store, got %s", cfg.DatabaseURL)
	}
}
