package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_PORT", "RENDER_LANG", "RENDER_VALIDATE", "SEED"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.Port != 5432 {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Render.Lang != "fr" || cfg.Render.Currency != "EUR" || cfg.Render.Validate {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.App.Seed {
		t.Error("seed should default to false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/docs.db")
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("RENDER_VALIDATE", "yes")
	t.Setenv("RENDER_LANG", "en")

	cfg := Load()
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("driver = %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN() != "/tmp/docs.db" {
		t.Errorf("sqlite DSN = %q", cfg.Database.DSN())
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("invalid port should fall back, got %d", cfg.Database.Port)
	}
	if !cfg.Render.Validate || cfg.Render.Lang != "en" {
		t.Errorf("render = %+v", cfg.Render)
	}
}

func TestPostgresDSN(t *testing.T) {
	d := DatabaseConfig{Driver: "postgres", Host: "db", Port: 5433, User: "u", Password: "p", DBName: "docs", SSLMode: "require"}
	want := "host=db port=5433 user=u password=p dbname=docs sslmode=require"
	if got := d.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}
