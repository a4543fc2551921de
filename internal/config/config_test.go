package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("STORAGE_DIR", "")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.StorageDir != ".arisport" {
		t.Fatalf("expected default storage dir, got %q", cfg.StorageDir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("ADMIN_API_KEY", "sekret")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()
	if cfg.Addr != ":9090" || cfg.AdminKey != "sekret" || cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("env values not picked up: %+v", cfg)
	}
}
