package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatalf("expected default env to be dev, got %q", cfg.App.Env)
	}
	if cfg.Catalog.PageSize != 6 {
		t.Fatalf("expected catalog page size 6, got %d", cfg.Catalog.PageSize)
	}
	if cfg.Blog.PageSize != 6 {
		t.Fatalf("expected blog page size 6, got %d", cfg.Blog.PageSize)
	}
	if cfg.Booking.SubmitLatency != 2*time.Second {
		t.Fatalf("unexpected submit latency %v", cfg.Booking.SubmitLatency)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HADAYA_APP_ENV", "prod")
	t.Setenv("HADAYA_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("HADAYA_CATALOG_PAGE_SIZE", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected App.Env to be prod, got %q", cfg.App.Env)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
	if cfg.Catalog.PageSize != 12 {
		t.Fatalf("expected catalog page size override, got %d", cfg.Catalog.PageSize)
	}
}
