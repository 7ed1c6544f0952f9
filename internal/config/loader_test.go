package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.MaxImageSide != 1024 {
		t.Errorf("MaxImageSide = %d, want 1024", cfg.MaxImageSide)
	}
	if cfg.RequestTimeoutMS != 40_000 {
		t.Errorf("RequestTimeoutMS = %d, want 40000", cfg.RequestTimeoutMS)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("OHMSCOPE_ADDR", ":9999")
	t.Setenv("OHMSCOPE_LOG_LEVEL", "debug")
	t.Setenv("OHMSCOPE_MAX_IMAGE_SIDE", "512")
	t.Setenv("OHMSCOPE_GOOGLE_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.MaxImageSide != 512 {
		t.Errorf("MaxImageSide = %d, want 512", cfg.MaxImageSide)
	}
	if cfg.GoogleAPIKey != "test-key" {
		t.Errorf("GoogleAPIKey = %q, want test-key", cfg.GoogleAPIKey)
	}
}

func TestLoadBareGoogleAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "bare-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GoogleAPIKey != "bare-key" {
		t.Errorf("GoogleAPIKey = %q, want bare-key", cfg.GoogleAPIKey)
	}
}
