package config

import "testing"

func TestLoadLogDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := LoadLog()
	if err != nil {
		t.Fatalf("LoadLog() error = %v", err)
	}
	if cfg.Level != "info" {
		t.Fatalf("Level = %q, want info", cfg.Level)
	}
	if cfg.MaxMB != 10 {
		t.Fatalf("MaxMB = %d, want 10", cfg.MaxMB)
	}
}

func TestLoadLogParse(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")

	cfg, err := LoadLog()
	if err != nil {
		t.Fatalf("LoadLog() error = %v", err)
	}
	if cfg.Level != "debug" || !cfg.Pretty {
		t.Fatalf("unexpected log config: %+v", cfg)
	}
}
