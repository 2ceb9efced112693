package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_ENV", "testing-no-such-file")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("default port = %d", cfg.Port)
	}
	if cfg.Mode != "release" {
		t.Fatalf("default mode = %q", cfg.Mode)
	}
	if cfg.PingPeriod != 54*time.Second {
		t.Fatalf("default ping period = %v", cfg.PingPeriod)
	}
	if cfg.ReadLimit != 32768 {
		t.Fatalf("default read limit = %d", cfg.ReadLimit)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("default max upload = %d", cfg.MaxUploadBytes)
	}
	if len(cfg.StunURLs) == 0 {
		t.Fatal("default STUN urls missing")
	}
}
