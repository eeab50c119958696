package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 2222 {
		t.Errorf("Port = %d, want 2222", cfg.Port)
	}
	if cfg.KeepInventory {
		t.Error("KeepInventory must default to false (drop mode)")
	}
	if cfg.TickInterval != 500*time.Millisecond {
		t.Errorf("TickInterval = %v, want 500ms", cfg.TickInterval)
	}
	if !cfg.MayBind("anyone") {
		t.Error("default binder list must be the wildcard")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SOULMUD_PORT", "2022")
	t.Setenv("SOULMUD_KEEP_INVENTORY", "true")
	t.Setenv("SOULMUD_BINDERS", "ayla,bram")
	t.Setenv("SOULMUD_TICK_INTERVAL", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 2022 {
		t.Errorf("Port = %d, want 2022", cfg.Port)
	}
	if !cfg.KeepInventory {
		t.Error("KeepInventory must be true")
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("TickInterval = %v, want 250ms", cfg.TickInterval)
	}
}

func TestMayBindAllowlist(t *testing.T) {
	cfg := Config{Binders: []string{"ayla", "bram"}}
	if !cfg.MayBind("ayla") || !cfg.MayBind("bram") {
		t.Error("listed users must be allowed")
	}
	if cfg.MayBind("cedric") {
		t.Error("unlisted user must be denied")
	}
}
