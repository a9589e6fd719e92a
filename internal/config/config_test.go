package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MLSHOWCASE_CONFIG", "")
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Catalog.Path != ":memory:" {
		t.Errorf("catalog.path = %q", cfg.Catalog.Path)
	}
	if cfg.Loading.Step != 2 || cfg.Loading.Interval != 30*time.Millisecond || cfg.Loading.Settle != 400*time.Millisecond {
		t.Errorf("loading = %+v", cfg.Loading)
	}
	if cfg.UI.TransitionDelay != 0 || !cfg.UI.Mouse || !cfg.UI.AltScreen {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if cfg.Media.OpenCommand != "xdg-open" {
		t.Errorf("media.open_command = %q", cfg.Media.OpenCommand)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if Default() != cfg {
		t.Errorf("Default() = %+v, Load = %+v", Default(), cfg)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[loading]
step = 5
interval = "10ms"

[ui]
transition_delay = "300ms"
mouse = false

[media]
dir = "/srv/media"
open_command = "mpv --loop"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("MLSHOWCASE_CONFIG", path)
	t.Setenv("MLSHOWCASE_LOADING_STEP", "10")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Loading.Step != 10 {
		t.Errorf("env should override step, got %d", cfg.Loading.Step)
	}
	if cfg.Loading.Interval != 10*time.Millisecond {
		t.Errorf("interval = %s", cfg.Loading.Interval)
	}
	if cfg.Loading.Settle != 400*time.Millisecond {
		t.Errorf("settle default lost: %s", cfg.Loading.Settle)
	}
	if cfg.UI.TransitionDelay != 300*time.Millisecond || cfg.UI.Mouse {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if cfg.Media.Dir != "/srv/media" || cfg.Media.OpenCommand != "mpv --loop" {
		t.Errorf("media = %+v", cfg.Media)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Catalog.Path = "/tmp/showcase.db"
	cfg.Loading.Step = 4
	cfg.UI.TransitionDelay = 250 * time.Millisecond
	cfg.Log.Path = "/tmp/showcase.log"

	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := Save(cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"step zero", func(c *Config) { c.Loading.Step = 0 }, "loading.step"},
		{"step too big", func(c *Config) { c.Loading.Step = 101 }, "loading.step"},
		{"interval zero", func(c *Config) { c.Loading.Interval = 0 }, "loading.interval"},
		{"negative settle", func(c *Config) { c.Loading.Settle = -time.Second }, "loading.settle"},
		{"negative delay", func(c *Config) { c.UI.TransitionDelay = -time.Second }, "ui.transition_delay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}
