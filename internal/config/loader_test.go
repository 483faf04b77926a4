package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTunnelEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep a real user config out of the search path

	cfg, err := LoadTunnel("")
	if err != nil {
		t.Fatalf("LoadTunnel(\"\") returned error: %v", err)
	}
	want := DefaultTunnelConfig()
	if cfg.Pacing.StepEveryTicks != want.Pacing.StepEveryTicks {
		t.Errorf("pacing.step_every_ticks = %d, expected %d", cfg.Pacing.StepEveryTicks, want.Pacing.StepEveryTicks)
	}
	if cfg.Demo.TargetScore != want.Demo.TargetScore {
		t.Errorf("demo.target_score = %d, expected %d", cfg.Demo.TargetScore, want.Demo.TargetScore)
	}
}

func TestLoadTunnelCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tunnel.yaml")
	yaml := "pacing:\n  step_every_ticks: 3\ndemo:\n  step_every_ticks: 2\n  target_score: 50\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadTunnel(path)
	if err != nil {
		t.Fatalf("LoadTunnel(%s) returned error: %v", path, err)
	}
	if cfg.Pacing.StepEveryTicks != 3 {
		t.Errorf("pacing.step_every_ticks = %d, expected 3", cfg.Pacing.StepEveryTicks)
	}
	if cfg.Demo.StepEveryTicks != 2 {
		t.Errorf("demo.step_every_ticks = %d, expected 2", cfg.Demo.StepEveryTicks)
	}
	if cfg.Demo.TargetScore != 50 {
		t.Errorf("demo.target_score = %d, expected 50", cfg.Demo.TargetScore)
	}
}

func TestLoadTunnelMissingCustomPath(t *testing.T) {
	_, err := LoadTunnel(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing explicit config path")
	}
}

func TestLoadTunnelMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tunnel.yaml")
	if err := os.WriteFile(path, []byte("pacing: ["), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadTunnel(path); err == nil {
		t.Fatal("expected a parse error for malformed yaml")
	}
}
