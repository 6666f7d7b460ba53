package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad_MissingFile ensures Load falls back to full defaults when no
// config file exists.
// Edge case: First run on a fresh machine.
func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TABLERO_THEME_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with missing file returned error: %v", err)
	}

	defaults := DefaultKeyMappings()
	if cfg.KeyMappings != defaults {
		t.Errorf("KeyMappings = %+v, want defaults %+v", cfg.KeyMappings, defaults)
	}
	if cfg.Limits != DefaultLimits() {
		t.Errorf("Limits = %+v, want defaults %+v", cfg.Limits, DefaultLimits())
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("ColorScheme.Accent is empty, want default accent")
	}
}

// TestLoad_PartialFile ensures values absent from the config file are
// filled with defaults while explicit values are kept.
func TestLoad_PartialFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TABLERO_THEME_FILE", "")

	configDir := filepath.Join(dir, "tablero")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	partial := `key_mappings:
  quit: "x"
limits:
  max_people: 9
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(partial), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Quit = %q, want %q from file", cfg.KeyMappings.Quit, "x")
	}
	if cfg.KeyMappings.AddProject != DefaultKeyMappings().AddProject {
		t.Errorf("AddProject = %q, want default %q", cfg.KeyMappings.AddProject, DefaultKeyMappings().AddProject)
	}
	if cfg.Limits.MaxPeople != 9 {
		t.Errorf("MaxPeople = %d, want 9 from file", cfg.Limits.MaxPeople)
	}
	if cfg.Limits.MinPeople != DefaultLimits().MinPeople {
		t.Errorf("MinPeople = %d, want default %d", cfg.Limits.MinPeople, DefaultLimits().MinPeople)
	}
}

// TestLoad_ThemeFileOverlay ensures TABLERO_THEME_FILE overrides the base
// scheme without touching unrelated colors.
func TestLoad_ThemeFileOverlay(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	theme := `theme:
  accent: "#123456"
`
	if err := os.WriteFile(themePath, []byte(theme), 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("TABLERO_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("Accent = %q, want overlay value #123456", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Subtle == "" {
		t.Error("Subtle is empty, want default preserved under overlay")
	}
}

// TestLimits_ApplyDefaults_InvertedRange ensures a max below min is replaced.
// Edge case: Hand-edited config with max_people < min_people.
func TestLimits_ApplyDefaults_InvertedRange(t *testing.T) {
	l := Limits{MinPeople: 4, MaxPeople: 2}
	l.applyDefaults()

	if l.MaxPeople < l.MinPeople {
		t.Errorf("applyDefaults left inverted range: min=%d max=%d", l.MinPeople, l.MaxPeople)
	}
}
