package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"WCL_LOCALE", "WCL_THEME", "WCL_RANGE", "WCL_FORMAT", "LC_ALL", "LC_TIME", "LANG"} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Format != DefaultFormat {
		t.Errorf("Format = %q, want %q", s.Format, DefaultFormat)
	}
	if s.Theme != "default" {
		t.Errorf("Theme = %q, want default", s.Theme)
	}
	if s.Range {
		t.Errorf("Range should default to false")
	}
	if s.Width != DefaultInputWidth {
		t.Errorf("Width = %d, want %d", s.Width, DefaultInputWidth)
	}
	if s.Buttons.Done != DefaultDoneTitle {
		t.Errorf("Buttons.Done = %q", s.Buttons.Done)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, AppName)
	if err := os.MkdirAll(configPath, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configPath, "config.yml"), []byte(`
locale: de-DE
theme: dracula
range: true
format: YYYY-MM-DD
width: 40
buttons:
  done: Fertig
`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Locale != "de-DE" || s.Theme != "dracula" || !s.Range {
		t.Errorf("unexpected settings %+v", s)
	}
	if s.Format != "YYYY-MM-DD" || s.Width != 40 {
		t.Errorf("unexpected format/width %q %d", s.Format, s.Width)
	}
	if s.Buttons.Done != "Fertig" || s.Buttons.Reset != DefaultResetTitle {
		t.Errorf("unexpected buttons %+v", s.Buttons)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, AppName)
	if err := os.MkdirAll(configPath, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configPath, "config.yml"), []byte("locale: fr\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("WCL_LOCALE", "es")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Locale != "es" {
		t.Errorf("Locale = %q, want es", s.Locale)
	}
}

func TestLoadFallsBackToSystemLocale(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LANG", "nl_NL.UTF-8")
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Locale != "nl_NL.UTF-8" {
		t.Errorf("Locale = %q", s.Locale)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, AppName)
	if err := os.MkdirAll(configPath, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configPath, "config.yml"), []byte("locale: [unterminated\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	in := &Settings{
		Locale: "it",
		Theme:  "dracula",
		Range:  true,
		Format: "D/M/YYYY",
		Width:  32,
		Buttons: ButtonTitles{
			Today: "Oggi",
			Reset: "Azzera",
			Done:  "Fatto",
		},
	}
	if err := Write(in); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	out, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if out.Locale != "it" || !out.Range || out.Buttons.Today != "Oggi" || out.Width != 32 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}
