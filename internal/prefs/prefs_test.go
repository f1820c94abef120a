package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.Device != "" {
		t.Fatalf("Device = %q, want empty", p.Device)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`
device = "  komodo  "
theme = "Gruvbox"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Device != "komodo" {
		t.Fatalf("Device = %q, want komodo", p.Device)
	}
	if p.Theme != "Gruvbox" {
		t.Fatalf("Theme = %q, want Gruvbox", p.Theme)
	}
}

func TestLoad_MalformedFileDegradesToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = [broken`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want default after parse failure", p.Theme)
	}
}

func TestSave_RoundTrips(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	if err := Save(path, Prefs{Device: "komodo", Theme: "Plain"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Device != "komodo" || p.Theme != "Plain" {
		t.Fatalf("round trip = %#v, want device komodo theme Plain", p)
	}
}
