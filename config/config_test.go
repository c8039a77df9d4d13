package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paperfold.yaml")
	want := Config{
		Title:      "My Vault",
		NotesLabel: "Hint:",
		PageSize:   "Letter",
		OutputName: "vault.pdf",
	}
	if err := SaveTo(want, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paperfold.yaml")
	if err := os.WriteFile(path, []byte("title: Backup\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Title != "Backup" {
		t.Errorf("Title = %q", cfg.Title)
	}
	// unset fields keep their defaults
	if cfg.PageSize != "A4" || cfg.OutputName != "secret.pdf" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadFromBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paperfold.yaml")
	if err := os.WriteFile(path, []byte("title: [unclosed\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("malformed file loaded without error")
	}
}
