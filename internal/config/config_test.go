package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Version != "1.0" {
		t.Errorf("version = %q, want 1.0", cfg.Version)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("address = %q, want :8080", cfg.Server.Address)
	}
	if cfg.Catalog.DefaultLanguage != "en" {
		t.Errorf("default language = %q, want en", cfg.Catalog.DefaultLanguage)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("loading missing file: %v", err)
	}
	if cfg.Version != Default().Version {
		t.Errorf("missing file did not yield the default config: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Catalog.Path = "/srv/pricing/catalog.hcl"
	cfg.Catalog.DefaultLanguage = "de"
	cfg.Server.Address = ":9090"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("saving: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if loaded.Catalog.Path != cfg.Catalog.Path {
		t.Errorf("catalog path = %q, want %q", loaded.Catalog.Path, cfg.Catalog.Path)
	}
	if loaded.Catalog.DefaultLanguage != "de" || loaded.Server.Address != ":9090" {
		t.Errorf("loaded config = %+v", loaded)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed config must error")
	}
}

func TestGlobalGetSet(t *testing.T) {
	orig := Get()
	defer Set(orig)

	cfg := Default()
	cfg.Server.Address = ":7070"
	Set(cfg)
	if Get().Server.Address != ":7070" {
		t.Errorf("global address = %q, want :7070", Get().Server.Address)
	}
}
