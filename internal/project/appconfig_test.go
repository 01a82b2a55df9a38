package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/toolbox/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultRollWidthCM = 67
	cfg.DefaultMaterialKey = "kupfer"
	cfg.Theme = "dark"
	cfg.AutoSave = false
	cfg.RecentProjects = []string{"/tmp/dach.json", "/tmp/gaube.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultRollWidthCM != 67 {
		t.Errorf("expected DefaultRollWidthCM=67, got %f", loaded.DefaultRollWidthCM)
	}
	if loaded.DefaultMaterialKey != "kupfer" {
		t.Errorf("expected DefaultMaterialKey=kupfer, got %s", loaded.DefaultMaterialKey)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.AutoSave {
		t.Error("expected AutoSave=false")
	}
	if len(loaded.RecentProjects) != 2 {
		t.Errorf("expected 2 recent projects, got %d", len(loaded.RecentProjects))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultRollWidthCM != defaults.DefaultRollWidthCM {
		t.Errorf("expected default roll width %f, got %f", defaults.DefaultRollWidthCM, cfg.DefaultRollWidthCM)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme": "light"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected theme=light, got %s", cfg.Theme)
	}
	if cfg.DefaultRollLengthM != 30 {
		t.Errorf("expected default roll length 30, got %f", cfg.DefaultRollLengthM)
	}
	if cfg.CurrencySymbol != "€" {
		t.Errorf("expected currency €, got %s", cfg.CurrencySymbol)
	}
}

func TestSaveAppConfigCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("config file was not created")
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}
