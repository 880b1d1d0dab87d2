package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CSVPath() != DefaultCSVPath() {
		t.Errorf("CSVPath() = %q, want default %q", cfg.CSVPath(), DefaultCSVPath())
	}
}

func TestSetCSVPath_Persists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	csvPath := filepath.Join(dir, "data", "readings.csv")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.SetCSVPath(csvPath); err != nil {
		t.Fatalf("SetCSVPath failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.CSVPath() != csvPath {
		t.Errorf("CSVPath() = %q, want %q", reloaded.CSVPath(), csvPath)
	}
}

func TestLoad_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "csv_file_path: /tmp/bp/readings.csv\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CSVPath() != "/tmp/bp/readings.csv" {
		t.Errorf("CSVPath() = %q, want %q", cfg.CSVPath(), "/tmp/bp/readings.csv")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("csv_file_path: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error but got nil")
	}

	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cerr.Path != path {
		t.Errorf("error path = %q, want %q", cerr.Path, path)
	}
}

func TestInitializeDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.InitializeDefault(); err != nil {
		t.Fatalf("InitializeDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "csv_file_path:") {
		t.Errorf("config file missing csv_file_path key: %q", string(data))
	}

	// A second call must not clobber an existing file.
	if err := cfg.SetCSVPath("/custom/path.csv"); err != nil {
		t.Fatalf("SetCSVPath failed: %v", err)
	}
	if err := cfg.InitializeDefault(); err != nil {
		t.Fatalf("InitializeDefault failed: %v", err)
	}
	reloaded, _ := Load(path)
	if reloaded.CSVPath() != "/custom/path.csv" {
		t.Errorf("InitializeDefault overwrote existing config: %q", reloaded.CSVPath())
	}
}
