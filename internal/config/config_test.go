package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Engine.HashMB != 64 {
		t.Errorf("expected default HashMB 64, got %d", cfg.Engine.HashMB)
	}
	if cfg.Engine.DefaultDepth != 8 {
		t.Errorf("expected default depth 8, got %d", cfg.Engine.DefaultDepth)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if cfg.Engine.HashMB != Default().Engine.HashMB {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thera.yaml")
	content := "engine:\n  hash_mb: 256\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.HashMB != 256 {
		t.Errorf("expected overridden HashMB 256, got %d", cfg.Engine.HashMB)
	}
	if cfg.Engine.DefaultDepth != Default().Engine.DefaultDepth {
		t.Errorf("expected default depth to fill in, got %d", cfg.Engine.DefaultDepth)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thera.yaml")
	if err := os.WriteFile(path, []byte("engine: [this is not a map"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML, got nil")
	}
}
