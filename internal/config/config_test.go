package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadResolvesRelativePathsAndSchema(t *testing.T) {
	dir := t.TempDir()
	cfg := []byte(`schema_version: v1
data_dir: data
output_dir: out
wordlist: words_sr.txt
metrics_port: 9100
`)
	path := filepath.Join(dir, "kvizgrad.yml")
	if err := os.WriteFile(path, cfg, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DataDir != filepath.Join(dir, "data") {
		t.Fatalf("data_dir = %q", c.DataDir)
	}
	if c.OutputDir != filepath.Join(dir, "out") {
		t.Fatalf("output_dir = %q", c.OutputDir)
	}
	if c.WordList != filepath.Join(dir, "words_sr.txt") {
		t.Fatalf("wordlist = %q", c.WordList)
	}
	if c.MetricsPort != 9100 {
		t.Fatalf("metrics_port = %d", c.MetricsPort)
	}
}

func TestLoadInvalidSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kvizgrad.yml")
	if err := os.WriteFile(path, []byte("schema_version: v999\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid schema_version")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if filepath.Base(c.DataDir) != "data" || filepath.Base(c.OutputDir) != "data_out" {
		t.Fatalf("defaults not applied: %+v", c)
	}
	if c.MaxDistance != 2 {
		t.Fatalf("max distance default = %d", c.MaxDistance)
	}
	if c.WordList != "" {
		t.Fatalf("wordlist should stay empty, got %q", c.WordList)
	}
}

func TestLoadEnvOverlay(t *testing.T) {
	t.Setenv("KVIZGRAD__OUTPUT_DIR", "/tmp/elsewhere")
	t.Setenv("KVIZGRAD__METRICS_PORT", "7070")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.OutputDir != "/tmp/elsewhere" {
		t.Fatalf("output_dir = %q", c.OutputDir)
	}
	if c.MetricsPort != 7070 {
		t.Fatalf("metrics_port = %d", c.MetricsPort)
	}
}
