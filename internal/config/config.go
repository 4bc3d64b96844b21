package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"kvizgrad/internal/spec"
)

// Config covers paths and process plumbing only. The transformer chains and
// their replacement tables are fixed constants; see internal/spec and
// internal/rules.
type Config struct {
	DataDir     string `koanf:"data_dir"`
	OutputDir   string `koanf:"output_dir"`
	WordList    string `koanf:"wordlist"`
	MaxDistance int    `koanf:"max_suggest_distance"`
	MetricsPort int    `koanf:"metrics_port"` // 0 = no /metrics endpoint
}

// Load merges YAML (if present) with env vars
// (prefix `KVIZGRAD__`, delimiter `__`). Relative paths in the file resolve
// against the file's directory.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// optional file, env-only run
		case err != nil:
			return Config{}, err
		default:
			var hdr spec.Header
			if err := yamlv3.Unmarshal(raw, &hdr); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
			if err := hdr.Validate(); err != nil {
				return Config{}, err
			}
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, err
			}
		}
	}

	_ = k.Load(env.Provider("KVIZGRAD__", "__", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "KVIZGRAD__"))
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	resolvePaths(&cfg, path)
	return cfg, nil
}

func applyDefaults(c *Config) {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.OutputDir == "" {
		c.OutputDir = "data_out"
	}
	if c.MaxDistance == 0 {
		c.MaxDistance = 2
	}
}

func resolvePaths(c *Config, confPath string) {
	if confPath == "" {
		return
	}
	base := filepath.Dir(confPath)
	for _, p := range []*string{&c.DataDir, &c.OutputDir, &c.WordList} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}
