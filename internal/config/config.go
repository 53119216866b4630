package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default corpus directory scanned for source PDFs when no override is given.
const DefaultCorpusDir = "law_pdfs"

// Config is the in-memory representation of ~/.lexcite/lexcite.yaml.
//
// Environment variables take precedence over the file:
//
//	LEXCITE_CORPUS_DIR      overrides CorpusDir
//	LEXCITE_INDEX_DIR       overrides IndexDir
//	LEXCITE_USE_EMBEDDINGS  "1" enables embedding-based retrieval
type Config struct {
	CorpusDir     string `yaml:"corpus_dir"`
	IndexDir      string `yaml:"index_dir,omitempty"`
	UseEmbeddings bool   `yaml:"use_embeddings,omitempty"`
}

// LexDir returns the absolute path to ~/.lexcite/.
func LexDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".lexcite"), nil
}

// ConfigPath returns the absolute path to ~/.lexcite/lexcite.yaml.
func ConfigPath() (string, error) {
	dir, err := LexDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lexcite.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config used when no lexcite.yaml exists.
func DefaultConfig() (*Config, error) {
	dir, err := LexDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		CorpusDir: DefaultCorpusDir,
		IndexDir:  filepath.Join(dir, "search"),
	}, nil
}

// Load resolves the effective configuration: defaults, then lexcite.yaml if
// present, then environment / dotenv overrides. A missing config file is not
// an error — the tool must work out of the box against ./law_pdfs.
func Load() (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	if v, err := GetConfigValue("LEXCITE_CORPUS_DIR"); err == nil && v != "" {
		cfg.CorpusDir = v
	}
	if v, err := GetConfigValue("LEXCITE_INDEX_DIR"); err == nil && v != "" {
		cfg.IndexDir = v
	}
	if v, err := GetConfigValue("LEXCITE_USE_EMBEDDINGS"); err == nil && v == "1" {
		cfg.UseEmbeddings = true
	}

	if cfg.CorpusDir == "" {
		cfg.CorpusDir = DefaultCorpusDir
	}
	cfg.CorpusDir, err = ExpandPath(cfg.CorpusDir)
	if err != nil {
		return nil, err
	}
	cfg.IndexDir, err = ExpandPath(cfg.IndexDir)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save marshals cfg and writes it to ~/.lexcite/lexcite.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
