package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvPath returns the absolute path to LexCite's dotenv file (~/.lexcite/.env).
func DotEnvPath() (string, error) {
	dir, err := LexDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// LoadDotEnv reads ~/.lexcite/.env and returns key/value pairs.
// A missing file yields an empty map, not an error.
func LoadDotEnv() (map[string]string, error) {
	p, err := DotEnvPath()
	if err != nil {
		return nil, err
	}
	env, err := godotenv.Read(p)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return env, nil
}

// GetConfigValue returns the effective value for key, using process environment
// variables first and falling back to ~/.lexcite/.env.
func GetConfigValue(key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	dotenv, err := LoadDotEnv()
	if err != nil {
		return "", err
	}
	return dotenv[key], nil
}

// EnsureDotEnvTemplate creates ~/.lexcite/.env if it does not already exist.
//
// The template contains configuration keys with empty values so users can fill
// them in when they want to enable embedding-based retrieval.
func EnsureDotEnvTemplate() error {
	p, err := DotEnvPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat dotenv file %s: %w", p, err)
	}

	body := "" +
		"LEXCITE_USE_EMBEDDINGS=\n" +
		"LEXCITE_EMBEDDINGS_PROVIDER=\n" +
		"LEXCITE_EMBEDDINGS_MODEL=\n" +
		"LEXCITE_EMBEDDINGS_API_KEY=\n" +
		"LEXCITE_EMBEDDINGS_BASE_URL=\n"

	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		return fmt.Errorf("cannot write dotenv template %s: %w", p, err)
	}
	return nil
}
