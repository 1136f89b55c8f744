// Package config holds runtime settings for the lookup engine. Settings come
// from a JSON file with environment-variable overrides; a .env file in the
// working directory is loaded first if present.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Dictionary controls which dictionary files are loaded at startup.
type Dictionary struct {
	Enabled         bool     `json:"enabled"`
	Path            string   `json:"path"`
	AdditionalPaths []string `json:"additional_paths,omitempty"`
}

// Enrichment points at the optional frequency, pitch accent and JLPT data
// files. Empty paths fall back to the built-in tables.
type Enrichment struct {
	Enabled       bool   `json:"enabled"`
	FrequencyPath string `json:"frequency_path,omitempty"`
	PitchPath     string `json:"pitch_path,omitempty"`
	JLPTPath      string `json:"jlpt_path,omitempty"`
}

// Reading selects the morphological dictionary used for kana annotation.
type Reading struct {
	Enabled bool   `json:"enabled"`
	Dict    string `json:"dict,omitempty"`
}

type Config struct {
	Dictionary Dictionary `json:"dictionary"`
	Enrichment Enrichment `json:"enrichment"`
	Reading    Reading    `json:"reading"`
	LogDir     string     `json:"log_dir"`
}

// Default returns the configuration used when no file is present: built-in
// enrichment tables, IPA readings, logs under ./logs, no dictionary file.
func Default() Config {
	return Config{
		Dictionary: Dictionary{Enabled: true},
		Enrichment: Enrichment{Enabled: true},
		Reading:    Reading{Enabled: true, Dict: "ipa"},
		LogDir:     "logs",
	}
}

// Load reads path as JSON, then applies environment overrides. A missing file
// is not an error; the defaults are used. A present but malformed file is.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := json.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SAYA_DICTIONARY_PATH"); v != "" {
		c.Dictionary.Path = v
	}
	if v := os.Getenv("SAYA_DICTIONARY_EXTRA"); v != "" {
		c.Dictionary.AdditionalPaths = splitPaths(v)
	}
	if v := os.Getenv("SAYA_FREQUENCY_PATH"); v != "" {
		c.Enrichment.FrequencyPath = v
	}
	if v := os.Getenv("SAYA_PITCH_PATH"); v != "" {
		c.Enrichment.PitchPath = v
	}
	if v := os.Getenv("SAYA_JLPT_PATH"); v != "" {
		c.Enrichment.JLPTPath = v
	}
	if v := os.Getenv("SAYA_READING_DICT"); v != "" {
		c.Reading.Dict = v
	}
	if v := os.Getenv("SAYA_LOG_DIR"); v != "" {
		c.LogDir = v
	}
}

func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, string(os.PathListSeparator)) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
