// Package config loads the srslint configuration from a YAML file and the
// environment. Configuration problems are the only fatal errors of a run:
// everything past validation is contained per file or per sentence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Input       InputConfig       `yaml:"input"`
	Segmenter   SegmenterConfig   `yaml:"segmenter"`
	Rewrite     RewriteConfig     `yaml:"rewrite"`
	Modals      []string          `yaml:"modals"`
	Performance PerformanceConfig `yaml:"performance"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type InputConfig struct {
	Dir string `yaml:"dir"`

	// MinSentenceWords filters out sentences shorter than this many
	// words (headings, list markers). Zero disables the filter; a pointer
	// keeps an explicit zero apart from the field being absent.
	MinSentenceWords *int `yaml:"min_sentence_words"`
}

type SegmenterConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type RewriteConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	// APIKeys is taken from GEMINI_API_KEY (comma separated), never from
	// the YAML file.
	APIKeys []string `yaml:"-"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultModals is the closed vocabulary of weak conditional modal verbs.
var DefaultModals = []string{"could", "might", "should", "would"}

// Load reads the YAML file at path, fills defaults and picks up the API
// credential from the environment (a .env file is honored). A missing
// config file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyDefaults()

	if keys := os.Getenv("GEMINI_API_KEY"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				cfg.Rewrite.APIKeys = append(cfg.Rewrite.APIKeys, k)
			}
		}
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Input.Dir == "" {
		c.Input.Dir = "data/srs"
	}
	if c.Input.MinSentenceWords == nil {
		minWords := 3
		c.Input.MinSentenceWords = &minWords
	}
	if c.Segmenter.URL == "" {
		c.Segmenter.URL = "http://localhost:8800/parse"
	}
	if c.Segmenter.TimeoutSeconds == 0 {
		c.Segmenter.TimeoutSeconds = 30
	}
	if c.Rewrite.Model == "" {
		c.Rewrite.Model = "gemini-2.5-flash"
	}
	if c.Rewrite.TimeoutSeconds == 0 {
		c.Rewrite.TimeoutSeconds = 30
	}
	if len(c.Modals) == 0 {
		c.Modals = append([]string{}, DefaultModals...)
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration. It must pass before any processing
// starts.
func (c *Config) Validate() error {
	info, err := os.Stat(c.Input.Dir)
	if err != nil {
		return fmt.Errorf("input dir %s: %w", c.Input.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input dir %s is not a directory", c.Input.Dir)
	}

	if c.Segmenter.URL == "" {
		return fmt.Errorf("segmenter.url is required")
	}

	if c.Rewrite.Enabled && len(c.Rewrite.APIKeys) == 0 {
		return fmt.Errorf("rewriting enabled but GEMINI_API_KEY is not set")
	}

	if c.Input.MinSentenceWords != nil && *c.Input.MinSentenceWords < 0 {
		return fmt.Errorf("input.min_sentence_words must not be negative")
	}

	if c.Performance.MaxConcurrent < 1 {
		return fmt.Errorf("performance.max_concurrent must be at least 1")
	}

	return nil
}
