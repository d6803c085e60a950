package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if *cfg.Input.MinSentenceWords != 3 {
		t.Errorf("MinSentenceWords = %d, want 3", *cfg.Input.MinSentenceWords)
	}
	if cfg.Segmenter.URL == "" {
		t.Error("expected default segmenter URL")
	}
	if !reflect.DeepEqual(cfg.Modals, DefaultModals) {
		t.Errorf("Modals = %v, want %v", cfg.Modals, DefaultModals)
	}
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent = %d, want 1", cfg.Performance.MaxConcurrent)
	}
	if cfg.Rewrite.Enabled {
		t.Error("rewriting must be disabled by default")
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key-a, key-b")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
input:
  dir: ` + dir + `
  min_sentence_words: 2
segmenter:
  url: http://parser:9000/parse
rewrite:
  enabled: true
  model: gemini-2.5-pro
modals: [may, shall]
performance:
  max_concurrent: 4
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if *cfg.Input.MinSentenceWords != 2 {
		t.Errorf("MinSentenceWords = %d, want 2", *cfg.Input.MinSentenceWords)
	}
	if cfg.Segmenter.URL != "http://parser:9000/parse" {
		t.Errorf("Segmenter.URL = %s", cfg.Segmenter.URL)
	}
	if !reflect.DeepEqual(cfg.Modals, []string{"may", "shall"}) {
		t.Errorf("Modals = %v", cfg.Modals)
	}
	if !reflect.DeepEqual(cfg.Rewrite.APIKeys, []string{"key-a", "key-b"}) {
		t.Errorf("APIKeys = %v", cfg.Rewrite.APIKeys)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoadExplicitZeroMinWords(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
input:
  dir: ` + dir + `
  min_sentence_words: 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if *cfg.Input.MinSentenceWords != 0 {
		t.Errorf("MinSentenceWords = %d, want 0 (filter disabled)", *cfg.Input.MinSentenceWords)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing input dir",
			mutate:  func(c *Config) { c.Input.Dir = filepath.Join(dir, "nope") },
			wantErr: true,
		},
		{
			name: "input dir is a file",
			mutate: func(c *Config) {
				f := filepath.Join(dir, "file.txt")
				os.WriteFile(f, []byte("x"), 0644)
				c.Input.Dir = f
			},
			wantErr: true,
		},
		{
			name:    "empty segmenter url",
			mutate:  func(c *Config) { c.Segmenter.URL = "" },
			wantErr: true,
		},
		{
			name:    "rewrite enabled without credential",
			mutate:  func(c *Config) { c.Rewrite.Enabled = true },
			wantErr: true,
		},
		{
			name: "rewrite enabled with credential",
			mutate: func(c *Config) {
				c.Rewrite.Enabled = true
				c.Rewrite.APIKeys = []string{"key"}
			},
			wantErr: false,
		},
		{
			name: "negative min sentence words",
			mutate: func(c *Config) {
				minWords := -1
				c.Input.MinSentenceWords = &minWords
			},
			wantErr: true,
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Performance.MaxConcurrent = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			cfg.Input.Dir = dir
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
