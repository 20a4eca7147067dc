// Package config holds the serve-mode configuration, loaded from a YAML
// file with environment overrides for deployment-specific values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen string `yaml:"listen"`

	// External tool paths; empty values resolve from PATH.
	FFmpegPath    string `yaml:"ffmpeg_path"`
	FFprobePath   string `yaml:"ffprobe_path"`
	TesseractPath string `yaml:"tesseract_path"`

	// WorkDir is the parent directory for per-run workspaces. Empty uses
	// the system temp dir.
	WorkDir string `yaml:"work_dir"`

	// MaxUploadBytes caps the multipart upload size.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	CORSOrigins []string `yaml:"cors_origins"`
}

func Default() *Config {
	return &Config{
		Listen:         ":8080",
		MaxUploadBytes: 2 << 30, // 2 GiB
		CORSOrigins:    []string{"*"},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		cfg.applyEnv()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("STAMPCUT_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("STAMPCUT_FFMPEG"); v != "" {
		c.FFmpegPath = v
	}
	if v := os.Getenv("STAMPCUT_FFPROBE"); v != "" {
		c.FFprobePath = v
	}
	if v := os.Getenv("STAMPCUT_TESSERACT"); v != "" {
		c.TesseractPath = v
	}
	if v := os.Getenv("STAMPCUT_WORKDIR"); v != "" {
		c.WorkDir = v
	}
}

func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload size must be > 0")
	}
	return nil
}
