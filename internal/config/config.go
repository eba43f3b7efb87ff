package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultUpstreamBaseURL = "https://api.creartai.com/api/v1"

// Config is assembled once at startup and never mutated afterwards.
type Config struct {
	Addr                string
	UpstreamBaseURL     string
	TextToImageTimeout  time.Duration
	ImageToImageTimeout time.Duration
}

func Load() (*Config, error) {
	// a missing .env file is fine; real env vars still apply
	_ = godotenv.Load()

	cfg := &Config{
		Addr:                getEnvOrDefault("ADDR", ":8080"),
		UpstreamBaseURL:     strings.TrimSuffix(getEnvOrDefault("UPSTREAM_BASE_URL", defaultUpstreamBaseURL), "/"),
		TextToImageTimeout:  getEnvAsDurationOrDefault("TEXT_TO_IMAGE_TIMEOUT", 60*time.Second),
		ImageToImageTimeout: getEnvAsDurationOrDefault("IMAGE_TO_IMAGE_TIMEOUT", 120*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR must not be empty")
	}
	u, err := url.Parse(c.UpstreamBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL %q is not an absolute url", c.UpstreamBaseURL)
	}
	if c.TextToImageTimeout <= 0 {
		return fmt.Errorf("TEXT_TO_IMAGE_TIMEOUT must be positive")
	}
	if c.ImageToImageTimeout <= 0 {
		return fmt.Errorf("IMAGE_TO_IMAGE_TIMEOUT must be positive")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsDurationOrDefault(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
