package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://api.creartai.com/api/v1", cfg.UpstreamBaseURL)
	assert.Equal(t, 60*time.Second, cfg.TextToImageTimeout)
	assert.Equal(t, 120*time.Second, cfg.ImageToImageTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("UPSTREAM_BASE_URL", "http://localhost:8081/api/v1/")
	t.Setenv("TEXT_TO_IMAGE_TIMEOUT", "5s")
	t.Setenv("IMAGE_TO_IMAGE_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "http://localhost:8081/api/v1", cfg.UpstreamBaseURL, "trailing slash trimmed")
	assert.Equal(t, 5*time.Second, cfg.TextToImageTimeout)
	assert.Equal(t, 10*time.Second, cfg.ImageToImageTimeout)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("TEXT_TO_IMAGE_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.TextToImageTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty addr", func(c *Config) { c.Addr = "" }, "ADDR"},
		{"relative base url", func(c *Config) { c.UpstreamBaseURL = "api.creartai.com/api/v1" }, "UPSTREAM_BASE_URL"},
		{"zero text timeout", func(c *Config) { c.TextToImageTimeout = 0 }, "TEXT_TO_IMAGE_TIMEOUT"},
		{"negative image timeout", func(c *Config) { c.ImageToImageTimeout = -time.Second }, "IMAGE_TO_IMAGE_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Addr:                ":8080",
				UpstreamBaseURL:     "https://api.creartai.com/api/v1",
				TextToImageTimeout:  time.Minute,
				ImageToImageTimeout: 2 * time.Minute,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
