package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/server/ratelimit"
)

// inTempDir runs the test from an empty directory so no stray config file is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORSOrigins)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Equal(t, int64(256<<10), cfg.MaxTextBytes)
	assert.Equal(t, 10*time.Second, cfg.ExtractTimeout)
	assert.Empty(t, cfg.VocabularyFile)
	assert.False(t, cfg.Log.JSON)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.ScoreLimit)
	assert.Empty(t, cfg.RateLimit.Whitelist)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := inTempDir(t)
	content := `
port: 9090
cors_origins:
  - https://app.example.com
extract_timeout: 3s
vocabulary_file: /etc/resume_scorer/vocabulary.yaml
log:
  json: true
  debug: true
rate_limit:
  score_limit: 5
  score_window: 1h
  whitelist: ["10.0.0.1"]
`
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.ExtractTimeout)
	assert.Equal(t, "/etc/resume_scorer/vocabulary.yaml", cfg.VocabularyFile)
	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, 5, cfg.RateLimit.ScoreLimit)
	assert.Equal(t, time.Hour, cfg.RateLimit.ScoreWindow)
	assert.Equal(t, 10, cfg.RateLimit.ScoreBurst)
	assert.Equal(t, []string{"10.0.0.1"}, cfg.RateLimit.Whitelist)
}

func TestLoad_DefaultFileInWorkingDirectory(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume_scorer.json"), []byte(`{"port": 7070}`), 0644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoad_Environment(t *testing.T) {
	inTempDir(t)
	t.Setenv("RESUME_SCORER_MAX_TEXT_BYTES", "1024")
	t.Setenv("RESUME_SCORER_RATE_LIMIT_ENABLED", "false")
	t.Setenv("RESUME_SCORER_LOG_JSON", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("PORT", "8181")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, int64(1024), cfg.MaxTextBytes)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 8181, cfg.Port)
}

func TestLoad_PrefixedEnvironmentWinsOverBareName(t *testing.T) {
	inTempDir(t)
	t.Setenv("PORT", "8181")
	t.Setenv("RESUME_SCORER_PORT", "8282")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 8282, cfg.Port)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(New(), "/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{ invalid json }"), 0644))

	cfg, err := Load(New(), path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load(New(), "")
		require.NoError(t, err)
		return cfg
	}
	inTempDir(t)

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero port", func(c *Config) { c.Port = 0 }, "'port'"},
		{"port too large", func(c *Config) { c.Port = 70000 }, "'port'"},
		{"zero upload size", func(c *Config) { c.MaxUploadBytes = 0 }, "'max_upload_bytes'"},
		{"negative text size", func(c *Config) { c.MaxTextBytes = -1 }, "'max_text_bytes'"},
		{"zero timeout", func(c *Config) { c.ExtractTimeout = 0 }, "'extract_timeout'"},
		{"negative score limit", func(c *Config) { c.RateLimit.ScoreLimit = -1 }, "non-negative"},
		{"zero window", func(c *Config) { c.RateLimit.ScoreWindow = 0 }, "windows"},
		{"disabled limiter skips limit checks", func(c *Config) {
			c.RateLimit.Enabled = false
			c.RateLimit.ScoreWindow = 0
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	cfg := &Config{RateLimit: RateLimitConfig{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		ScoreLimit:    3,
		ScoreWindow:   time.Hour,
		ScoreBurst:    2,
		Blacklist:     []string{"192.168.1.1"},
	}}

	rl := cfg.RateLimiter()

	assert.True(t, rl.Enabled)
	assert.Equal(t, 100, rl.DefaultLimit)
	assert.True(t, rl.Blacklist["192.168.1.1"])
	require.Len(t, rl.EndpointConfigs, 3)
	assert.Equal(t, ratelimit.ScorePath, rl.EndpointConfigs[0].Path)
	assert.Equal(t, 3, rl.EndpointConfigs[0].Limit)
	assert.Equal(t, 2, rl.EndpointConfigs[0].Burst)
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8000", (&Config{Port: 8000}).Addr())
}
