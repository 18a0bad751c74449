package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// noEnv keeps the process environment out of Load
func noEnv(string) (string, bool) { return "", false }

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	configDir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Contains(t, configDir, "feedbackhub")

	if runtime.GOOS == "linux" {
		assert.Equal(t, filepath.Join("/tmp/xdg", "feedbackhub"), configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(configPath))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Zero(t, cfg.Timeout, "no request timeout by default")
	assert.False(t, cfg.DiscoveryEnabled())
	assert.Equal(t, DefaultDiscoverTimeout, cfg.DiscoverTimeout())
	assert.False(t, cfg.APIURLExplicit())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile_Values(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `version: 1
api_url: http://feedback.lan:9000
timeout: 3s
log_level: debug
log_file: /tmp/fh.log
discovery:
  enabled: true
  timeout: 2s
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://feedback.lan:9000", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/fh.log", cfg.LogFile)
	assert.True(t, cfg.DiscoveryEnabled())
	assert.Equal(t, 2*time.Second, cfg.DiscoverTimeout())
	assert.False(t, cfg.APIURLExplicit(), "file values do not block discovery")
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad version", "version: 2\n", "unsupported config version: 2"},
		{"bad yaml", "version: [1\n", "failed to parse config file"},
		{"bad duration", "version: 1\ntimeout: soon\n", "failed to parse config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			writeFile(t, path, tt.content)

			_, err := LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.APIURL = "https://feedback.example.com"
	cfg.Timeout = 1500 * time.Millisecond
	cfg.Discovery.Enabled = true
	require.NoError(t, cfg.Save(path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file is renamed away")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# FeedbackHub Configuration File"))
	assert.Contains(t, string(data), "timeout: 1.5s")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Init(path, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)

	_, err = Init(path, false)
	assert.ErrorIs(t, err, ErrConfigExists)

	_, err = Init(path, true)
	assert.NoError(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	dotEnv := filepath.Join(dir, ".env")

	writeFile(t, path, "version: 1\napi_url: http://from-file:1\ntimeout: 1s\nlog_level: error\n")
	writeFile(t, dotEnv, "FEEDBACKHUB_API_URL=http://from-dotenv:2/\nFEEDBACKHUB_TIMEOUT=2\n")

	cfg, err := Load(LoadOptions{
		Path:       path,
		DotEnvPath: dotEnv,
		LookupEnv:  envOf(map[string]string{"FEEDBACKHUB_TIMEOUT": "750ms", "FEEDBACKHUB_LOG_FILE": "/tmp/x.log"}),
	})
	require.NoError(t, err)

	assert.Equal(t, "http://from-dotenv:2", cfg.APIURL, ".env beats the file; trailing slash trimmed")
	assert.Equal(t, 750*time.Millisecond, cfg.Timeout, "environment beats .env")
	assert.Equal(t, "error", cfg.LogLevel, "file value kept when nothing overrides it")
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)
	assert.True(t, cfg.APIURLExplicit())
}

func TestLoad_NoSources(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(LoadOptions{
		Path:       filepath.Join(dir, "config.yaml"),
		DotEnvPath: filepath.Join(dir, ".env"),
		LookupEnv:  noEnv,
	})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_BadTimeout(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(LoadOptions{
		Path:       filepath.Join(dir, "config.yaml"),
		DotEnvPath: filepath.Join(dir, ".env"),
		LookupEnv:  envOf(map[string]string{"FEEDBACKHUB_TIMEOUT": "later"}),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), TimeoutEnvVar)
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"5", 5 * time.Second, false},
		{" 10s ", 10 * time.Second, false},
		{"250ms", 250 * time.Millisecond, false},
		{"0", 0, false},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeout(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default", func(*Config) {}, ""},
		{"https", func(c *Config) { c.APIURL = "https://api.example.com" }, ""},
		{"relative", func(c *Config) { c.APIURL = "/api" }, "scheme must be http or https"},
		{"ftp", func(c *Config) { c.APIURL = "ftp://host" }, "scheme must be http or https"},
		{"no host", func(c *Config) { c.APIURL = "http://" }, "missing host"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "must not be negative"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"upper level", func(c *Config) { c.LogLevel = "DEBUG" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
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
