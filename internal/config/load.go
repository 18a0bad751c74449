package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/muurk/feedbackhub/internal/logging"
)

// Environment variables read by Load. The log variables are shared with
// the logging package.
const (
	APIURLEnvVar   = "FEEDBACKHUB_API_URL"
	TimeoutEnvVar  = "FEEDBACKHUB_TIMEOUT"
	LogLevelEnvVar = logging.LogLevelEnvVar
	LogFileEnvVar  = logging.LogFileEnvVar
)

// DefaultDotEnvPath is read from the working directory when present.
const DefaultDotEnvPath = ".env"

// LoadOptions selects the sources Load reads. Zero values use the real
// config path, ./.env and the process environment.
type LoadOptions struct {
	Path       string
	DotEnvPath string
	LookupEnv  func(string) (string, bool)
}

// Load builds the configuration from, lowest precedence first: defaults,
// the YAML file, the .env file and the process environment. Flags are
// applied afterwards by the caller.
func Load(opts LoadOptions) (*Config, error) {
	path := opts.Path
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	dotEnvPath := opts.DotEnvPath
	if dotEnvPath == "" {
		dotEnvPath = DefaultDotEnvPath
	}
	dotEnv, err := godotenv.Read(dotEnvPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", dotEnvPath, err)
	default:
		if err := cfg.applyEnv(mapLookup(dotEnv)); err != nil {
			return nil, fmt.Errorf("%s: %w", dotEnvPath, err)
		}
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	return cfg, nil
}

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(APIURLEnvVar); ok && v != "" {
		c.SetAPIURL(v)
	}
	if v, ok := lookup(TimeoutEnvVar); ok && v != "" {
		d, err := ParseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", TimeoutEnvVar, err)
		}
		c.Timeout = d
	}
	if v, ok := lookup(LogLevelEnvVar); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(LogFileEnvVar); ok && v != "" {
		c.LogFile = v
	}
	return nil
}

// SetAPIURL sets the base URL from an explicit source (environment or
// flag), which disables mDNS discovery.
func (c *Config) SetAPIURL(u string) {
	c.APIURL = strings.TrimRight(strings.TrimSpace(u), "/")
	c.apiURLExplicit = true
}

// APIURLExplicit reports whether the environment or a flag set the URL.
func (c *Config) APIURLExplicit() bool {
	return c.apiURLExplicit
}

// ParseTimeout accepts a Go duration ("5s", "750ms") or a whole number of
// seconds.
func ParseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q", s)
	}
	return d, nil
}

var validLogLevels = map[string]bool{
	"":        true,
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks the values that would otherwise fail later at request
// time.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api_url %q: %w", c.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api_url %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api_url %q: missing host", c.APIURL)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", c.Timeout)
	}

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q (use debug, info, warn or error)", c.LogLevel)
	}

	return nil
}
