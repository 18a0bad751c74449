package config

import "time"

const (
	// CurrentVersion is the config file schema version written by Save.
	CurrentVersion = 1

	// DefaultAPIURL is the backend used when nothing else is configured.
	DefaultAPIURL = "http://localhost:8081"

	// DefaultDiscoverTimeout bounds an mDNS lookup when the file sets none.
	DefaultDiscoverTimeout = 5 * time.Second
)

// Config is the client configuration. It is built once at startup and
// passed to the components that need it; nothing reads it from a global.
type Config struct {
	Version int `yaml:"version" json:"version"`

	// APIURL is the backend base URL, e.g. http://localhost:8081
	APIURL string `yaml:"api_url" json:"api_url"`

	// Timeout applies to each HTTP request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	LogLevel string `yaml:"log_level,omitempty" json:"log_level,omitempty"`
	LogFile  string `yaml:"log_file,omitempty" json:"log_file,omitempty"`

	Discovery *DiscoveryPrefs `yaml:"discovery,omitempty" json:"discovery,omitempty"`

	apiURLExplicit bool
}

// DiscoveryPrefs controls mDNS lookup of the backend.
type DiscoveryPrefs struct {
	// Enabled resolves the base URL via mDNS when no api_url is set
	// explicitly by the environment or flags.
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		APIURL:  DefaultAPIURL,
		Discovery: &DiscoveryPrefs{
			Timeout: DefaultDiscoverTimeout,
		},
	}
}

// DiscoverTimeout returns the configured lookup timeout or the default.
func (c *Config) DiscoverTimeout() time.Duration {
	if c.Discovery == nil || c.Discovery.Timeout <= 0 {
		return DefaultDiscoverTimeout
	}
	return c.Discovery.Timeout
}

// DiscoveryEnabled reports whether mDNS lookup is switched on in the file.
func (c *Config) DiscoveryEnabled() bool {
	return c.Discovery != nil && c.Discovery.Enabled
}
