package discovery

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Backend represents a FeedbackHub API server found on the network
type Backend struct {
	// Instance is the advertised service instance name (e.g., "FeedbackHub API")
	Instance string

	// Hostname is the mDNS hostname (e.g., "feedback-server.local.")
	Hostname string

	// IP is the address, IPv4 preferred
	IP string

	// Port is the HTTP port (typically 8081)
	Port int

	// Metadata contains the mDNS TXT record data.
	// Recognised keys: "scheme", "path", "version"
	Metadata map[string]string

	// DiscoveredAt is when the backend was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the backend
func (b *Backend) String() string {
	s := fmt.Sprintf("%s (%s) at %s", b.Instance, b.Hostname, b.BaseURL())
	if v := b.GetMetadata("version"); v != "" {
		s += " version " + v
	}
	return s
}

// BaseURL returns the API base URL for the backend
func (b *Backend) BaseURL() string {
	scheme := b.GetMetadata("scheme")
	if scheme != "https" {
		scheme = "http"
	}

	path := strings.TrimRight(b.GetMetadata("path"), "/")
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return scheme + "://" + net.JoinHostPort(b.IP, strconv.Itoa(b.Port)) + path
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (b *Backend) GetMetadata(key string) string {
	if b.Metadata == nil {
		return ""
	}
	return b.Metadata[key]
}
