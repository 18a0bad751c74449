package discovery

import (
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func TestParseServiceEntry(t *testing.T) {
	tests := []struct {
		name         string
		entry        *zeroconf.ServiceEntry
		wantNil      bool
		wantInstance string
		wantIP       string
		wantPort     int
	}{
		{
			name: "backend with IPv4",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "FeedbackHub API"},
				HostName:      "feedback-server.local.",
				Port:          8081,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.4.16")},
				Text:          []string{"path=/", "version=1.0.0"},
			},
			wantInstance: "FeedbackHub API",
			wantIP:       "192.168.4.16",
			wantPort:     8081,
		},
		{
			name: "no instance name uses hostname",
			entry: &zeroconf.ServiceEntry{
				HostName: "feedback-server.local.",
				Port:     9000,
				AddrIPv4: []net.IP{net.ParseIP("10.0.0.5")},
			},
			wantInstance: "feedback-server.local",
			wantIP:       "10.0.0.5",
			wantPort:     9000,
		},
		{
			name: "no port specified (should default to 8081)",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "api"},
				HostName:      "api.local",
				AddrIPv4:      []net.IP{net.ParseIP("172.16.0.1")},
			},
			wantInstance: "api",
			wantIP:       "172.16.0.1",
			wantPort:     DefaultPort,
		},
		{
			name: "empty hostname",
			entry: &zeroconf.ServiceEntry{
				Port:     8081,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.1")},
			},
			wantNil: true,
		},
		{
			name: "no IP address",
			entry: &zeroconf.ServiceEntry{
				HostName: "feedback-server.local",
				Port:     8081,
			},
			wantNil: true,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantNil: true,
		},
		{
			name: "IPv6 only backend",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "v6"},
				HostName:      "v6.local",
				Port:          8081,
				AddrIPv6:      []net.IP{net.ParseIP("fe80::1")},
			},
			wantInstance: "v6",
			wantIP:       "fe80::1",
			wantPort:     8081,
		},
		{
			name: "both IPv4 and IPv6 (should prefer IPv4)",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "dual"},
				HostName:      "dual.local",
				Port:          8081,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.50")},
				AddrIPv6:      []net.IP{net.ParseIP("fe80::2")},
			},
			wantInstance: "dual",
			wantIP:       "192.168.1.50",
			wantPort:     8081,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := parseServiceEntry(tt.entry)

			if tt.wantNil {
				if backend != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", backend)
				}
				return
			}

			if backend == nil {
				t.Fatal("parseServiceEntry() = nil, want non-nil backend")
			}

			if backend.Instance != tt.wantInstance {
				t.Errorf("backend.Instance = %v, want %v", backend.Instance, tt.wantInstance)
			}

			if backend.IP != tt.wantIP {
				t.Errorf("backend.IP = %v, want %v", backend.IP, tt.wantIP)
			}

			if backend.Port != tt.wantPort {
				t.Errorf("backend.Port = %v, want %v", backend.Port, tt.wantPort)
			}

			if time.Since(backend.DiscoveredAt) > time.Second {
				t.Errorf("backend.DiscoveredAt is not recent: %v", backend.DiscoveredAt)
			}
		})
	}
}

func TestParseServiceEntry_Metadata(t *testing.T) {
	entry := &zeroconf.ServiceEntry{
		HostName: "feedback-server.local",
		Port:     8081,
		AddrIPv4: []net.IP{net.ParseIP("192.168.4.16")},
		Text:     []string{"path=/api", "scheme=https", "flag", "version=a=b"},
	}

	backend := parseServiceEntry(entry)
	if backend == nil {
		t.Fatal("parseServiceEntry() = nil, want backend")
	}

	expectedMetadata := map[string]string{
		"path":    "/api",
		"scheme":  "https",
		"flag":    "",
		"version": "a=b",
	}

	if len(backend.Metadata) != len(expectedMetadata) {
		t.Errorf("backend.Metadata has %d entries, want %d", len(backend.Metadata), len(expectedMetadata))
	}

	for key, expectedValue := range expectedMetadata {
		if actualValue, ok := backend.Metadata[key]; !ok {
			t.Errorf("backend.Metadata missing key %q", key)
		} else if actualValue != expectedValue {
			t.Errorf("backend.Metadata[%q] = %q, want %q", key, actualValue, expectedValue)
		}
	}

	if got, want := backend.BaseURL(), "https://192.168.4.16:8081/api"; got != want {
		t.Errorf("backend.BaseURL() = %v, want %v", got, want)
	}
}

func TestCollector(t *testing.T) {
	c := newCollector()

	c.add(&Backend{Instance: "b", IP: "10.0.0.2", Port: 8081})
	c.add(&Backend{Instance: "a", IP: "10.0.0.1", Port: 8081})
	c.add(&Backend{Instance: "b", IP: "10.0.0.2", Port: 8081}) // repeated advertisement
	c.add(&Backend{Instance: "b", IP: "10.0.0.3", Port: 8081})

	got := c.list()
	if len(got) != 3 {
		t.Fatalf("collector.list() has %d backends, want 3", len(got))
	}

	want := []string{"http://10.0.0.1:8081", "http://10.0.0.2:8081", "http://10.0.0.3:8081"}
	for i, b := range got {
		if b.BaseURL() != want[i] {
			t.Errorf("list()[%d] = %v, want %v", i, b.BaseURL(), want[i])
		}
	}
}

func TestNewScanner(t *testing.T) {
	scanner := NewScanner()

	if scanner == nil {
		t.Fatal("NewScanner() = nil, want scanner")
	}

	if scanner.Timeout != DefaultScanTimeout {
		t.Errorf("scanner.Timeout = %v, want %v", scanner.Timeout, DefaultScanTimeout)
	}
}

// Live mDNS scans need multicast on the test host and are not run here.
