package discovery

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/feedbackhub/internal/logging"
)

const (
	// ServiceType is the mDNS service type FeedbackHub backends advertise
	ServiceType = "_feedbackhub._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for backend discovery
	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is used when an advertisement carries no port
	DefaultPort = 8081
)

// ErrNoBackend is returned by Find when nothing answers before the timeout.
var ErrNoBackend = errors.New("no FeedbackHub backend found")

// Scanner handles mDNS backend discovery
type Scanner struct {
	// Timeout is the maximum time to wait for advertisements
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan collects every backend that answers within the timeout, sorted by
// instance name.
func (s *Scanner) Scan(ctx context.Context) ([]*Backend, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	found := newCollector()
	if err := s.browse(ctx, func(b *Backend) bool {
		found.add(b)
		return true
	}); err != nil {
		return nil, err
	}

	<-ctx.Done()

	backends := found.list()
	logging.Debug("mDNS scan finished",
		zap.String("service", ServiceType),
		zap.Int("backends", len(backends)),
	)
	return backends, nil
}

// Find returns the first backend that answers, or ErrNoBackend.
func (s *Scanner) Find(ctx context.Context) (*Backend, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	backendChan := make(chan *Backend, 1)
	if err := s.browse(ctx, func(b *Backend) bool {
		select {
		case backendChan <- b:
		default:
		}
		cancel()
		return false
	}); err != nil {
		return nil, err
	}

	select {
	case b := <-backendChan:
		logging.Debug("mDNS backend found", zap.String("url", b.BaseURL()))
		return b, nil
	case <-ctx.Done():
		// The callback may have won the race with cancel
		select {
		case b := <-backendChan:
			return b, nil
		default:
		}
		return nil, fmt.Errorf("%w within %s", ErrNoBackend, s.Timeout)
	}
}

// browse starts the resolver and calls fn for each usable entry until fn
// returns false or ctx ends.
func (s *Scanner) browse(ctx context.Context, fn func(*Backend) bool) error {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case entry, ok := <-entries:
				if !ok {
					return
				}
				backend := parseServiceEntry(entry)
				if backend == nil {
					continue
				}
				if !fn(backend) {
					return
				}
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return fmt.Errorf("failed to browse for mDNS services: %w", err)
	}
	return nil
}

// parseServiceEntry converts a zeroconf service entry to a Backend.
// Returns nil if the entry has no usable address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Backend {
	if entry == nil || entry.HostName == "" {
		return nil
	}

	// Prefer IPv4
	var ip string
	for _, addr := range entry.AddrIPv4 {
		ip = addr.String()
		break
	}
	if ip == "" && len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	// TXT records are in "key=value" format
	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			metadata[parts[0]] = ""
		}
	}

	instance := entry.Instance
	if instance == "" {
		instance = strings.TrimSuffix(entry.HostName, ".")
	}

	return &Backend{
		Instance:     instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// collector de-duplicates repeated advertisements of the same backend
type collector struct {
	mu   sync.Mutex
	seen map[string]*Backend
}

func newCollector() *collector {
	return &collector{seen: make(map[string]*Backend)}
}

func (c *collector) add(b *Backend) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen[b.Instance+"|"+b.BaseURL()] = b
}

func (c *collector) list() []*Backend {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Backend, 0, len(c.seen))
	for _, b := range c.seen {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Instance != out[j].Instance {
			return out[i].Instance < out[j].Instance
		}
		return out[i].BaseURL() < out[j].BaseURL()
	})
	return out
}

// Scan is a convenience function to scan with a custom timeout
func Scan(ctx context.Context, timeout time.Duration) ([]*Backend, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.Scan(ctx)
}

// FindBackend returns the first backend found within timeout
func FindBackend(ctx context.Context, timeout time.Duration) (*Backend, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.Find(ctx)
}
