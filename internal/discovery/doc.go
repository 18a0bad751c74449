// Package discovery locates FeedbackHub backends on the local network with
// mDNS.
//
// Backends advertise the "_feedbackhub._tcp" service type. Discovery is
// only used to fill in the api_url configuration value when none was given
// explicitly; the gateway itself never browses.
//
// # TXT Records
//
// Optional TXT keys refine the base URL:
//   - scheme: "https" to use TLS (anything else means http)
//   - path: a base path prefix, e.g. "/feedback"
//   - version: the backend version, shown by "feedbackhub discover"
//
// # Usage Example
//
//	backend, err := discovery.FindBackend(ctx, 5*time.Second)
//	if err != nil {
//	    return err
//	}
//	cfg.APIURL = backend.BaseURL()
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - The backend must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
