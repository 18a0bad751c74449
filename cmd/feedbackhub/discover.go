package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/feedbackhub/internal/discovery"
	"github.com/muurk/feedbackhub/internal/ui"
)

// discoverCmd lists backends advertising over mDNS
func (a *app) discoverCmd() *cobra.Command {
	var scanTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Find FeedbackHub backends on the local network",
		Long: `Find FeedbackHub backends using mDNS/DNS-SD discovery.

This command listens for "_feedbackhub._tcp" advertisements and lists every
backend that answers, with the base URL to pass to --api-url.`,
		Example: `  # Scan for 5 seconds (default)
  feedbackhub discover

  # Longer scan for slow networks
  feedbackhub discover --scan-timeout 15s`,
		Args:        cobra.NoArgs,
		Annotations: localOnly,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			w := cmd.OutOrStdout()

			if a.format == formatDetailed {
				fmt.Fprintf(w, "Scanning for FeedbackHub backends (timeout: %s)...\n\n", scanTimeout)
			}

			backends, err := discovery.Scan(cmd.Context(), scanTimeout)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			switch a.format {
			case formatJSON:
				type entry struct {
					Instance string            `json:"instance"`
					URL      string            `json:"url"`
					Hostname string            `json:"hostname"`
					Metadata map[string]string `json:"metadata,omitempty"`
				}
				out := make([]entry, 0, len(backends))
				for _, b := range backends {
					out = append(out, entry{Instance: b.Instance, URL: b.BaseURL(), Hostname: b.Hostname, Metadata: b.Metadata})
				}
				return printJSON(w, out)

			case formatCompact:
				for _, b := range backends {
					fmt.Fprintf(w, "%s\t%s\n", b.BaseURL(), b.Instance)
				}
				return nil
			}

			if len(backends) == 0 {
				fmt.Fprintln(w, ui.RenderWarning("No backends found",
					ui.Detail{Key: "Service", Value: discovery.ServiceType},
					ui.Detail{Key: "Waited", Value: scanTimeout.String()},
				))
				fmt.Fprintln(w, "\nTroubleshooting:")
				fmt.Fprintln(w, "  - Ensure the backend is running and advertising over mDNS")
				fmt.Fprintln(w, "  - Check that this machine is on the same network segment")
				fmt.Fprintln(w, "  - Allow UDP port 5353 through the firewall")
				fmt.Fprintln(w, "  - Try increasing --scan-timeout for slower networks")
				fmt.Fprintln(w, "  - Use --api-url to give the address directly")
				return nil
			}

			fmt.Fprintf(w, "Found %d backend(s):\n\n", len(backends))
			for i, b := range backends {
				fmt.Fprintf(w, "%d. %s\n", i+1, b.Instance)
				fmt.Fprintf(w, "   URL:      %s\n", b.BaseURL())
				fmt.Fprintf(w, "   Host:     %s\n", b.Hostname)
				if v := b.GetMetadata("version"); v != "" {
					fmt.Fprintf(w, "   Version:  %s\n", v)
				}
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, "Use 'feedbackhub --api-url <url>' to connect to a backend")
			fmt.Fprintln(w, "Use 'feedbackhub --discover' to connect to the first one found")
			return nil
		},
	}

	cmd.Flags().DurationVar(&scanTimeout, "scan-timeout", discovery.DefaultScanTimeout, "How long to listen for advertisements")
	return cmd
}
