package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/feedbackhub/internal/config"
	"github.com/muurk/feedbackhub/internal/discovery"
	"github.com/muurk/feedbackhub/internal/gateway"
	"github.com/muurk/feedbackhub/internal/logging"
	"github.com/muurk/feedbackhub/internal/version"
)

// Output formats accepted by --format
const (
	formatDetailed = "detailed"
	formatCompact  = "compact"
	formatJSON     = "json"
)

// app holds flag values and the configuration resolved before a command runs
type app struct {
	apiURL     string
	timeout    time.Duration
	format     string
	logLevel   string
	discover   bool
	configPath string

	cfg     *config.Config
	loadErr error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "feedbackhub",
		Short: "Browse and leave feedback on a FeedbackHub backend",
		Long: `A terminal client for FeedbackHub.

Browse categories and their items, read the reviews left for an item with
their average rating, add your own review, or create a new category.

If no command is specified, the interactive browser will launch automatically.`,
		Version:       version.Full(),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: a.runBrowse,
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.apiURL, "api-url", "", "Backend base URL (default "+config.DefaultAPIURL+")")
	flags.DurationVar(&a.timeout, "timeout", 0, "Per-request timeout, e.g. 5s (0 waits indefinitely)")
	flags.StringVar(&a.format, "format", formatDetailed, "Output format (detailed, compact, json)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	flags.BoolVar(&a.discover, "discover", false, "Find the backend via mDNS when no --api-url is given")
	flags.StringVar(&a.configPath, "config", "", "Config file (default "+defaultConfigPathHint()+")")

	rootCmd.AddCommand(
		a.browseCmd(),
		a.categoriesCmd(),
		a.itemsCmd(),
		a.feedbackCmd(),
		a.submitCmd(),
		a.addCategoryCmd(),
		a.pingCmd(),
		a.discoverCmd(),
		a.configCmd(),
		a.versionCmd(),
	)

	return rootCmd
}

func defaultConfigPathHint() string {
	if p, err := config.GetConfigPath(); err == nil {
		return p
	}
	return "config.yaml in the user config directory"
}

// setup loads the configuration, applies flags, starts logging and, when
// asked to, resolves the backend via mDNS.
func (a *app) setup(cmd *cobra.Command) error {
	switch a.format {
	case formatDetailed, formatCompact, formatJSON:
	default:
		return fmt.Errorf("invalid --format %q (use detailed, compact or json)", a.format)
	}

	cfg, err := config.Load(config.LoadOptions{Path: a.configPath})
	if err != nil {
		// config init must still be able to replace a broken file
		if needsBackend(cmd) {
			return err
		}
		a.loadErr = err
		cfg = config.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.SetAPIURL(a.apiURL)
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("discover") {
		if cfg.Discovery == nil {
			cfg.Discovery = &config.DiscoveryPrefs{}
		}
		cfg.Discovery.Enabled = a.discover
	}

	if err := cfg.Validate(); err != nil {
		if needsBackend(cmd) {
			return err
		}
		if a.loadErr == nil {
			a.loadErr = err
		}
	}

	if err := logging.InitializeWithOptions(logging.Options{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogFile,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	a.cfg = cfg

	if cfg.DiscoveryEnabled() && !cfg.APIURLExplicit() && needsBackend(cmd) {
		backend, err := discovery.FindBackend(cmd.Context(), cfg.DiscoverTimeout())
		if err != nil {
			logging.Warn("mDNS discovery failed, using configured URL",
				zap.String("url", cfg.APIURL), zap.Error(err))
		} else {
			cfg.APIURL = backend.BaseURL()
			logging.Info("Using discovered backend", zap.String("url", cfg.APIURL))
		}
	}

	logging.Debug("Configuration resolved",
		zap.String("api_url", cfg.APIURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("command", cmd.CommandPath()),
	)
	return nil
}

// needsBackend reports whether cmd talks to the backend. Local commands
// skip discovery.
func needsBackend(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["local"] == "true" {
			return false
		}
	}
	return true
}

var localOnly = map[string]string{"local": "true"}

func (a *app) client() *gateway.Client {
	c := gateway.NewClient(a.cfg.APIURL)
	c.SetTimeout(a.cfg.Timeout)
	return c
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: localOnly,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if a.format == formatJSON {
				return printJSON(cmd.OutOrStdout(), info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "feedbackhub %s (commit: %s, %s, %s)\n",
				info.Version, info.Commit, info.GoVersion, info.Platform)
			return nil
		},
	}
}
