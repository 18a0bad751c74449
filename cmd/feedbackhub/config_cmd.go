package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/feedbackhub/internal/config"
	"github.com/muurk/feedbackhub/internal/ui"
)

// configCmd groups the config file subcommands
func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
		Long: `Inspect or create the configuration file.

Values are layered: built-in defaults, the config file, a .env file in the
working directory, FEEDBACKHUB_* environment variables, then flags.`,
		Annotations: localOnly,
	}

	cmd.AddCommand(a.configShowCmd(), a.configPathCmd(), a.configInitCmd())
	return cmd
}

func (a *app) configFilePath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.GetConfigPath()
}

func (a *app) configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.loadErr != nil {
				return a.loadErr
			}

			if a.format == formatJSON {
				return printJSON(cmd.OutOrStdout(), a.cfg)
			}

			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func (a *app) configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.configFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (a *app) configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a default configuration file.

An existing file is only replaced with --force, or after typing
"overwrite" at the prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			path, err := a.configFilePath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				force = ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "CONFIG FILE EXISTS",
					[]string{
						path,
						"Every value in it will be replaced with the defaults",
					},
					"overwrite",
				)
				if !force {
					return fmt.Errorf("%w: %s", config.ErrConfigExists, path)
				}
			}

			if _, err := config.Init(path, force); err != nil {
				return err
			}

			a.success(cmd, "Configuration written", ui.Detail{Key: "Path", Value: path})
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing file without asking")
	return cmd
}
