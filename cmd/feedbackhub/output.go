package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/muurk/feedbackhub/internal/gateway"
	"github.com/muurk/feedbackhub/internal/ui"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

// fail prints a failure box (or a single line outside detailed mode) and
// returns err so the process exits non-zero.
func (a *app) fail(cmd *cobra.Command, title string, err error) error {
	cmd.SilenceUsage = true

	w := cmd.ErrOrStderr()
	if a.format == formatDetailed {
		fmt.Fprintln(w, ui.RenderFailure(title, errorDetail(err), gateway.TroubleshootingHint(err)))
		fmt.Fprintln(w)
	}
	return fmt.Errorf("%s: %w", title, err)
}

// errorDetail pairs the short message with the underlying error text
func errorDetail(err error) error {
	short := gateway.ShortMessage(err)
	if short == err.Error() {
		return err
	}
	return fmt.Errorf("%s (%w)", short, err)
}

// success prints a success box in detailed mode, or a single line in
// compact mode. JSON output is handled by the caller.
func (a *app) success(cmd *cobra.Command, title string, details ...ui.Detail) {
	w := cmd.OutOrStdout()
	if a.format == formatCompact {
		line := title
		for _, d := range details {
			line += fmt.Sprintf(" %s=%s", d.Key, d.Value)
		}
		fmt.Fprintln(w, line)
		return
	}
	fmt.Fprintln(w, ui.RenderSuccess(title, details...))
}

func (a *app) header(cmd *cobra.Command, title string) {
	if a.format != formatDetailed {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.NewHeader(title, cmd.CommandPath(),
		ui.Detail{Key: "API", Value: a.cfg.APIURL},
	).Render())
	fmt.Fprintln(cmd.OutOrStdout())
}
