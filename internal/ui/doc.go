// Package ui provides styled output for the non-interactive feedbackhub
// commands.
//
// These components follow a "print once and exit" pattern: a Header
// naming the command and its target backend, then a Result box for the
// outcome. Failures carry troubleshooting tips derived from the gateway
// error.
//
//	fmt.Println(ui.NewHeader("Submit Feedback", "feedbackhub submit 201 8 Great!",
//	    ui.Detail{Key: "API", Value: cfg.APIURL}))
//
//	if err != nil {
//	    fmt.Println(ui.RenderFailure("Could not submit feedback", err,
//	        gateway.TroubleshootingHint(err)))
//	}
//
// Widths come from golang.org/x/term and are clamped between
// MinTerminalWidth and MaxContentWidth.
//
// Logging stays silent unless FEEDBACKHUB_LOG_LEVEL or --log-level is set,
// so these boxes are the only output by default.
package ui
