// Feedbackhub is a terminal client for a FeedbackHub backend.
//
// Running without arguments opens the interactive browser: pick a
// category, pick an item, read its reviews and leave your own. The
// remaining commands expose the same operations for scripts.
//
// Usage:
//
//	feedbackhub [command] [flags]
//
// See 'feedbackhub --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
