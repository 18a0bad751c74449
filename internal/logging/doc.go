// Package logging provides structured logging for the FeedbackHub client.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the client. It provides both general logging functions
// and specialized functions for backend requests and navigation changes.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (every request and 2xx response)
//   - Info: Normal operations (navigation transitions, config loading)
//   - Warn: Non-fatal issues (failed requests, non-2xx responses)
//   - Error: Fatal issues (startup failures)
//
// # Silent By Default
//
// Unless a level is passed explicitly or FEEDBACKHUB_LOG_LEVEL is set, the
// global logger is a no-op. The interactive browser draws on the terminal,
// so log output there should go to a file:
//
//	FEEDBACKHUB_LOG_LEVEL=debug FEEDBACKHUB_LOG_FILE=/tmp/feedbackhub.log feedbackhub
//
// # Specialized Logging
//
// Request Logging:
//
//	logging.LogRequest(requestID, "GET", "http://localhost:8081/api/items")
//	logging.LogResponse(requestID, 200, elapsed)
//
// Navigation Logging:
//
//	logging.LogTransition("select_item", "category_selected", "item_selected",
//	    zap.Int64("item_id", 20),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeWithOptions(logging.Options{Level: "debug"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
