package gateway

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"

	"github.com/muurk/feedbackhub/internal/urls"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport-level failure
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request deadline was exceeded
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates nothing is listening at the base URL
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the backend hostname could not be resolved
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-2xx response
	ErrTypeHTTP
	// ErrTypeParse indicates a 2xx response with an unreadable body
	ErrTypeParse
	// ErrTypeValidation indicates input rejected before any request was made
	ErrTypeValidation
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by every gateway operation.
type Error struct {
	Type       ErrorType // Category of error
	Op         string    // Operation name, e.g. "fetch categories"
	Message    string    // Human-readable message
	StatusCode int       // HTTP status code (ErrTypeHTTP only)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Type.String())
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ClassifyTransportError maps an error returned by http.Client.Do to a
// gateway error with the most specific type available.
func ClassifyTransportError(op string, err error) *Error {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &Error{Type: ErrTypeTimeout, Op: op, Message: "request timed out", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{Type: ErrTypeDNS, Op: op, Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name), Err: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &Error{Type: ErrTypeConnectionRefused, Op: op, Message: "backend refused connection", Err: err}
	}

	return &Error{Type: ErrTypeNetwork, Op: op, Message: "request failed", Err: err}
}

// NewHTTPError creates an error for a non-2xx response
func NewHTTPError(op string, statusCode int) *Error {
	return &Error{
		Type:       ErrTypeHTTP,
		Op:         op,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
	}
}

// NewParseError creates a parsing error
func NewParseError(op string, err error) *Error {
	return &Error{Type: ErrTypeParse, Op: op, Message: "failed to decode response", Err: err}
}

// NewValidationError creates a validation error carrying a user-facing message
func NewValidationError(message string) *Error {
	return &Error{Type: ErrTypeValidation, Message: message}
}

func asError(err error) (*Error, bool) {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr, true
	}
	return nil, false
}

// IsNetworkError reports whether err is a transport failure or a non-2xx
// response. These are the only failures the client surfaces as "network".
func IsNetworkError(err error) bool {
	gwErr, ok := asError(err)
	if !ok {
		return false
	}
	switch gwErr.Type {
	case ErrTypeNetwork, ErrTypeTimeout, ErrTypeConnectionRefused, ErrTypeDNS, ErrTypeHTTP:
		return true
	}
	return false
}

// IsHTTPError checks if an error is a non-2xx response error
func IsHTTPError(err error) bool {
	gwErr, ok := asError(err)
	return ok && gwErr.Type == ErrTypeHTTP
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	gwErr, ok := asError(err)
	return ok && gwErr.Type == ErrTypeParse
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	gwErr, ok := asError(err)
	return ok && gwErr.Type == ErrTypeValidation
}

// ValidationMessage returns the user-facing message of a validation error,
// or "" when err is not one.
func ValidationMessage(err error) string {
	gwErr, ok := asError(err)
	if !ok || gwErr.Type != ErrTypeValidation {
		return ""
	}
	return gwErr.Message
}

// ShortMessage returns a concise, user-friendly error message
func ShortMessage(err error) string {
	gwErr, ok := asError(err)
	if !ok {
		return err.Error()
	}

	switch gwErr.Type {
	case ErrTypeTimeout:
		return "Backend not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Backend refused connection - is it running?"
	case ErrTypeDNS:
		return "Cannot resolve backend hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		return fmt.Sprintf("Backend error (HTTP %d)", gwErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse backend response"
	default:
		return gwErr.Message
	}
}

// TroubleshootingHint returns user-friendly troubleshooting tips for an error
func TroubleshootingHint(err error) []string {
	gwErr, ok := asError(err)
	if !ok {
		return nil
	}

	switch gwErr.Type {
	case ErrTypeTimeout:
		return []string{
			"The backend accepted the connection but did not answer in time",
			"Raise --timeout or unset it to wait indefinitely",
		}
	case ErrTypeConnectionRefused:
		return []string{
			"Check that the backend server is running",
			"Verify the port in --api-url (the usual default is 8081)",
			"Run 'feedbackhub discover' to look for backends on the local network",
			"See " + urls.BackendSetup,
		}
	case ErrTypeDNS:
		return []string{
			"Use an IP address instead of a hostname",
			"Service names such as 'backend' only resolve inside a container network",
		}
	case ErrTypeNetwork:
		return []string{
			"Check your network connection",
			"Verify the configured base URL with 'feedbackhub config show'",
		}
	case ErrTypeHTTP:
		if gwErr.StatusCode >= 500 {
			return []string{
				fmt.Sprintf("The backend failed while handling the request (HTTP %d)", gwErr.StatusCode),
				"Check the backend logs",
			}
		}
		return []string{
			fmt.Sprintf("The backend rejected the request (HTTP %d)", gwErr.StatusCode),
			"Check that the item or category id exists and the values are in range",
		}
	case ErrTypeParse:
		return []string{
			"The base URL may point at something that is not a FeedbackHub backend",
			"See " + urls.APIReference,
		}
	}
	return nil
}
