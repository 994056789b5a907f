package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// =============================================================================
// ERROR CODES
// =============================================================================

// Error code constants for structured errors.
const (
	CodeInvalidRoutePattern = "INVALID_ROUTE_PATTERN"
	CodeInvalidHandler      = "INVALID_HANDLER"
	CodeConfigError         = "CONFIG_ERROR"
	CodeInvalidConfig       = "INVALID_CONFIG"
)

// =============================================================================
// FRANKIE ERROR (STRUCTURED ERROR)
// =============================================================================

// FrankieError represents a structured error with context.
type FrankieError struct {
	Code      string
	Message   string
	Cause     error
	Timestamp time.Time
	Context   map[string]interface{}
}

func (e *FrankieError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *FrankieError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is interface for FrankieError.
// Compares by error code, allowing matching against sentinel errors.
func (e *FrankieError) Is(target error) bool {
	t, ok := target.(*FrankieError)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithContext adds context to the error.
func (e *FrankieError) WithContext(key string, value interface{}) *FrankieError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrInvalidRoutePattern creates a registration-time pattern error.
// The offending registration is rejected atomically; the route table
// is never partially updated.
func ErrInvalidRoutePattern(pattern, reason string) *FrankieError {
	return &FrankieError{
		Code:      CodeInvalidRoutePattern,
		Message:   fmt.Sprintf("invalid route pattern %q: %s", pattern, reason),
		Timestamp: time.Now(),
		Context:   map[string]interface{}{"pattern": pattern, "reason": reason},
	}
}

// ErrInvalidHandler creates an error for an unsupported handler shape.
func ErrInvalidHandler(handler interface{}) *FrankieError {
	return &FrankieError{
		Code:      CodeInvalidHandler,
		Message:   fmt.Sprintf("unsupported handler type %T", handler),
		Timestamp: time.Now(),
	}
}

// ErrConfigError creates a config error.
func ErrConfigError(message string, cause error) *FrankieError {
	return &FrankieError{
		Code:      CodeConfigError,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// ErrInvalidConfig creates an invalid-config error for a specific key.
func ErrInvalidConfig(configKey string, cause error) *FrankieError {
	return &FrankieError{
		Code:      CodeInvalidConfig,
		Message:   "invalid configuration for key '" + configKey + "'",
		Cause:     cause,
		Timestamp: time.Now(),
		Context:   map[string]interface{}{"config_key": configKey},
	}
}

// =============================================================================
// HTTP ERRORS
// =============================================================================

// HTTPError represents an HTTP error with status code. Handlers and
// middleware may return one; the adapter's error handler maps it to a
// response with the given status.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is interface for HTTPError.
// Compares by HTTP status code.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// HTTP error constructors.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func BadRequest(message string) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *HTTPError {
	return &HTTPError{Code: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *HTTPError {
	return &HTTPError{Code: http.StatusForbidden, Message: message}
}

func NotFound(message string) *HTTPError {
	return &HTTPError{Code: http.StatusNotFound, Message: message}
}

func InternalError(err error) *HTTPError {
	return &HTTPError{Code: http.StatusInternalServerError, Err: err}
}

// =============================================================================
// STANDARD ERRORS PACKAGE INTEGRATION
// =============================================================================

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, and if so,
// sets target to that error value and returns true. Otherwise, it returns false.
// This is a convenience wrapper around errors.As from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if err's
// type contains an Unwrap method returning error. Otherwise, Unwrap returns nil.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// =============================================================================
// SENTINEL ERRORS (for use with Is)
// =============================================================================

// Sentinel errors that can be used with errors.Is comparisons.
var (
	// ErrInvalidRoutePatternSentinel is a sentinel error for malformed patterns.
	ErrInvalidRoutePatternSentinel = &FrankieError{Code: CodeInvalidRoutePattern}

	// ErrInvalidHandlerSentinel is a sentinel error for unsupported handlers.
	ErrInvalidHandlerSentinel = &FrankieError{Code: CodeInvalidHandler}

	// ErrInvalidConfigSentinel is a sentinel error for invalid config.
	ErrInvalidConfigSentinel = &FrankieError{Code: CodeInvalidConfig}

	// ErrConfigErrorSentinel is a sentinel error for config errors.
	ErrConfigErrorSentinel = &FrankieError{Code: CodeConfigError}
)

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsInvalidRoutePattern checks if the error is a malformed-pattern error.
func IsInvalidRoutePattern(err error) bool {
	return Is(err, ErrInvalidRoutePatternSentinel)
}

// IsInvalidHandler checks if the error is an unsupported-handler error.
func IsInvalidHandler(err error) bool {
	return Is(err, ErrInvalidHandlerSentinel)
}

// IsInvalidConfig checks if the error is an invalid config error.
func IsInvalidConfig(err error) bool {
	return Is(err, ErrInvalidConfigSentinel)
}

// GetHTTPStatusCode extracts HTTP status code from error, returns 500 if not found.
func GetHTTPStatusCode(err error) int {
	var httpErr *HTTPError
	if As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
