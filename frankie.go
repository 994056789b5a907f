// Package frankie is a minimal HTTP route registry and dispatcher: an
// ordered route table with first-match-wins linear lookup, `:name` path
// parameters, a composable middleware chain, and a thin net/http adapter.
//
// Routes are registered once at startup through an explicit Router value
// (no global registry); every request gets its own Context carrying the
// parameter bindings and the response-in-progress. The core performs no
// I/O of its own and catches no handler errors: failure presentation
// belongs to the adapter's ErrorHandler or to middleware the application
// installs itself.
package frankie

import (
	"github.com/xraph/frankie/errors"
	"github.com/xraph/frankie/logger"
)

// Version is the frankie release version.
const Version = "0.1.0"

// Re-export HTTP error types and constructors so applications rarely need
// to import the errors package directly.
type HTTPError = errors.HTTPError

var (
	NewHTTPError  = errors.NewHTTPError
	BadRequest    = errors.BadRequest
	Unauthorized  = errors.Unauthorized
	Forbidden     = errors.Forbidden
	NotFound      = errors.NotFound
	InternalError = errors.InternalError
)

// Logger is the logging interface routers and middleware accept.
type Logger = logger.Logger

// Field is a structured log field.
type Field = logger.Field
