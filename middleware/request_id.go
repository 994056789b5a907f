package middleware

import (
	"github.com/google/uuid"

	"github.com/xraph/frankie"
	"github.com/xraph/frankie/logger"
)

// RequestIDKey is the context value key under which the request ID is stored.
const RequestIDKey = "request_id"

// RequestID middleware adds a unique request ID to each request.
// If an X-Request-ID header is present it is reused, otherwise a new UUID
// is generated. The ID is set as a response header, stored as a context
// value and threaded into the request-scoped context.Context for the
// logger helpers.
func RequestID() frankie.Middleware {
	return func(next frankie.Handler) frankie.Handler {
		return func(c *frankie.Context) error {
			requestID := ""
			if req := c.Request(); req != nil {
				requestID = req.Header.Get("X-Request-ID")
			}
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.SetHeader("X-Request-ID", requestID)
			c.Set(RequestIDKey, requestID)
			c.WithContext(logger.WithRequestID(c.Context(), requestID))

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID stored by the RequestID middleware.
func GetRequestID(c *frankie.Context) string {
	if id, ok := c.Get(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
