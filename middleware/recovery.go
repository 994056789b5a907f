package middleware

import (
	"net/http"

	"github.com/xraph/frankie"
	"github.com/xraph/frankie/logger"
)

// Recovery middleware recovers from panics and logs them
// Returns http.StatusInternalServerError on panic
func Recovery(l logger.Logger) frankie.Middleware {
	return func(next frankie.Handler) frankie.Handler {
		return func(c *frankie.Context) error {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.LogPanic(l, recovered)

					_ = c.String(http.StatusInternalServerError, "Internal Server Error")
				}
			}()

			return next(c)
		}
	}
}
