package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/xraph/frankie"
)

// CORSConfig defines configuration for CORS middleware
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// DefaultCORSConfig returns default CORS configuration
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:         86400, // 24 hours
	}
}

// CORS middleware handles Cross-Origin Resource Sharing with the default
// configuration.
func CORS() frankie.Middleware {
	return CORSWithConfig(DefaultCORSConfig())
}

// CORSWithConfig middleware handles CORS with custom configuration.
// Preflight OPTIONS requests are answered directly and never reach the
// route table.
func CORSWithConfig(config CORSConfig) frankie.Middleware {
	allowMethods := strings.Join(config.AllowedMethods, ", ")
	allowHeaders := strings.Join(config.AllowedHeaders, ", ")
	exposeHeaders := strings.Join(config.ExposedHeaders, ", ")

	return func(next frankie.Handler) frankie.Handler {
		return func(c *frankie.Context) error {
			origin := ""
			if req := c.Request(); req != nil {
				origin = req.Header.Get("Origin")
			}
			if origin == "" {
				// Same-origin request, nothing to negotiate.
				return next(c)
			}

			if !originAllowed(origin, config.AllowedOrigins) {
				if c.Method() == http.MethodOptions {
					c.SetStatus(http.StatusForbidden)
					return nil
				}
				return next(c)
			}

			c.SetHeader("Access-Control-Allow-Origin", origin)
			if config.AllowCredentials {
				c.SetHeader("Access-Control-Allow-Credentials", "true")
			}
			if exposeHeaders != "" {
				c.SetHeader("Access-Control-Expose-Headers", exposeHeaders)
			}

			if c.Method() == http.MethodOptions {
				c.SetHeader("Access-Control-Allow-Methods", allowMethods)
				c.SetHeader("Access-Control-Allow-Headers", allowHeaders)
				if config.MaxAge > 0 {
					c.SetHeader("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				}
				c.SetStatus(http.StatusNoContent)
				return nil
			}

			return next(c)
		}
	}
}

func originAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
