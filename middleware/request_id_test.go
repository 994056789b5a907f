package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/frankie"
	"github.com/xraph/frankie/logger"
)

func TestRequestID_Generated(t *testing.T) {
	var captured string
	handler := RequestID()(func(c *frankie.Context) error {
		captured = GetRequestID(c)
		return nil
	})

	c := frankie.NewContext("GET", "/test")
	require.NoError(t, handler(c))

	require.NotEmpty(t, captured)
	_, err := uuid.Parse(captured)
	assert.NoError(t, err)
	assert.Equal(t, captured, c.Header("X-Request-ID"))
	assert.Equal(t, captured, logger.RequestIDFromContext(c.Context()))
}

func TestRequestID_FromHeader(t *testing.T) {
	r := frankie.New(frankie.WithLogger(logger.NewNoopLogger()))
	r.Use(RequestID())

	require.NoError(t, r.GET("/echo", func(c *frankie.Context) (any, error) {
		return GetRequestID(c), nil
	}))

	req := httptest.NewRequest("GET", "/echo", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}
