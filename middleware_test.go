package frankie

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_Ordering(t *testing.T) {
	var order []string

	stage := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(c *Context) error {
				order = append(order, name+"-enter")
				err := next(c)
				order = append(order, name+"-exit")
				return err
			}
		}
	}

	terminal := func(c *Context) error {
		order = append(order, "terminal")
		return nil
	}

	composed := Chain(stage("a"), stage("b"))(terminal)
	require.NoError(t, composed(NewContext("GET", "/")))

	assert.Equal(t, []string{"a-enter", "b-enter", "terminal", "b-exit", "a-exit"}, order)
}

func TestChain_ShortCircuit(t *testing.T) {
	var order []string

	gate := func(next Handler) Handler {
		return func(c *Context) error {
			order = append(order, "gate")
			c.SetStatus(http.StatusForbidden)
			c.SetBody([]byte("denied"))
			return nil
		}
	}
	inner := func(next Handler) Handler {
		return func(c *Context) error {
			order = append(order, "inner")
			return next(c)
		}
	}
	terminal := func(c *Context) error {
		order = append(order, "terminal")
		return nil
	}

	c := NewContext("GET", "/secret")
	require.NoError(t, Chain(gate, inner)(terminal)(c))

	assert.Equal(t, []string{"gate"}, order)
	assert.Equal(t, http.StatusForbidden, c.Status())
	assert.Equal(t, "denied", string(c.Body()))
}

func TestChain_Empty(t *testing.T) {
	terminal := func(c *Context) error {
		return c.String(http.StatusOK, "bare")
	}

	c := NewContext("GET", "/")
	require.NoError(t, Chain()(terminal)(c))
	assert.Equal(t, "bare", string(c.Body()))
}

// Global middleware wraps dispatch itself, so it observes requests that
// end up in the 404 fallback.
func TestRouter_GlobalMiddlewareSeesNotFound(t *testing.T) {
	r := newTestRouter()

	var seen []string
	r.Use(func(next Handler) Handler {
		return func(c *Context) error {
			seen = append(seen, c.Path())
			return next(c)
		}
	})

	res, err := r.Dispatch("GET", "/ghost")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, []string{"/ghost"}, seen)
}

func TestRouter_GlobalMiddlewareErrorPropagates(t *testing.T) {
	r := newTestRouter()

	require.NoError(t, r.GET("/ok", func(c *Context) (any, error) {
		return "ok", nil
	}))

	r.Use(func(next Handler) Handler {
		return func(c *Context) error {
			return NewHTTPError(http.StatusTooManyRequests, "slow down")
		}
	})

	res, err := r.Dispatch("GET", "/ok")
	require.Error(t, err)
	assert.Nil(t, res)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
}

func TestConvertHandler(t *testing.T) {
	tests := []struct {
		name    string
		handler any
		wantErr bool
	}{
		{"handler func", func(c *Context) error { return nil }, false},
		{"handler func with result", func(c *Context) (any, error) { return nil, nil }, false},
		{"typed Handler", Handler(func(c *Context) error { return nil }), false},
		{"typed HandlerFunc", HandlerFunc(func(c *Context) (any, error) { return nil, nil }), false},
		{"int", 42, true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := convertHandler(tt.handler)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, h)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, h)
			}
		})
	}
}
