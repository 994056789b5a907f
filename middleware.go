package frankie

import (
	"github.com/xraph/frankie/errors"
)

// Handler is the unit of the middleware chain: it receives the request
// Context and returns an error only for handler failures. Response state
// lives on the Context.
type Handler func(c *Context) error

// HandlerFunc is the user-facing handler shape. Its first return value is
// normalized onto the response per the shapes documented on Context.apply;
// its error return propagates uncaught through the chain.
type HandlerFunc func(c *Context) (any, error)

// Middleware wraps handlers. A stage short-circuits by writing to the
// Context and not calling next, and post-processes by inspecting the
// Context after next returns.
type Middleware func(next Handler) Handler

// Chain combines multiple middleware into a single middleware.
// Middleware are applied in the order they are provided: the first
// middleware in the list wraps the outermost, the last wraps the innermost,
// so execution enters in registration order and unwinds in reverse.
func Chain(middlewares ...Middleware) Middleware {
	return func(final Handler) Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// convertHandler normalizes the supported handler shapes into a chain
// Handler. Anything else is an INVALID_HANDLER registration error.
func convertHandler(handler any) (Handler, error) {
	switch h := handler.(type) {
	case Handler:
		return h, nil
	case func(*Context) error:
		return h, nil
	case HandlerFunc:
		return wrapHandlerFunc(h), nil
	case func(*Context) (any, error):
		return wrapHandlerFunc(h), nil
	default:
		return nil, errors.ErrInvalidHandler(handler)
	}
}

func wrapHandlerFunc(h HandlerFunc) Handler {
	return func(c *Context) error {
		result, err := h(c)
		if err != nil {
			return err
		}
		return c.apply(result)
	}
}
