package frankie

import (
	"net/http"

	"github.com/xraph/frankie/errors"
	"github.com/xraph/frankie/logger"
)

// ErrorHandler decides what an uncaught handler failure looks like on the
// wire. The core never installs one into the dispatch path; it is the HTTP
// adapter's outermost boundary.
type ErrorHandler interface {
	HandleError(c *Context, err error)
}

// defaultErrorHandler logs the failure and maps HTTPError codes onto the
// response; anything else becomes an opaque 500.
type defaultErrorHandler struct {
	logger logger.Logger
}

// NewDefaultErrorHandler creates the default error handler.
func NewDefaultErrorHandler(l logger.Logger) ErrorHandler {
	return &defaultErrorHandler{logger: l}
}

func (h *defaultErrorHandler) HandleError(c *Context, err error) {
	status := errors.GetHTTPStatusCode(err)

	h.logger.Error("handler failed",
		logger.String("method", c.Method()),
		logger.String("path", c.Path()),
		logger.Int("status", status),
		logger.Error(err),
	)

	c.SetStatus(status)
	c.SetHeader("Content-Type", "text/plain")

	var httpErr *errors.HTTPError
	if errors.As(err, &httpErr) {
		c.SetBody([]byte(httpErr.Error()))
		return
	}
	c.SetBody([]byte("Internal Server Error"))
}

// ServeHTTP adapts the dispatcher to net/http: one fresh Context per
// request, handler failures routed through the ErrorHandler, and the final
// response written to the wire. Implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	c := newRequestContext(req)

	res, err := r.DispatchContext(c)
	if err != nil {
		r.errorHandler.HandleError(c, err)
		res = c.Response()
	}

	for k, v := range res.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(res.Status)
	if len(res.Body) > 0 {
		_, _ = w.Write(res.Body)
	}
}

// Handler returns the router as an http.Handler.
func (r *Router) Handler() http.Handler { return r }
