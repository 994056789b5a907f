package frankie

import (
	"context"
	"net/http"
)

// Context carries the per-request mutable state threaded through the
// middleware chain and the matched handler: the request line, the parameter
// bindings captured by the matcher, arbitrary stage-to-stage values, and the
// response-in-progress. A Context is created fresh for every dispatch and
// must not be retained past the request; it is the concurrency-safety
// boundary of the core.
type Context struct {
	method string
	path   string

	params   map[string]string
	values   map[string]any
	response *Response

	// request is set by the HTTP adapter; transport-free dispatches leave
	// it nil.
	request *http.Request
	ctx     context.Context
}

// NewContext creates a transport-free request context, the
// context-initializer used by Dispatch and by tests.
func NewContext(method, path string) *Context {
	return &Context{
		method:   method,
		path:     path,
		params:   make(map[string]string),
		response: NewResponse(),
		ctx:      context.Background(),
	}
}

// newRequestContext creates a request context backed by an *http.Request.
func newRequestContext(r *http.Request) *Context {
	c := NewContext(r.Method, r.URL.Path)
	c.request = r
	c.ctx = r.Context()
	return c
}

// Method returns the request's HTTP method.
func (c *Context) Method() string { return c.method }

// Path returns the request path being dispatched.
func (c *Context) Path() string { return c.path }

// Param returns the value bound to a named path parameter, or "".
func (c *Context) Param(name string) string { return c.params[name] }

// Params returns the parameter bindings for the matched route. The map is
// the live binding table; it is empty until a route matches.
func (c *Context) Params() map[string]string { return c.params }

// Response helpers

// Status returns the status of the response-in-progress.
func (c *Context) Status() int { return c.response.Status }

// SetStatus overrides the response status.
func (c *Context) SetStatus(code int) { c.response.Status = code }

// Header returns a response header set so far.
func (c *Context) Header(key string) string { return c.response.Headers[key] }

// SetHeader sets a response header.
func (c *Context) SetHeader(key, value string) { c.response.Headers[key] = value }

// SetBody replaces the response body.
func (c *Context) SetBody(body []byte) { c.response.Body = body }

// Body returns the response body accumulated so far.
func (c *Context) Body() []byte { return c.response.Body }

// String sets the status and a string body.
func (c *Context) String(code int, s string) error {
	c.response.Status = code
	c.response.Body = []byte(s)
	return nil
}

// JSON sets the status and a JSON-encoded body with an application/json
// content type.
func (c *Context) JSON(code int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.response.Status = code
	c.response.Headers["Content-Type"] = "application/json"
	c.response.Body = data
	return nil
}

// Response returns the response-in-progress.
func (c *Context) Response() *Response { return c.response }

// Context values

// Set stores a value for later stages of the same request.
func (c *Context) Set(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}

// Get returns a stored value, or nil.
func (c *Context) Get(key string) any {
	if c.values == nil {
		return nil
	}
	return c.values[key]
}

// MustGet returns a stored value and panics if it is absent.
func (c *Context) MustGet(key string) any {
	v := c.Get(key)
	if v == nil {
		panic("frankie: no value for key " + key)
	}
	return v
}

// Request access

// Request returns the underlying *http.Request when dispatched through the
// HTTP adapter, nil otherwise.
func (c *Context) Request() *http.Request { return c.request }

// Query returns a URL query parameter when a request is attached.
func (c *Context) Query(name string) string {
	if c.request == nil {
		return ""
	}
	return c.request.URL.Query().Get(name)
}

// QueryDefault returns a URL query parameter or a fallback value.
func (c *Context) QueryDefault(name, defaultValue string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return defaultValue
}

// Context returns the request-scoped context.Context.
func (c *Context) Context() context.Context { return c.ctx }

// WithContext replaces the request-scoped context.Context.
func (c *Context) WithContext(ctx context.Context) {
	if ctx != nil {
		c.ctx = ctx
	}
}
