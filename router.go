package frankie

import (
	"net/http"
	"sync"
	"time"

	"github.com/xraph/frankie/logger"
)

// notFoundBody is the fixed fallback body for unmatched requests.
const notFoundBody = "<h1>Not Found</h1>"

// Router is the composition root: an ordered route table, a global
// middleware stack, and the dispatch entry points. Routes are registered at
// startup and the table is treated as immutable once traffic flows; no
// request-time mutation API exists.
//
// Lookup is a deliberate linear scan in insertion order: the first route
// whose method and matcher accept the request wins, full stop. That is a
// predictability-over-throughput policy sized for a handful to a few hundred
// routes, and a known scaling limit rather than a defect.
type Router struct {
	logger       logger.Logger
	errorHandler ErrorHandler
	notFound     Handler

	// routes, middleware and mu are shared with groups so every group
	// appends into the same ordered table and global stack.
	routes     *[]*route
	middleware *[]Middleware
	prefix     string
	groupCfg   *GroupConfig
	mu         *sync.RWMutex
}

// New creates a router with options.
func New(opts ...Option) *Router {
	cfg := &routerConfig{}
	for _, opt := range opts {
		opt.Apply(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = logger.GetGlobalLogger()
	}

	notFound := cfg.notFound
	if notFound == nil {
		notFound = defaultNotFound
	}

	routes := make([]*route, 0)
	middleware := make([]Middleware, 0)
	r := &Router{
		logger:     cfg.logger,
		notFound:   wrapHandlerFunc(notFound),
		routes:     &routes,
		middleware: &middleware,
		mu:         &sync.RWMutex{},
	}

	r.errorHandler = cfg.errorHandler
	if r.errorHandler == nil {
		r.errorHandler = NewDefaultErrorHandler(cfg.logger)
	}

	return r
}

// defaultNotFound produces the default 404 response. Unmatched requests are
// normal control flow, never an error.
func defaultNotFound(c *Context) (any, error) {
	return Halt(http.StatusNotFound, notFoundBody), nil
}

// HTTP method registration

// GET registers a GET route.
func (r *Router) GET(pattern string, handler any, opts ...RouteOption) error {
	return r.Register(http.MethodGet, pattern, handler, opts...)
}

// POST registers a POST route.
func (r *Router) POST(pattern string, handler any, opts ...RouteOption) error {
	return r.Register(http.MethodPost, pattern, handler, opts...)
}

// PUT registers a PUT route.
func (r *Router) PUT(pattern string, handler any, opts ...RouteOption) error {
	return r.Register(http.MethodPut, pattern, handler, opts...)
}

// DELETE registers a DELETE route.
func (r *Router) DELETE(pattern string, handler any, opts ...RouteOption) error {
	return r.Register(http.MethodDelete, pattern, handler, opts...)
}

// PATCH registers a PATCH route.
func (r *Router) PATCH(pattern string, handler any, opts ...RouteOption) error {
	return r.Register(http.MethodPatch, pattern, handler, opts...)
}

// OPTIONS registers an OPTIONS route.
func (r *Router) OPTIONS(pattern string, handler any, opts ...RouteOption) error {
	return r.Register(http.MethodOptions, pattern, handler, opts...)
}

// HEAD registers a HEAD route.
func (r *Router) HEAD(pattern string, handler any, opts ...RouteOption) error {
	return r.Register(http.MethodHead, pattern, handler, opts...)
}

// Register appends a route to the table. Registration is atomic: a pattern
// or handler failure leaves the table untouched. Earlier registrations take
// precedence over later ones when both could match a path.
func (r *Router) Register(method, pattern string, handler any, opts ...RouteOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg := &RouteConfig{}
	for _, opt := range opts {
		opt.Apply(cfg)
	}

	// Inherit group config.
	if r.groupCfg != nil {
		cfg.Tags = append(cfg.Tags, r.groupCfg.Tags...)
		cfg.Middleware = append(append([]Middleware{}, r.groupCfg.Middleware...), cfg.Middleware...)
		for k, v := range r.groupCfg.Metadata {
			if cfg.Metadata == nil {
				cfg.Metadata = make(map[string]any)
			}
			if _, exists := cfg.Metadata[k]; !exists {
				cfg.Metadata[k] = v
			}
		}
	}

	fullPattern := r.prefix + pattern

	compiled, err := compilePattern(fullPattern)
	if err != nil {
		return err
	}

	converted, err := convertHandler(handler)
	if err != nil {
		return err
	}

	// Route-level middleware wraps the handler once, at registration.
	if len(cfg.Middleware) > 0 {
		converted = Chain(cfg.Middleware...)(converted)
	}

	rt := &route{
		method:  method,
		path:    fullPattern,
		pattern: compiled,
		handler: converted,
		source:  handler,
		config:  *cfg,
	}

	*r.routes = append(*r.routes, rt)

	r.logger.Debug("route registered",
		logger.String("method", method),
		logger.String("pattern", fullPattern),
		logger.Strings("params", compiled.params),
	)

	return nil
}

// Use appends global middleware. Global stages wrap the dispatcher itself,
// so they run for every request, matched or not.
//
// On a group, Use scopes the middleware to the group instead: it is applied,
// like all group middleware, around routes subsequently registered through
// the group.
func (r *Router) Use(middleware ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.groupCfg != nil {
		r.groupCfg.Middleware = append(r.groupCfg.Middleware, middleware...)
		return
	}
	*r.middleware = append(*r.middleware, middleware...)
}

// Group creates a route group sharing this router's table. The prefix is
// concatenated and group middleware, tags and metadata are inherited by
// routes registered through the group.
func (r *Router) Group(prefix string, opts ...GroupOption) *Router {
	cfg := &GroupConfig{}

	if r.groupCfg != nil {
		cfg.Tags = append([]string{}, r.groupCfg.Tags...)
		cfg.Middleware = append([]Middleware{}, r.groupCfg.Middleware...)
		if len(r.groupCfg.Metadata) > 0 {
			cfg.Metadata = make(map[string]any, len(r.groupCfg.Metadata))
			for k, v := range r.groupCfg.Metadata {
				cfg.Metadata[k] = v
			}
		}
	}

	for _, opt := range opts {
		opt.Apply(cfg)
	}

	return &Router{
		logger:       r.logger,
		errorHandler: r.errorHandler,
		notFound:     r.notFound,
		routes:       r.routes, // all groups append to the same table and stack
		middleware:   r.middleware,
		prefix:       r.prefix + prefix,
		groupCfg:     cfg,
		mu:           r.mu, // shared with the parent
	}
}

// Dispatch resolves a (method, path) pair to a response: the request enters
// the global middleware chain, the terminal stage consults the route table,
// runs the first matching handler with its captured parameters, and the
// normalized response unwinds back out. A handler failure is returned
// uncaught; an unmatched path yields the 404 response, not an error.
func (r *Router) Dispatch(method, path string) (*Response, error) {
	return r.DispatchContext(NewContext(method, path))
}

// DispatchContext dispatches a caller-initialized Context. Exactly one
// Context flows through the chain of a single request.
func (r *Router) DispatchContext(c *Context) (*Response, error) {
	r.mu.RLock()
	chain := Chain(*r.middleware...)(r.terminal)
	r.mu.RUnlock()

	if err := chain(c); err != nil {
		return nil, err
	}

	return c.response, nil
}

// terminal is the implicit final stage of every chain: route lookup,
// parameter binding, handler invocation.
func (r *Router) terminal(c *Context) error {
	rt, captures := r.lookup(c.method, c.path)
	if rt == nil {
		r.logger.Debug("no matching route",
			logger.String("method", c.method),
			logger.String("path", c.path),
		)
		return r.notFound(c)
	}

	// Captures align positionally with the pattern's parameter names.
	for i, name := range rt.pattern.params {
		c.params[name] = captures[i]
	}

	start := time.Now()
	err := rt.handler(c)
	r.logger.Debug("route dispatched",
		logger.String("method", rt.method),
		logger.String("pattern", rt.path),
		logger.Int("status", c.Status()),
		logger.Duration("duration", time.Since(start)),
	)

	return err
}

// lookup scans the table in insertion order and returns the first route
// whose method and matcher accept the request, with its captures.
func (r *Router) lookup(method, path string) (*route, []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rt := range *r.routes {
		if rt.method != method {
			continue
		}
		if captures, ok := rt.pattern.match(path); ok {
			return rt, captures
		}
	}

	return nil, nil
}

// Introspection

// Routes returns all registered routes in insertion order.
func (r *Router) Routes() []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]RouteInfo, len(*r.routes))
	for i, rt := range *r.routes {
		infos[i] = rt.info()
	}
	return infos
}

// RouteByName returns a route by name.
func (r *Router) RouteByName(name string) (RouteInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rt := range *r.routes {
		if rt.config.Name == name {
			return rt.info(), true
		}
	}
	return RouteInfo{}, false
}

// RoutesByTag returns routes carrying a specific tag.
func (r *Router) RoutesByTag(tag string) []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var infos []RouteInfo
	for _, rt := range *r.routes {
		for _, t := range rt.config.Tags {
			if t == tag {
				infos = append(infos, rt.info())
				break
			}
		}
	}
	return infos
}
