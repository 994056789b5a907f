package frankie

import (
	"github.com/xraph/frankie/logger"
)

// Option configures the router.
type Option interface {
	Apply(*routerConfig)
}

// RouteOption configures a route.
type RouteOption interface {
	Apply(*RouteConfig)
}

// GroupOption configures a route group.
type GroupOption interface {
	Apply(*GroupConfig)
}

// routerConfig holds router configuration.
type routerConfig struct {
	logger       logger.Logger
	errorHandler ErrorHandler
	notFound     HandlerFunc
}

// Router options

type loggerOpt struct{ logger logger.Logger }

func (o *loggerOpt) Apply(cfg *routerConfig) { cfg.logger = o.logger }

// WithLogger sets the router's logger.
func WithLogger(l logger.Logger) Option { return &loggerOpt{l} }

type errorHandlerOpt struct{ handler ErrorHandler }

func (o *errorHandlerOpt) Apply(cfg *routerConfig) { cfg.errorHandler = o.handler }

// WithErrorHandler sets the handler-failure policy used by the HTTP adapter.
func WithErrorHandler(h ErrorHandler) Option { return &errorHandlerOpt{h} }

type notFoundOpt struct{ handler HandlerFunc }

func (o *notFoundOpt) Apply(cfg *routerConfig) { cfg.notFound = o.handler }

// WithNotFound replaces the default 404 handler.
func WithNotFound(h HandlerFunc) Option { return &notFoundOpt{h} }

// Route options

type nameOpt struct{ name string }

func (o *nameOpt) Apply(cfg *RouteConfig) { cfg.Name = o.name }

// WithName names a route for introspection.
func WithName(name string) RouteOption { return &nameOpt{name} }

type tagsOpt struct{ tags []string }

func (o *tagsOpt) Apply(cfg *RouteConfig) { cfg.Tags = append(cfg.Tags, o.tags...) }

// WithTags tags a route for introspection.
func WithTags(tags ...string) RouteOption { return &tagsOpt{tags} }

type middlewareOpt struct{ mw []Middleware }

func (o *middlewareOpt) Apply(cfg *RouteConfig) { cfg.Middleware = append(cfg.Middleware, o.mw...) }

// WithMiddleware attaches route-level middleware, applied at registration
// time around this route's handler only.
func WithMiddleware(mw ...Middleware) RouteOption { return &middlewareOpt{mw} }

type metadataOpt struct {
	key   string
	value any
}

func (o *metadataOpt) Apply(cfg *RouteConfig) {
	if cfg.Metadata == nil {
		cfg.Metadata = make(map[string]any)
	}
	cfg.Metadata[o.key] = o.value
}

// WithMetadata attaches arbitrary metadata to a route.
func WithMetadata(key string, value any) RouteOption { return &metadataOpt{key, value} }

// Group options

type groupMiddlewareOpt struct{ mw []Middleware }

func (o *groupMiddlewareOpt) Apply(cfg *GroupConfig) {
	cfg.Middleware = append(cfg.Middleware, o.mw...)
}

// WithGroupMiddleware attaches middleware to every route registered through
// the group.
func WithGroupMiddleware(mw ...Middleware) GroupOption { return &groupMiddlewareOpt{mw} }

type groupTagsOpt struct{ tags []string }

func (o *groupTagsOpt) Apply(cfg *GroupConfig) { cfg.Tags = append(cfg.Tags, o.tags...) }

// WithGroupTags tags every route registered through the group.
func WithGroupTags(tags ...string) GroupOption { return &groupTagsOpt{tags} }

type groupMetadataOpt struct {
	key   string
	value any
}

func (o *groupMetadataOpt) Apply(cfg *GroupConfig) {
	if cfg.Metadata == nil {
		cfg.Metadata = make(map[string]any)
	}
	cfg.Metadata[o.key] = o.value
}

// WithGroupMetadata attaches metadata to every route registered through the
// group.
func WithGroupMetadata(key string, value any) GroupOption { return &groupMetadataOpt{key, value} }
