package frankie

// route represents a registered route. Routes are created once at
// registration time and never mutated afterwards.
type route struct {
	method  string
	path    string
	pattern *pattern
	// handler is the converted user handler with route-level middleware
	// already applied.
	handler Handler
	source  any
	config  RouteConfig
}

// RouteConfig holds route configuration.
type RouteConfig struct {
	Name       string
	Tags       []string
	Middleware []Middleware
	Metadata   map[string]any
}

// GroupConfig holds route group configuration.
type GroupConfig struct {
	Middleware []Middleware
	Tags       []string
	Metadata   map[string]any
}

// RouteInfo provides route information for inspection.
type RouteInfo struct {
	Name     string
	Method   string
	Pattern  string
	Params   []string
	Handler  any
	Tags     []string
	Metadata map[string]any
}

// info snapshots the route for callers. Slices and the metadata map are
// copied so callers cannot mutate the route table through them.
func (rt *route) info() RouteInfo {
	var metadata map[string]any
	if len(rt.config.Metadata) > 0 {
		metadata = make(map[string]any, len(rt.config.Metadata))
		for k, v := range rt.config.Metadata {
			metadata[k] = v
		}
	}

	return RouteInfo{
		Name:     rt.config.Name,
		Method:   rt.method,
		Pattern:  rt.path,
		Params:   append([]string(nil), rt.pattern.params...),
		Handler:  rt.source,
		Tags:     append([]string(nil), rt.config.Tags...),
		Metadata: metadata,
	}
}
