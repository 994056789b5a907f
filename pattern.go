package frankie

import (
	"strings"

	"github.com/xraph/frankie/errors"
)

// segment is one slash-delimited piece of a compiled pattern. A param
// segment captures exactly one non-empty path segment; a literal segment
// matches itself byte-for-byte.
type segment struct {
	literal string
	param   bool
}

// pattern is the compiled form of a route pattern. Matching is anchored at
// both ends: a path matches only if it has exactly the same number of
// segments as the pattern.
type pattern struct {
	raw      string
	segments []segment
	params   []string
}

// compilePattern compiles a route pattern into a matcher and its ordered
// parameter names. It is pure; the only failure mode is an
// INVALID_ROUTE_PATTERN error for an empty pattern, a pattern without a
// leading '/', an empty parameter name, or a duplicate parameter name.
func compilePattern(raw string) (*pattern, error) {
	if raw == "" {
		return nil, errors.ErrInvalidRoutePattern(raw, "empty pattern")
	}
	if raw[0] != '/' {
		return nil, errors.ErrInvalidRoutePattern(raw, "must start with '/'")
	}

	parts := strings.Split(raw, "/")

	p := &pattern{
		raw:      raw,
		segments: make([]segment, 0, len(parts)),
	}

	seen := make(map[string]struct{})

	for _, part := range parts {
		if strings.HasPrefix(part, ":") {
			name := part[1:]
			if name == "" {
				return nil, errors.ErrInvalidRoutePattern(raw, "empty parameter name")
			}
			if _, dup := seen[name]; dup {
				return nil, errors.ErrInvalidRoutePattern(raw, "duplicate parameter name \""+name+"\"")
			}
			seen[name] = struct{}{}
			p.segments = append(p.segments, segment{literal: name, param: true})
			p.params = append(p.params, name)
			continue
		}
		p.segments = append(p.segments, segment{literal: part})
	}

	return p, nil
}

// match tests path against the pattern and returns the captured segments in
// parameter declaration order. Captures align positionally with params.
func (p *pattern) match(path string) ([]string, bool) {
	parts := strings.Split(path, "/")
	if len(parts) != len(p.segments) {
		return nil, false
	}

	var captures []string
	if len(p.params) > 0 {
		captures = make([]string, 0, len(p.params))
	}

	for i, seg := range p.segments {
		if seg.param {
			// A parameter consumes one segment of one-or-more bytes.
			if parts[i] == "" {
				return nil, false
			}
			captures = append(captures, parts[i])
			continue
		}
		if parts[i] != seg.literal {
			return nil, false
		}
	}

	return captures, true
}
