package frankie

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// H is a shortcut for JSON object payloads returned from handlers.
type H map[string]any

// Response is the canonical (status, headers, body) shape every dispatch
// produces. A fresh Response starts at status 200 with a text/html content
// type; handlers and middleware override pieces of it.
type Response struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

// NewResponse creates a response-in-progress with the default policy
// applied: status 200, Content-Type text/html.
func NewResponse() *Response {
	return &Response{
		Status:  http.StatusOK,
		Headers: map[string]string{"Content-Type": "text/html"},
	}
}

// Halt builds a final Response for explicit early returns. Returning it
// from a handler (or a not-found handler) replaces the response-in-progress
// without any non-local control flow.
func Halt(status int, body string) *Response {
	return &Response{Status: status, Body: []byte(body)}
}

// apply normalizes a handler's return value onto the context's
// response-in-progress. Recognized shapes:
//
//	nil        - the handler mutated the context directly
//	string     - body only
//	[]byte     - body only
//	int        - status only
//	*Response  - status, merged headers, body (the Halt shape)
//	H / other  - JSON-encoded body with application/json content type
func (c *Context) apply(result any) error {
	switch v := result.(type) {
	case nil:
	case string:
		c.response.Body = []byte(v)
	case []byte:
		c.response.Body = v
	case int:
		c.response.Status = v
	case *Response:
		if v.Status != 0 {
			c.response.Status = v.Status
		}
		for k, val := range v.Headers {
			c.response.Headers[k] = val
		}
		if v.Body != nil {
			c.response.Body = v.Body
		}
	case error:
		// Stray errors returned through the value slot still propagate as
		// handler failures instead of being serialized.
		return v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		c.response.Headers["Content-Type"] = "application/json"
		c.response.Body = data
	}

	return nil
}
