package router

import (
	"net/http"
	"strings"
)

// Request describes a single outbound HTTP call.
type Request struct {
	// URL is the absolute target URL. It must not be empty.
	URL string
	// Method is the HTTP method; GET when empty.
	Method string
	// Data is the optional payload. Strings, byte slices and readers are sent as-is;
	// other values are marshalled according to the Content-Type header (JSON by default).
	Data any
	// Headers are sent with the request and take precedence over Accepts.
	Headers map[string]string
	// Accepts, when set, becomes the Accept header unless Headers overrides it.
	Accepts string
}

// Response is the result of a successful call: the status was in [200, 400).
type Response struct {
	// StatusCode is the numeric HTTP status.
	StatusCode int
	// Status is the status line text, e.g. "200 OK".
	Status string
	// Headers are the response headers.
	Headers http.Header
	// Body is the complete response body.
	Body []byte
}

// method returns the upper-cased method, defaulting to GET.
func (r *Request) method() string {
	method := strings.ToUpper(strings.TrimSpace(r.Method))
	if method == "" {
		return http.MethodGet
	}

	return method
}

// headers merges Accepts and Headers; explicit headers win over Accepts.
// Keys are canonicalized first, so "accept" overrides Accepts as well.
func (r *Request) headers() map[string]string {
	result := make(map[string]string, len(r.Headers)+1)

	if r.Accepts != "" {
		result[acceptHeader] = r.Accepts
	}

	for name, value := range r.Headers {
		result[http.CanonicalHeaderKey(name)] = value
	}

	return result
}

// isSuccessStatus reports whether code counts as success: 2xx and 3xx.
func isSuccessStatus(code int) bool {
	return code >= http.StatusOK && code < http.StatusBadRequest
}
