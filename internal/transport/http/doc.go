// Package http provides http.RoundTripper decorators used by the router client:
// debug-level request/response dumps and User-Agent header injection.
package http
