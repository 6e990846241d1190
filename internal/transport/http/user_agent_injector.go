package http

import (
	"github.com/go-resty/resty/v2"

	"github.com/bobiko/huawei-router-api/internal/utils"
)

// userAgentHeader is the HTTP header name for User-Agent.
const userAgentHeader = "User-Agent"

// NewUserAgentInjector returns a resty request middleware that fills in a missing User-Agent header.
// Requests that already carry a non-empty User-Agent are left untouched.
//
// It must be registered with OnBeforeRequest: resty stamps its own User-Agent on requests
// that reach its built-in middlewares without one, so an http.RoundTripper never sees it missing.
func NewUserAgentInjector(userAgentProvider utils.UserAgentProvider) resty.RequestMiddleware {
	return func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(userAgentHeader) == "" {
			req.Header.Set(userAgentHeader, userAgentProvider.GetUserAgent())
		}

		return nil
	}
}
