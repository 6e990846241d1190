package router

const (
	// homePageURI is the page carrying the csrf_token meta elements.
	homePageURI = "html/home.html"

	// csrfTokenSelector selects the meta elements holding verification tokens.
	csrfTokenSelector = "meta[name=csrf_token]"

	// csrfTokenAttribute is the attribute holding the token value.
	csrfTokenAttribute = "content"

	// acceptHeader is the canonical Accept header name.
	acceptHeader = "Accept"

	// tracerName is the instrumentation scope for spans started by this package.
	tracerName = "github.com/bobiko/huawei-router-api/internal/client/router"
)
