package router

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/bobiko/huawei-router-api/internal/config"
	http_transport "github.com/bobiko/huawei-router-api/internal/transport/http"
	"github.com/bobiko/huawei-router-api/internal/utils"
)

// Client defines the interface for talking to the router's web interface.
type Client interface {
	// Do performs a single HTTP call, see Transport.
	Do(ctx context.Context, req *Request) (*Response, error)
	// XMLRequest performs a call expecting an XML document in return.
	XMLRequest(ctx context.Context, opts *XMLRequestOptions) (*XMLResponse, error)
	// GetTokensFromPage returns the verification tokens embedded in the home page.
	GetTokensFromPage(ctx context.Context) ([]string, error)
	// GetOrigin returns the router origin all page URLs are resolved against.
	GetOrigin() string
}

// ErrConfigNotValidated indicates that NewClient got a configuration without parsed fields.
var ErrConfigNotValidated = errors.New("configuration is not validated")

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// origin is the scheme, host and port of the router, without a trailing slash.
	origin string
	// transport performs the HTTP round trips.
	transport Transport
}

// NewClient builds a client from a validated configuration.
// The HTTP stack is: resty with a User-Agent middleware, over an http.Client
// whose transport dumps traffic at debug level.
func NewClient(cfg *config.Config) (*ClientImpl, error) {
	if cfg == nil || cfg.ParsedRouterURL == nil {
		return nil, ErrConfigNotValidated
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	httpClient := &http.Client{
		Transport: http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
		Timeout:   timeout,
	}

	restyClient := resty.NewWithClient(httpClient).
		OnBeforeRequest(http_transport.NewUserAgentInjector(utils.NewStaticUserAgentProvider(cfg.UserAgent)))

	return NewClientWithTransport(cfg.Origin(), NewRestyTransport(restyClient)), nil
}

// NewClientWithTransport builds a client for origin on top of an arbitrary transport.
func NewClientWithTransport(origin string, transport Transport) *ClientImpl {
	return &ClientImpl{
		origin:    strings.TrimRight(origin, "/"),
		transport: transport,
	}
}

// Do performs a single HTTP call through the underlying transport.
func (c *ClientImpl) Do(ctx context.Context, req *Request) (*Response, error) {
	return c.transport.Do(ctx, req)
}

// GetOrigin returns the router origin.
func (c *ClientImpl) GetOrigin() string {
	return c.origin
}
