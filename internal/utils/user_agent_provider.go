package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider supplies the User-Agent header sent to the router.
// Some firmware builds reject requests whose User-Agent does not look like a browser.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// StaticUserAgentProvider always returns the User-Agent it was created with.
type StaticUserAgentProvider struct {
	userAgent string
}

// NewStaticUserAgentProvider creates a provider returning userAgent.
func NewStaticUserAgentProvider(userAgent string) UserAgentProvider {
	return &StaticUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns the configured User-Agent.
func (p *StaticUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}

// UserAgentProviderFunc adapts a plain function to UserAgentProvider.
type UserAgentProviderFunc func() string

// GetUserAgent calls f.
func (f UserAgentProviderFunc) GetUserAgent() string {
	return f()
}
