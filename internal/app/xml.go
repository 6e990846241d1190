package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bobiko/huawei-router-api/internal/client/router"
	"github.com/bobiko/huawei-router-api/internal/config"
	"github.com/bobiko/huawei-router-api/internal/logger"
)

// verificationTokenHeader carries a csrf token on state-changing API calls.
const verificationTokenHeader = "__RequestVerificationToken"

var (
	// ErrNoVerificationToken indicates that a token was requested but the home page had none.
	ErrNoVerificationToken = errors.New("no verification token found on the home page")
	// ErrInvalidHeader indicates a header argument without a name or a colon.
	ErrInvalidHeader = errors.New("header must look like 'Name: value'")
)

// XMLCommandOptions holds the arguments of the xml command.
type XMLCommandOptions struct {
	// Path is an API path such as "api/monitoring/status", or an absolute URL.
	Path string
	// Method is the HTTP method; GET when empty.
	Method string
	// Data is the raw request body; nothing is sent when empty.
	Data string
	// Headers are sent with the request.
	Headers map[string]string
	// WithToken fetches a verification token first and sends it in __RequestVerificationToken.
	WithToken bool
	// ShowHeaders prints the response headers before the document.
	ShowHeaders bool
}

// ExecuteXMLCommand performs an XML API call against the configured router and prints the result.
func ExecuteXMLCommand(ctx context.Context, cfg *config.Config, opts *XMLCommandOptions, w io.Writer) {
	client, err := router.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize router client: %v", err)
	}

	if err = RunXML(ctx, client, opts, w); err != nil {
		logger.Fatalf(ctx, "XML request failed: %v", err)
	}
}

// RunXML performs the call and writes the response tree as YAML.
// A router error document is printed as well and then returned as *router.APIError.
func RunXML(ctx context.Context, client router.Client, opts *XMLCommandOptions, w io.Writer) error {
	targetURL, err := resolveAPIURL(client.GetOrigin(), opts.Path)
	if err != nil {
		return err
	}

	headers := make(map[string]string, len(opts.Headers)+1)

	if opts.WithToken {
		tokens, tokensErr := client.GetTokensFromPage(ctx)
		if tokensErr != nil {
			return tokensErr
		}

		if len(tokens) == 0 {
			return ErrNoVerificationToken
		}

		headers[verificationTokenHeader] = tokens[0]
	}

	for name, value := range opts.Headers {
		headers[name] = value
	}

	request := &router.XMLRequestOptions{
		URL:     targetURL,
		Method:  opts.Method,
		Headers: headers,
	}

	if opts.Data != "" {
		request.Data = opts.Data
	}

	response, err := client.XMLRequest(ctx, request)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if opts.ShowHeaders {
		if err = encoder.Encode(map[string]any{"headers": flattenHeaders(response.Headers)}); err != nil {
			return fmt.Errorf("failed to encode headers: %w", err)
		}
	}

	if err = encoder.Encode(response.Data.Map()); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	if err = encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if apiErr := response.APIError(); apiErr != nil {
		return apiErr
	}

	return nil
}

// ParseHeaders converts "Name: value" pairs into a header map.
func ParseHeaders(pairs []string) (map[string]string, error) {
	headers := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, ":")

		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidHeader, pair)
		}

		headers[name] = strings.TrimSpace(value)
	}

	return headers, nil
}

func resolveAPIURL(origin, path string) (string, error) {
	base, err := url.Parse(origin + "/")
	if err != nil {
		return "", fmt.Errorf("failed to build API URL: %w", err)
	}

	reference, err := url.Parse(strings.TrimLeft(strings.TrimSpace(path), "/"))
	if err != nil {
		return "", fmt.Errorf("failed to build API URL: %w", err)
	}

	return base.ResolveReference(reference).String(), nil
}

func flattenHeaders(headers map[string][]string) map[string]string {
	result := make(map[string]string, len(headers))

	for name, values := range headers {
		result[name] = strings.Join(values, ", ")
	}

	return result
}
