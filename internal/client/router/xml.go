package router

import (
	"bytes"
	"context"
	"encoding/xml"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/bobiko/huawei-router-api/internal/constants"
	"github.com/bobiko/huawei-router-api/internal/xmltree"
)

// XMLRequestOptions describes an XML API call. The Accept header defaults to application/xml.
type XMLRequestOptions struct {
	// URL is the absolute target URL.
	URL string
	// Method is the HTTP method; GET when empty.
	Method string
	// Data is the optional payload, see Request.Data.
	Data any
	// Headers are sent with the request.
	Headers map[string]string
}

// XMLResponse is a parsed XML API response.
type XMLResponse struct {
	// Data is the root element of the response document; nil when the body is empty.
	Data *xmltree.Node
	// Headers are the response headers.
	Headers http.Header
	// Raw is the undecoded body.
	Raw []byte
}

// APIError is the error document the router returns with status 200,
// e.g. <error><code>125002</code><message></message></error>.
type APIError struct {
	Code    string
	Message string
}

// XMLRequest sends an XML API request and parses the whole response body.
// An empty or whitespace-only body is a success with a nil Data.
// Transport failures are returned unchanged; a body that is not well-formed XML
// yields a RequestError of kind KindInvalidXML wrapping the parser error.
func (c *ClientImpl) XMLRequest(ctx context.Context, opts *XMLRequestOptions) (*XMLResponse, error) {
	ctx, span := tracer().Start(ctx, "router.Client.XMLRequest")
	defer span.End()

	if opts == nil {
		err := newRequestError(KindRequestError, "", ErrEmptyURL)
		recordError(span, err)

		return nil, err
	}

	request := &Request{
		URL:     opts.URL,
		Method:  opts.Method,
		Data:    opts.Data,
		Headers: opts.Headers,
		Accepts: constants.MediaTypeXML,
	}

	response, err := c.transport.Do(ctx, request)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	if len(bytes.TrimSpace(response.Body)) == 0 {
		return &XMLResponse{
			Headers: response.Headers,
			Raw:     response.Body,
		}, nil
	}

	root, err := xmltree.Parse(response.Body)
	if err != nil {
		err = newRequestError(KindInvalidXML, "", err)
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.String("xml.root", root.Name))

	return &XMLResponse{
		Data:    root,
		Headers: response.Headers,
		Raw:     response.Body,
	}, nil
}

// Decode unmarshals the raw body into v with encoding/xml.
func (r *XMLResponse) Decode(v any) error {
	if err := xml.Unmarshal(r.Raw, v); err != nil {
		return newRequestError(KindInvalidXML, "", err)
	}

	return nil
}

// APIError returns the router's error document, or nil when the response is not one.
func (r *XMLResponse) APIError() *APIError {
	if r.Data == nil || r.Data.Name != "error" {
		return nil
	}

	return &APIError{
		Code:    r.Data.ChildText("code"),
		Message: r.Data.ChildText("message"),
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return "router API error " + e.Code
	}

	return "router API error " + e.Code + ": " + e.Message
}
