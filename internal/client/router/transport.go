package router

//go:generate $MOCKGEN -source=transport.go -destination=mocks/transport_mock.go

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bobiko/huawei-router-api/internal/logger"
)

// Transport performs exactly one HTTP round trip per call.
type Transport interface {
	// Do sends req and returns the response when its status is in [200, 400).
	// Every failure is a *RequestError.
	Do(ctx context.Context, req *Request) (*Response, error)
}

// RestyTransport implements Transport on top of a resty client.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport wraps client. Retries are disabled and request payloads are allowed on GET.
func NewRestyTransport(client *resty.Client) *RestyTransport {
	client.
		SetRetryCount(0).
		SetAllowGetMethodPayload(true).
		SetLogger(logger.Logger())

	return &RestyTransport{client: client}
}

// Do sends req and translates the outcome into a Response or a *RequestError.
func (t *RestyTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.URL) == "" {
		return nil, newRequestError(KindRequestError, "", ErrEmptyURL)
	}

	method := req.method()

	ctx, span := tracer().Start(ctx, "router.Transport.Do",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", req.URL),
		))
	defer span.End()

	ctx = logger.WithKV(ctx, "request_id", uuid.NewString())
	logger.DebugKV(ctx, "Sending router request", "method", method, "url", req.URL)

	restyRequest := t.client.R().
		SetContext(ctx).
		SetHeaders(req.headers())

	if req.Data != nil {
		restyRequest.SetBody(req.Data)
	}

	restyResponse, err := restyRequest.Execute(method, req.URL)

	response, err := toResponse(restyResponse, err)
	if err != nil {
		recordError(span, err)
		logger.DebugKV(ctx, "Router request failed", "error", err)

		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", response.StatusCode))
	logger.DebugKV(ctx, "Router request succeeded", "status", response.StatusCode, "bytes", len(response.Body))

	return response, nil
}

// toResponse maps the outcome of a resty call onto the error taxonomy:
// a transport error, a missing response or a status outside [200, 400) is a failure.
func toResponse(res *resty.Response, err error) (*Response, error) {
	if err != nil {
		return nil, newRequestError(KindRequestError, "", err)
	}

	if res == nil || res.RawResponse == nil {
		return nil, newRequestError(KindRequestError, "", ErrNoResponse)
	}

	if !isSuccessStatus(res.StatusCode()) {
		return nil, &RequestError{
			Kind:       KindInvalidStatus,
			Message:    "HTTP request response status invalid; " + statusText(res.RawResponse),
			StatusCode: res.StatusCode(),
		}
	}

	return &Response{
		StatusCode: res.StatusCode(),
		Status:     res.Status(),
		Headers:    res.Header(),
		Body:       res.Body(),
	}, nil
}

// statusText returns the reason phrase of the status line, e.g. "Internal Server Error".
func statusText(res *http.Response) string {
	if _, text, found := strings.Cut(res.Status, " "); found && text != "" {
		return text
	}

	if text := http.StatusText(res.StatusCode); text != "" {
		return text
	}

	return res.Status
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)

	if kind, ok := KindOf(err); ok {
		span.SetAttributes(attribute.String("error.type", string(kind)))
	}

	span.SetStatus(codes.Error, err.Error())
}
