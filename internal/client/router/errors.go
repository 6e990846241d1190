package router

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-readable category of a RequestError.
type ErrorKind string

const (
	// KindRequestError covers transport failures and indeterminate transport states.
	KindRequestError ErrorKind = "http_request_error"
	// KindInvalidStatus covers responses whose status code is outside [200, 400).
	KindInvalidStatus ErrorKind = "http_request_invalid_status"
	// KindInvalidXML covers response bodies that are not well-formed XML.
	KindInvalidXML ErrorKind = "http_request_invalid_xml"
)

// Sentinel values for errors.Is; a RequestError matches the sentinel of its kind.
var (
	// ErrRequest matches every RequestError of kind KindRequestError.
	ErrRequest = &RequestError{Kind: KindRequestError}
	// ErrInvalidStatus matches every RequestError of kind KindInvalidStatus.
	ErrInvalidStatus = &RequestError{Kind: KindInvalidStatus}
	// ErrInvalidXML matches every RequestError of kind KindInvalidXML.
	ErrInvalidXML = &RequestError{Kind: KindInvalidXML}

	// ErrEmptyURL is the cause reported for requests without a target URL.
	ErrEmptyURL = errors.New("request URL is empty")
	// ErrNoResponse is the cause reported when the transport returned neither a response nor an error.
	ErrNoResponse = errors.New("unknown HTTP request error")
)

// RequestError is the error returned by every operation of this package.
type RequestError struct {
	// Kind is the failure category.
	Kind ErrorKind
	// Message is a human-readable description.
	Message string
	// StatusCode is set for KindInvalidStatus.
	StatusCode int
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the bare sentinel of e's kind,
// so that errors.Is(err, ErrInvalidStatus) works on any invalid status error.
func (e *RequestError) Is(target error) bool {
	other, ok := target.(*RequestError)
	if !ok {
		return false
	}

	return other.Kind == e.Kind && other.Message == "" && other.Err == nil
}

// KindOf returns the kind of the first RequestError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var requestErr *RequestError
	if !errors.As(err, &requestErr) {
		return "", false
	}

	return requestErr.Kind, true
}

func newRequestError(kind ErrorKind, message string, cause error) *RequestError {
	return &RequestError{
		Kind:    kind,
		Message: message,
		Err:     cause,
	}
}
