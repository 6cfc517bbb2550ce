/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by the project contributors
 * See LICENSE for license terms and conditions
 *
 * Unified error taxonomy for the client transport
 */

package ippclient

import (
	"fmt"

	goipp "github.com/alexpevzner/ippclient"
	"github.com/gravitational/trace"
)

// ErrorKind classifies client-visible failures
type ErrorKind int

const (
	ErrorKindHTTP ErrorKind = iota
	ErrorKindRequest
	ErrorKindParse
	ErrorKindInvalidURI
	ErrorKindInvalidAttributeType
	ErrorKindMissingAttribute
	ErrorKindStatus
	ErrorKindPrinterState
	ErrorKindIO
	ErrorKindTimeout
)

// String names the kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindHTTP:
		return "HttpError"
	case ErrorKindRequest:
		return "RequestError"
	case ErrorKindParse:
		return "ParseError"
	case ErrorKindInvalidURI:
		return "InvalidUri"
	case ErrorKindInvalidAttributeType:
		return "InvalidAttributeType"
	case ErrorKindMissingAttribute:
		return "MissingAttribute"
	case ErrorKindStatus:
		return "StatusError"
	case ErrorKindPrinterState:
		return "PrinterStateError"
	case ErrorKindIO:
		return "IoError"
	case ErrorKindTimeout:
		return "Timeout"
	}
	return "UnknownError"
}

// Error is the single tagged error value returned across the client
// package's public surface, per the unified error taxonomy
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause, if any, to errors.Is/As
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		cause:   trace.Wrap(cause),
	}
}

// NewHTTPError reports an underlying HTTP/TLS/socket failure
func NewHTTPError(cause error) *Error {
	return newError(ErrorKindHTTP, cause, "request failed")
}

// NewRequestError reports a non-200 HTTP status from the peer
func NewRequestError(status int) *Error {
	return newError(ErrorKindRequest, nil, "unexpected HTTP status %d", status)
}

// newParseError reports an IPP wire decoding failure
func newParseError(cause error) *Error {
	return newError(ErrorKindParse, cause, "failed to decode IPP message")
}

// NewInvalidURIError reports a URI that could not be parsed
func NewInvalidURIError(rawURI string, cause error) *Error {
	return newError(ErrorKindInvalidURI, cause, "invalid URI %q", rawURI)
}

// NewInvalidAttributeTypeError reports an attribute present with the
// wrong tag/type
func NewInvalidAttributeTypeError(name string, tag goipp.Tag) *Error {
	return newError(ErrorKindInvalidAttributeType, nil,
		"attribute %q has unexpected type %s", name, tag.Type())
}

// NewMissingAttributeError reports a required response attribute
// that was not present
func NewMissingAttributeError(name string) *Error {
	return newError(ErrorKindMissingAttribute, nil, "missing required attribute %q", name)
}

// NewStatusError reports an IPP status code in the client/server
// error ranges
func NewStatusError(status goipp.Status) *Error {
	return newError(ErrorKindStatus, nil, "IPP status %s", status)
}

// PrinterStateError reports that the printer is not ready to accept
// the requested operation
type PrinterStateError struct {
	State     int
	Reasons   []string
	Accepting bool
}

func (e *PrinterStateError) Error() string {
	return fmt.Sprintf("printer not ready: state=%s accepting=%v reasons=%v",
		PrinterStateName(e.State), e.Accepting, e.Reasons)
}

// NewPrinterStateError wraps a PrinterStateError as the unified Error
func NewPrinterStateError(state int, reasons []string, accepting bool) *Error {
	return newError(ErrorKindPrinterState,
		&PrinterStateError{State: state, Reasons: reasons, Accepting: accepting},
		"printer is not ready")
}

// NewIOError reports a payload read/write failure
func NewIOError(cause error) *Error {
	return newError(ErrorKindIO, cause, "I/O error")
}

// NewTimeoutError reports that an operation exceeded its configured
// timeout
func NewTimeoutError(cause error) *Error {
	return newError(ErrorKindTimeout, cause, "operation timed out")
}
