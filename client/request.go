/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by the project contributors
 * See LICENSE for license terms and conditions
 *
 * Request/response objects: the piece that owns a header, attribute
 * groups and an optional payload source, and knows how to turn itself
 * into (or build itself from) a byte stream
 */

package ippclient

import (
	"bytes"
	"io"
	"strings"

	goipp "github.com/alexpevzner/ippclient"
)

// Request is a client-side IPP request: a header and attribute
// groups (via the embedded Message) plus an optional payload source
type Request struct {
	*goipp.Message
	payload   io.Reader
	targetURI string // where to POST this request; independent of any printer-uri attribute
}

// Response is a server-side IPP response, as parsed by FromReader.
// Payload() exposes whatever bytes remain on the wire after the
// end-of-attributes delimiter
type Response struct {
	*goipp.Message
	payload io.Reader
}

// NewRequest creates a new request for op against rawURI, seeding
// attributes-charset, attributes-natural-language and a
// scheme-normalized printer-uri into the operation-attributes group.
// rawURI also becomes the request's HTTP POST target
func NewRequest(op goipp.Op, requestID uint32, rawURI string) *Request {
	m := goipp.NewRequest(goipp.DefaultVersion, op, requestID)
	seedOperationAttrs(m)

	r := &Request{Message: m, targetURI: rawURI}
	if rawURI != "" {
		normalized := normalizeURI(rawURI)
		r.targetURI = normalized
		m.AddGroupAttr(goipp.TagOperationGroup,
			goipp.MakeAttribute(AttrPrinterURI, goipp.TagURI, goipp.String(normalized)))
	}
	return r
}

// NewRequestNoURI creates a request that carries no printer-uri
// attribute (for the server-wide CUPS operations), but still POSTs to
// serverURI
func NewRequestNoURI(op goipp.Op, requestID uint32, serverURI string) *Request {
	m := goipp.NewRequest(goipp.DefaultVersion, op, requestID)
	seedOperationAttrs(m)
	return &Request{Message: m, targetURI: normalizeURI(serverURI)}
}

// TargetURI returns the ipp(s) URI this request will be POSTed to
func (r *Request) TargetURI() string {
	return r.targetURI
}

// NewResponse creates a new response with the given status and
// request ID, seeding the same charset/language attributes
func NewResponse(status goipp.Status, requestID uint32) *Response {
	m := goipp.NewResponse(goipp.DefaultVersion, status, requestID)
	seedOperationAttrs(m)
	return &Response{Message: m}
}

func seedOperationAttrs(m *goipp.Message) {
	m.AddGroupAttr(goipp.TagOperationGroup,
		goipp.MakeAttribute(AttrAttributesCharset, goipp.TagCharset, goipp.String(DefaultCharset)))
	m.AddGroupAttr(goipp.TagOperationGroup,
		goipp.MakeAttribute(AttrAttributesNaturalLanguage, goipp.TagLanguage, goipp.String(DefaultNaturalLanguage)))
}

// normalizeURI rewrites the scheme http->ipp and https->ipps, but
// only when the scheme is exactly "http" or "https" -- unlike the
// original implementation's unconditional substring replace, this
// leaves an already-"ipp"/"ipps" URI untouched
func normalizeURI(rawURI string) string {
	switch {
	case strings.HasPrefix(rawURI, "http://"):
		return "ipp://" + strings.TrimPrefix(rawURI, "http://")
	case strings.HasPrefix(rawURI, "https://"):
		return "ipps://" + strings.TrimPrefix(rawURI, "https://")
	}
	return rawURI
}

// httpURI rewrites ipp/ipps back to http/https, for the transport
// layer to actually dial
func httpURI(rawURI string) string {
	switch {
	case strings.HasPrefix(rawURI, "ipps://"):
		return "https://" + strings.TrimPrefix(rawURI, "ipps://")
	case strings.HasPrefix(rawURI, "ipp://"):
		return "http://" + strings.TrimPrefix(rawURI, "ipp://")
	}
	return rawURI
}

// SetAttribute adds attr to the named group, creating the group on
// first use
func (r *Request) SetAttribute(tag goipp.Tag, attr goipp.Attribute) {
	r.AddGroupAttr(tag, attr)
}

// SetAttribute adds attr to the named group, creating the group on
// first use
func (r *Response) SetAttribute(tag goipp.Tag, attr goipp.Attribute) {
	r.AddGroupAttr(tag, attr)
}

// SetPayload attaches a byte source to be streamed after the
// metadata. Ownership of src transfers to the Request: callers must
// not read from it after calling SetPayload
func (r *Request) SetPayload(src io.Reader) {
	r.payload = src
}

// Payload returns the request's attached payload source, or nil
func (r *Request) Payload() io.Reader {
	return r.payload
}

// Payload returns the bytes that remained on the wire after the
// response's end-of-attributes delimiter
func (r *Response) Payload() io.Reader {
	return r.payload
}

// IntoReader materializes the request as a lazy byte stream: the
// header and attribute groups are encoded into an in-memory buffer
// first (so they always go out as a single HTTP chunk, a requirement
// of some embedded printer firmwares), then the payload, if any, is
// chained after it unread
func (r *Request) IntoReader() (io.Reader, error) {
	var meta bytes.Buffer
	if err := r.Message.Encode(&meta); err != nil {
		return nil, err
	}

	if r.payload == nil {
		return bytes.NewReader(meta.Bytes()), nil
	}

	return io.MultiReader(bytes.NewReader(meta.Bytes()), r.payload), nil
}

// FromReader parses an IPP request from in. The returned Request's
// Payload() is the same reader, positioned immediately after the
// end-of-attributes delimiter: nothing is buffered ahead, so the
// unread remainder is exactly the opaque document payload
func FromReader(in io.Reader) (*Request, error) {
	var m goipp.Message
	if err := m.Decode(in); err != nil {
		return nil, newParseError(err)
	}
	return &Request{Message: &m, payload: in}, nil
}

// FromReaderResponse parses an IPP response from in, analogous to
// FromReader
func FromReaderResponse(in io.Reader) (*Response, error) {
	var m goipp.Message
	if err := m.Decode(in); err != nil {
		return nil, newParseError(err)
	}
	return &Response{Message: &m, payload: in}, nil
}
