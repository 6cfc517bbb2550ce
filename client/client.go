/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by the project contributors
 * See LICENSE for license terms and conditions
 *
 * HTTP transport: map an IPP request to an HTTP POST with a streaming
 * body, and parse the streamed HTTP response back into an IPP message
 */

package ippclient

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"time"

	goipp "github.com/alexpevzner/ippclient"
	"github.com/alexpevzner/ippclient/internal/ipplog"
)

// DefaultConnectTimeout is the default TCP/TLS connect timeout
const DefaultConnectTimeout = 10 * time.Second

// Client executes IPP requests over HTTP
type Client struct {
	// IgnoreTLSErrors disables TLS hostname and certificate
	// validation. Off by default
	IgnoreTLSErrors bool

	// ConnectTimeout bounds DNS+dial+TLS handshake. Zero uses
	// DefaultConnectTimeout
	ConnectTimeout time.Duration

	// Timeout bounds the whole request/response exchange. Zero
	// means unbounded
	Timeout time.Duration

	// Log receives debug traces of requests and responses. Nil
	// disables logging
	Log *ipplog.Logger

	httpClient *http.Client
}

// NewClient creates a Client with default timeouts
func NewClient() *Client {
	return &Client{ConnectTimeout: DefaultConnectTimeout}
}

func (c *Client) httpClientFor() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}

	connectTimeout := c.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = DefaultConnectTimeout
	}

	dialer := &net.Dialer{Timeout: connectTimeout}

	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: connectTimeout,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: c.IgnoreTLSErrors,
		},
	}

	c.httpClient = &http.Client{
		Transport: transport,
		Timeout:   c.Timeout,
	}

	return c.httpClient
}

// Send executes req and returns the parsed response. A non-200 HTTP
// status yields a RequestError; any other transport failure yields
// an HttpError or Timeout
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	if closer, ok := req.Payload().(io.Closer); ok {
		defer closer.Close()
	}

	body, err := req.IntoReader()
	if err != nil {
		return nil, NewIOError(err)
	}

	target := httpURI(req.TargetURI())
	if target == "" {
		return nil, NewInvalidURIError(req.TargetURI(), nil)
	}

	if c.Log != nil {
		c.Log.LogMessage("request", req.Message, true)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return nil, NewInvalidURIError(target, err)
	}
	httpReq.Header.Set("Content-Type", goipp.ContentType)

	httpResp, err := c.httpClientFor().Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, NewTimeoutError(err)
		}
		return nil, NewHTTPError(err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, NewRequestError(httpResp.StatusCode)
	}

	resp, err := FromReaderResponse(httpResp.Body)
	if err != nil {
		return nil, err
	}

	if c.Log != nil {
		c.Log.LogMessage("response", resp.Message, false)
	}

	return resp, nil
}

// CheckReady performs a Get-Printer-Attributes request for
// {printer-state, printer-state-reasons, printer-is-accepting-jobs}
// and classifies the result: ready only when printer-is-accepting-jobs
// is true, printer-state is idle or processing, and
// printer-state-reasons contains nothing worse than "none" or a
// "-report" suffix
func (c *Client) CheckReady(ctx context.Context, uri string) error {
	req := NewGetPrinterAttributesRequest(1, uri,
		AttrPrinterState, AttrPrinterStateReasons, AttrPrinterIsAcceptingJobs)

	resp, err := c.Send(ctx, req)
	if err != nil {
		return err
	}

	status := goipp.Status(resp.Code)
	if !status.IsSuccessful() {
		return NewStatusError(status)
	}

	group, ok := resp.AttrGroups().First(goipp.TagPrinterGroup)
	if !ok {
		return NewMissingAttributeError(AttrPrinterState)
	}

	var state int
	var accepting bool
	var reasons []string
	haveState, haveAccepting := false, false

	for _, attr := range group.Attrs {
		switch attr.Name {
		case AttrPrinterState:
			if len(attr.Values) == 0 {
				continue
			}
			v, ok := attr.Values[0].V.(goipp.Integer)
			if !ok {
				return NewInvalidAttributeTypeError(AttrPrinterState, attr.Values[0].T)
			}
			state = int(v)
			haveState = true

		case AttrPrinterIsAcceptingJobs:
			if len(attr.Values) == 0 {
				continue
			}
			v, ok := attr.Values[0].V.(goipp.Boolean)
			if !ok {
				return NewInvalidAttributeTypeError(AttrPrinterIsAcceptingJobs, attr.Values[0].T)
			}
			accepting = bool(v)
			haveAccepting = true

		case AttrPrinterStateReasons:
			for _, val := range attr.Values {
				if s, ok := val.V.(goipp.String); ok {
					reasons = append(reasons, string(s))
				}
			}
		}
	}

	if !haveState {
		return NewMissingAttributeError(AttrPrinterState)
	}
	if !haveAccepting {
		return NewMissingAttributeError(AttrPrinterIsAcceptingJobs)
	}

	ready := accepting &&
		(state == PrinterStateIdle || state == PrinterStateProcessing) &&
		benignReasons(reasons)

	if !ready {
		return NewPrinterStateError(state, reasons, accepting)
	}

	return nil
}

func benignReasons(reasons []string) bool {
	for _, r := range reasons {
		if r == "none" {
			continue
		}
		if len(r) > 7 && r[len(r)-7:] == "-report" {
			continue
		}
		return false
	}
	return true
}
