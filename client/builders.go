/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by the project contributors
 * See LICENSE for license terms and conditions
 *
 * Operation builders: one constructor per supported IPP operation
 */

package ippclient

import (
	"io"

	goipp "github.com/alexpevzner/ippclient"
)

// PrintJobOptions carries the optional inputs accepted by
// NewPrintJobRequest
type PrintJobOptions struct {
	JobName   string
	UserName  string
	DocFormat string
	Extra     []goipp.Attribute
}

// NewPrintJobRequest builds a Print-Job request against uri, attaching
// payload as the document body
func NewPrintJobRequest(requestID uint32, uri string, payload io.Reader, opt PrintJobOptions) *Request {
	r := NewRequest(goipp.OpPrintJob, requestID, uri)

	if opt.JobName != "" {
		r.SetAttribute(goipp.TagOperationGroup,
			goipp.MakeAttribute(AttrJobName, goipp.TagName, goipp.String(opt.JobName)))
	}
	if opt.UserName != "" {
		r.SetAttribute(goipp.TagOperationGroup,
			goipp.MakeAttribute(AttrRequestingUserName, goipp.TagName, goipp.String(opt.UserName)))
	}
	if opt.DocFormat != "" {
		r.SetAttribute(goipp.TagOperationGroup,
			goipp.MakeAttribute(AttrDocumentFormat, goipp.TagMimeType, goipp.String(opt.DocFormat)))
	}
	for _, attr := range opt.Extra {
		r.SetAttribute(goipp.TagJobGroup, attr)
	}

	r.SetPayload(payload)
	return r
}

// NewGetPrinterAttributesRequest builds a Get-Printer-Attributes
// request. If requested is non-empty, it is carried as
// requested-attributes; otherwise the server's default attribute set
// is requested
func NewGetPrinterAttributesRequest(requestID uint32, uri string, requested ...string) *Request {
	r := NewRequest(goipp.OpGetPrinterAttributes, requestID, uri)
	addRequestedAttributes(r, requested)
	return r
}

// NewValidateJobRequest builds a Validate-Job request, with the same
// shape as Print-Job but no payload
func NewValidateJobRequest(requestID uint32, uri string, opt PrintJobOptions) *Request {
	r := NewRequest(goipp.OpValidateJob, requestID, uri)
	if opt.JobName != "" {
		r.SetAttribute(goipp.TagOperationGroup,
			goipp.MakeAttribute(AttrJobName, goipp.TagName, goipp.String(opt.JobName)))
	}
	if opt.UserName != "" {
		r.SetAttribute(goipp.TagOperationGroup,
			goipp.MakeAttribute(AttrRequestingUserName, goipp.TagName, goipp.String(opt.UserName)))
	}
	if opt.DocFormat != "" {
		r.SetAttribute(goipp.TagOperationGroup,
			goipp.MakeAttribute(AttrDocumentFormat, goipp.TagMimeType, goipp.String(opt.DocFormat)))
	}
	for _, attr := range opt.Extra {
		r.SetAttribute(goipp.TagJobGroup, attr)
	}
	return r
}

// NewCreateJobRequest builds a Create-Job request: an empty job that
// Send-Document will later attach documents to
func NewCreateJobRequest(requestID uint32, uri string, opt PrintJobOptions) *Request {
	r := NewRequest(goipp.OpCreateJob, requestID, uri)
	if opt.JobName != "" {
		r.SetAttribute(goipp.TagOperationGroup,
			goipp.MakeAttribute(AttrJobName, goipp.TagName, goipp.String(opt.JobName)))
	}
	if opt.UserName != "" {
		r.SetAttribute(goipp.TagOperationGroup,
			goipp.MakeAttribute(AttrRequestingUserName, goipp.TagName, goipp.String(opt.UserName)))
	}
	return r
}

// NewSendDocumentRequest builds a Send-Document request for an
// existing jobID, attaching payload. lastDocument marks whether more
// documents will follow in this job
func NewSendDocumentRequest(requestID uint32, uri string, jobID int, payload io.Reader, lastDocument bool) *Request {
	r := NewRequest(goipp.OpSendDocument, requestID, uri)
	r.SetAttribute(goipp.TagOperationGroup,
		goipp.MakeAttribute(AttrJobID, goipp.TagInteger, goipp.Integer(jobID)))
	r.SetAttribute(goipp.TagOperationGroup,
		goipp.MakeAttribute(AttrLastDocument, goipp.TagBoolean, goipp.Boolean(lastDocument)))
	r.SetPayload(payload)
	return r
}

// NewCancelJobRequest builds a Cancel-Job request for jobID
func NewCancelJobRequest(requestID uint32, uri string, jobID int) *Request {
	r := NewRequest(goipp.OpCancelJob, requestID, uri)
	r.SetAttribute(goipp.TagOperationGroup,
		goipp.MakeAttribute(AttrJobID, goipp.TagInteger, goipp.Integer(jobID)))
	return r
}

// NewGetJobAttributesRequest builds a Get-Job-Attributes request for
// jobID
func NewGetJobAttributesRequest(requestID uint32, uri string, jobID int, requested ...string) *Request {
	r := NewRequest(goipp.OpGetJobAttributes, requestID, uri)
	r.SetAttribute(goipp.TagOperationGroup,
		goipp.MakeAttribute(AttrJobID, goipp.TagInteger, goipp.Integer(jobID)))
	addRequestedAttributes(r, requested)
	return r
}

// NewGetJobsRequest builds a Get-Jobs request. The response carries
// one job-attributes group per returned job, readable via
// Groups.GroupsOf(goipp.TagJobGroup)
func NewGetJobsRequest(requestID uint32, uri string, requested ...string) *Request {
	r := NewRequest(goipp.OpGetJobs, requestID, uri)
	addRequestedAttributes(r, requested)
	return r
}

// NewCupsGetPrintersRequest builds a CUPS-Get-Printers request against
// serverURI (the print server's base address). No printer-uri
// attribute is required; only charset/language and optionally
// requested-attributes are sent
func NewCupsGetPrintersRequest(requestID uint32, serverURI string, requested ...string) *Request {
	r := NewRequestNoURI(goipp.OpCupsGetPrinters, requestID, serverURI)
	addRequestedAttributes(r, requested)
	return r
}

// NewCupsGetDefaultRequest builds a CUPS-Get-Default request against
// serverURI
func NewCupsGetDefaultRequest(requestID uint32, serverURI string, requested ...string) *Request {
	r := NewRequestNoURI(goipp.OpCupsGetDefault, requestID, serverURI)
	addRequestedAttributes(r, requested)
	return r
}

// NewCupsGetClassesRequest builds a CUPS-Get-Classes request against
// serverURI
func NewCupsGetClassesRequest(requestID uint32, serverURI string, requested ...string) *Request {
	r := NewRequestNoURI(goipp.OpCupsGetClasses, requestID, serverURI)
	addRequestedAttributes(r, requested)
	return r
}

func addRequestedAttributes(r *Request, requested []string) {
	if len(requested) == 0 {
		return
	}

	values := make([]goipp.Value, len(requested))
	for i, name := range requested {
		values[i] = goipp.String(name)
	}

	attr := goipp.Attribute{Name: AttrRequestedAttributes}
	for _, v := range values {
		attr.Values.Add(goipp.TagKeyword, v)
	}
	r.SetAttribute(goipp.TagOperationGroup, attr)
}
