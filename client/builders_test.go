/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by the project contributors
 * See LICENSE for license terms and conditions
 */

package ippclient

import (
	"strings"
	"testing"

	goipp "github.com/alexpevzner/ippclient"
	"github.com/stretchr/testify/require"
)

func TestNewPrintJobRequest(t *testing.T) {
	payload := strings.NewReader("hello")
	r := NewPrintJobRequest(1, "ipp://printer.example/ipp/print", payload, PrintJobOptions{
		JobName:  "my-job",
		UserName: "alice",
	})

	require.Equal(t, goipp.Code(goipp.OpPrintJob), r.Code)
	require.Same(t, payload, r.Payload())

	var gotJobName, gotUser bool
	for _, attr := range r.Operation {
		switch attr.Name {
		case AttrJobName:
			gotJobName = string(attr.Values[0].V.(goipp.String)) == "my-job"
		case AttrRequestingUserName:
			gotUser = string(attr.Values[0].V.(goipp.String)) == "alice"
		}
	}
	require.True(t, gotJobName)
	require.True(t, gotUser)
}

func TestNewGetPrinterAttributesRequestRequestedAttributes(t *testing.T) {
	r := NewGetPrinterAttributesRequest(1, "ipp://printer.example/ipp/print",
		AttrPrinterState, AttrPrinterIsAcceptingJobs)

	var found goipp.Attribute
	for _, attr := range r.Operation {
		if attr.Name == AttrRequestedAttributes {
			found = attr
		}
	}

	require.Len(t, found.Values, 2)
	require.Equal(t, AttrPrinterState, string(found.Values[0].V.(goipp.String)))
	require.Equal(t, AttrPrinterIsAcceptingJobs, string(found.Values[1].V.(goipp.String)))
}

func TestNewCupsGetPrintersRequestHasNoPrinterURI(t *testing.T) {
	r := NewCupsGetPrintersRequest(1, "ipp://print-server.example/")

	for _, attr := range r.Operation {
		require.NotEqual(t, AttrPrinterURI, attr.Name)
	}
	require.Equal(t, "ipp://print-server.example/", r.TargetURI())
}

func TestNewCancelJobRequest(t *testing.T) {
	r := NewCancelJobRequest(1, "ipp://printer.example/ipp/print", 7)

	var jobID goipp.Integer
	for _, attr := range r.Operation {
		if attr.Name == AttrJobID {
			jobID = attr.Values[0].V.(goipp.Integer)
		}
	}
	require.Equal(t, goipp.Integer(7), jobID)
}
