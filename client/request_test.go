/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by the project contributors
 * See LICENSE for license terms and conditions
 */

package ippclient

import (
	"bytes"
	"io"
	"testing"

	goipp "github.com/alexpevzner/ippclient"
	"github.com/stretchr/testify/require"
)

func TestNewRequestSeedsCharsetAndLanguage(t *testing.T) {
	r := NewRequest(goipp.OpGetPrinterAttributes, 1, "http://printer.example/ipp/print")

	require.Len(t, r.Operation, 3)
	require.Equal(t, AttrAttributesCharset, r.Operation[0].Name)
	require.Equal(t, DefaultCharset, string(r.Operation[0].Values[0].V.(goipp.String)))
	require.Equal(t, AttrAttributesNaturalLanguage, r.Operation[1].Name)
	require.Equal(t, DefaultNaturalLanguage, string(r.Operation[1].Values[0].V.(goipp.String)))
}

func TestNewRequestNormalizesURIScheme(t *testing.T) {
	tests := []struct{ in, want string }{
		{"http://printer.example/ipp/print", "ipp://printer.example/ipp/print"},
		{"https://printer.example/ipp/print", "ipps://printer.example/ipp/print"},
		{"ipps://printer.example/ipp/print", "ipps://printer.example/ipp/print"},
		{"ipp://printer.example/ipp/print", "ipp://printer.example/ipp/print"},
	}

	for _, test := range tests {
		r := NewRequest(goipp.OpPrintJob, 1, test.in)
		got := string(r.Operation[2].Values[0].V.(goipp.String))
		if got != test.want {
			t.Errorf("%q: expected %q, got %q", test.in, test.want, got)
		}
		require.Equal(t, test.want, r.TargetURI())
	}
}

func TestRequestIntoReaderSingleChunkThenPayload(t *testing.T) {
	r := NewRequest(goipp.OpPrintJob, 1, "ipp://printer.example/ipp/print")
	payload := []byte("hello, world")
	r.SetPayload(bytes.NewReader(payload))

	stream, err := r.IntoReader()
	require.NoError(t, err)

	all, err := io.ReadAll(stream)
	require.NoError(t, err)
	require.True(t, bytes.HasSuffix(all, payload), "stream must end with the payload bytes")

	// The metadata-only prefix must itself be parseable as a complete
	// IPP message whose residual equals exactly the payload -- this is
	// the "single HTTP chunk" guarantee in practice, since a bytes.Reader
	// backing a single io.MultiReader part is delivered as one Read
	var decoded goipp.Message
	reader := bytes.NewReader(all)
	require.NoError(t, decoded.Decode(reader))

	rest, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, payload, rest)
}

func TestFromReaderRoundTrip(t *testing.T) {
	r := NewRequest(goipp.OpGetPrinterAttributes, 42, "ipp://printer.example/ipp/print")

	stream, err := r.IntoReader()
	require.NoError(t, err)

	parsed, err := FromReader(stream)
	require.NoError(t, err)
	require.Equal(t, uint32(42), parsed.RequestID)
	require.Equal(t, goipp.Code(goipp.OpGetPrinterAttributes), parsed.Code)
}
