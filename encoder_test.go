/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 */

package goipp

import "testing"

// TestMultiValueRoundTrip verifies that a multi-valued attribute
// serializes to exactly one named entry plus len(values)-1
// continuation entries, and parses back to the same ordered list
func TestMultiValueRoundTrip(t *testing.T) {
	versions := []string{"1.0", "1.1", "2.0"}

	attr := Attribute{Name: "ipp-versions-supported"}
	for _, v := range versions {
		attr.Values.Add(TagKeyword, String(v))
	}

	msg := NewRequest(DefaultVersion, OpGetPrinterAttributes, 1)
	msg.Operation.Add(attr)

	data, err := msg.EncodeBytes()
	if err != nil {
		t.Fatalf("encode failed: %s", err)
	}

	var decoded Message
	if err := decoded.DecodeBytes(data); err != nil {
		t.Fatalf("decode failed: %s", err)
	}

	group, ok := decoded.AttrGroups().First(TagOperationGroup)
	if !ok {
		t.Fatalf("no operation group")
	}

	var got Attribute
	found := false
	for _, a := range group.Attrs {
		if a.Name == "ipp-versions-supported" {
			got = a
			found = true
		}
	}
	if !found {
		t.Fatalf("attribute not found after decode")
	}

	if len(got.Values) != len(versions) {
		t.Fatalf("expected %d values, got %d", len(versions), len(got.Values))
	}

	for i, v := range versions {
		s, ok := got.Values[i].V.(String)
		if !ok || string(s) != v {
			t.Errorf("value %d: expected %q, got %v", i, v, got.Values[i].V)
		}
	}
}

// TestGroupOrderPreserved verifies that repeated groups with the same
// tag retain both their order and their multiplicity, as required for
// responses such as Get-Jobs that carry one job-attributes group per
// job
func TestGroupOrderPreserved(t *testing.T) {
	msg := &Message{
		Version:   DefaultVersion,
		Code:      Code(StatusOk),
		RequestID: 1,
	}

	msg.Groups.Add(Group{Tag: TagOperationGroup, Attrs: Attributes{
		MakeAttribute("attributes-charset", TagCharset, String("utf-8")),
	}})
	msg.Groups.Add(Group{Tag: TagJobGroup, Attrs: Attributes{
		MakeAttribute("job-id", TagInteger, Integer(1)),
	}})
	msg.Groups.Add(Group{Tag: TagJobGroup, Attrs: Attributes{
		MakeAttribute("job-id", TagInteger, Integer(2)),
	}})

	data, err := msg.EncodeBytes()
	if err != nil {
		t.Fatalf("encode failed: %s", err)
	}

	var decoded Message
	if err := decoded.DecodeBytes(data); err != nil {
		t.Fatalf("decode failed: %s", err)
	}

	jobs := decoded.AttrGroups().GroupsOf(TagJobGroup)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 job groups, got %d", len(jobs))
	}

	first, _ := jobs[0].Attrs[0].Values[0].V.(Integer)
	second, _ := jobs[1].Attrs[0].Values[0].V.(Integer)
	if first != 1 || second != 2 {
		t.Errorf("job-id order not preserved: got %v, %v", first, second)
	}
}
