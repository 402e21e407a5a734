package qr

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := NewCodec(0)
	want := Payload{ID: "665f1c2e8b3f4a2d9c0e1a77", StudentID: "665f1c2e8b3f4a2d9c0e1a00"}

	encoded, err := codec.Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.HasPrefix(encoded, "data:") {
		t.Fatalf("expected bare base64, got data URL prefix")
	}

	got, err := codec.Decode(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestDecodeAcceptsDataURL(t *testing.T) {
	codec := NewCodec(200)
	want := Payload{ID: "a1", StudentID: "s1"}
	encoded, err := codec.Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := codec.Decode("data:image/png;base64," + encoded)
	if err != nil {
		t.Fatalf("decode data URL: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	codec := NewCodec(0)
	if _, err := codec.Decode("not base64 at all!"); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
	if _, err := codec.Decode("aGVsbG8="); err == nil {
		t.Fatalf("expected error for non-image bytes")
	}
}

func TestParsePayloadRequiresBothFields(t *testing.T) {
	if _, err := ParsePayload(`{"id":"x"}`); err == nil {
		t.Fatalf("expected error when studentId is missing")
	}
	p, err := ParsePayload(`{"id": "x", "studentId": "y"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.ID != "x" || p.StudentID != "y" {
		t.Fatalf("unexpected payload %+v", p)
	}
}
