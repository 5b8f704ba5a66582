package bson

import "testing"

func TestContentType(t *testing.T) {
	if got := New().ContentType(); got != "application/bson" {
		t.Errorf("ContentType() = %q, want application/bson", got)
	}
}

func TestRoundTrip(t *testing.T) {
	c := New()

	in := map[string]any{"id": "a", "name": "b"}
	data, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var out map[string]any
	if err := c.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if out["id"] != "a" || out["name"] != "b" {
		t.Errorf("round trip = %#v", out)
	}
}

func TestUnmarshal_BadInput(t *testing.T) {
	var out map[string]any
	if err := New().Unmarshal([]byte{0x01, 0x02}, &out); err == nil {
		t.Error("Unmarshal() accepted truncated input")
	}
}
