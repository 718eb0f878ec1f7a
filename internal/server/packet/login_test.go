package packet

import (
	"bytes"
	"testing"

	mcnet "voxelwire/internal/server/net"
)

func TestLoginStartWithoutUUID(t *testing.T) {
	// Name, then the has-uuid Boolean cleared and nothing after it.
	want := []byte{0x05, 'A', 'l', 'i', 'c', 'e', 0x00}

	data, err := (&LoginStart{Name: "Alice"}).MarshalPacket()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(data, want) {
		t.Errorf("body = % X, want % X", data, want)
	}

	var got LoginStart
	if err := mcnet.Unmarshal(want, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Name != "Alice" {
		t.Errorf("name = %q, want %q", got.Name, "Alice")
	}
	if got.UUID != nil {
		t.Errorf("uuid = %v, want nil", *got.UUID)
	}
}

func TestLoginStartWithUUID(t *testing.T) {
	uuid := [16]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10}

	data, err := (&LoginStart{Name: "Bob", UUID: &uuid}).MarshalPacket()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := append([]byte{0x03, 'B', 'o', 'b', 0x01}, uuid[:]...)
	if !bytes.Equal(data, want) {
		t.Errorf("body = % X, want % X", data, want)
	}

	var got LoginStart
	if err := mcnet.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Name != "Bob" {
		t.Errorf("name = %q, want %q", got.Name, "Bob")
	}
	if got.UUID == nil || *got.UUID != uuid {
		t.Errorf("uuid = %v, want %v", got.UUID, uuid)
	}
}

func TestLoginStartTruncatedUUID(t *testing.T) {
	data := []byte{0x03, 'B', 'o', 'b', 0x01, 0xAA, 0xBB}

	var got LoginStart
	if err := mcnet.Unmarshal(data, &got); err == nil {
		t.Error("expected error for truncated uuid, got nil")
	}
}
