package net

import (
	"bytes"
	"fmt"
	"io"
)

// Packet is any protocol packet with a fixed clientbound or serverbound ID.
type Packet interface {
	PacketID() int32
}

// Marshaler is implemented by packets whose body layout cannot be expressed
// with mc struct tags (lists, raw tag-tree payloads, bit-packed arrays).
type Marshaler interface {
	MarshalPacket() ([]byte, error)
}

// Unmarshaler is the decoding counterpart of Marshaler, for packets with
// optional or conditional fields.
type Unmarshaler interface {
	UnmarshalPacket(data []byte) error
}

// maxPacketLen caps an uncompressed packet frame at 2 MB.
const maxPacketLen = 1 << 21

// ReadRawPacket reads one frame: VarInt total length, VarInt packet ID, body.
func ReadRawPacket(r io.Reader) (packetID int32, data []byte, err error) {
	length, _, err := ReadVarInt(r)
	if err != nil {
		return 0, nil, fmt.Errorf("read packet length: %w", err)
	}
	if length < 1 {
		return 0, nil, fmt.Errorf("packet length too small: %d", length)
	}
	if length > maxPacketLen {
		return 0, nil, fmt.Errorf("packet too large: %d bytes", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, fmt.Errorf("read packet payload: %w", err)
	}

	buf := bytes.NewReader(payload)
	packetID, _, err = ReadVarInt(buf)
	if err != nil {
		return 0, nil, fmt.Errorf("read packet ID: %w", err)
	}

	remaining := make([]byte, buf.Len())
	if _, err := io.ReadFull(buf, remaining); err != nil {
		return 0, nil, fmt.Errorf("read packet data: %w", err)
	}

	return packetID, remaining, nil
}

// WriteRawPacket writes one frame: VarInt total length, VarInt packet ID, body.
func WriteRawPacket(w io.Writer, packetID int32, data []byte) error {
	idSize := VarIntSize(packetID)
	totalLen := idSize + len(data)

	var buf bytes.Buffer
	buf.Grow(VarIntSize(int32(totalLen)) + totalLen)

	if _, err := WriteVarInt(&buf, int32(totalLen)); err != nil {
		return fmt.Errorf("write packet length: %w", err)
	}
	if _, err := WriteVarInt(&buf, packetID); err != nil {
		return fmt.Errorf("write packet ID: %w", err)
	}
	if _, err := buf.Write(data); err != nil {
		return fmt.Errorf("write packet data: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("flush packet: %w", err)
	}
	return nil
}

// WritePacket marshals p and writes it as a single frame. Packets that
// implement Marshaler produce their own body; everything else goes through
// the mc-tag marshaller.
func WritePacket(w io.Writer, p Packet) error {
	var data []byte
	var err error
	if m, ok := p.(Marshaler); ok {
		data, err = m.MarshalPacket()
	} else {
		data, err = Marshal(p)
	}
	if err != nil {
		return fmt.Errorf("marshal packet 0x%02X: %w", p.PacketID(), err)
	}
	return WriteRawPacket(w, p.PacketID(), data)
}

// ReadPacket reads a single frame and unmarshals it into p, which must match
// the frame's packet ID.
func ReadPacket(r io.Reader, p Packet) error {
	packetID, data, err := ReadRawPacket(r)
	if err != nil {
		return err
	}
	if packetID != p.PacketID() {
		return fmt.Errorf("expected packet 0x%02X, got 0x%02X", p.PacketID(), packetID)
	}
	return Unmarshal(data, p)
}
