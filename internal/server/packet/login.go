package packet

import (
	"bytes"
	"fmt"
	"io"

	mcnet "voxelwire/internal/server/net"
)

// LoginStart is sent by the client to begin login (serverbound 0x00 in Login
// state). The UUID is optional on the wire, gated by a Boolean; it is nil
// when the client sent none. Hand-coded because mc tags cannot express the
// conditional field.
type LoginStart struct {
	Name string
	UUID *[16]byte
}

func (*LoginStart) PacketID() int32 { return 0x00 }

func (p *LoginStart) MarshalPacket() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := mcnet.WriteString(&buf, p.Name); err != nil {
		return nil, err
	}
	if err := mcnet.WriteBool(&buf, p.UUID != nil); err != nil {
		return nil, err
	}
	if p.UUID != nil {
		buf.Write(p.UUID[:])
	}
	return buf.Bytes(), nil
}

func (p *LoginStart) UnmarshalPacket(data []byte) error {
	r := bytes.NewReader(data)

	name, err := mcnet.ReadString(r)
	if err != nil {
		return fmt.Errorf("read name: %w", err)
	}
	p.Name = name

	hasUUID, err := mcnet.ReadBool(r)
	if err != nil {
		return fmt.Errorf("read has-uuid: %w", err)
	}

	p.UUID = nil
	if hasUUID {
		var uuid [16]byte
		if _, err := io.ReadFull(r, uuid[:]); err != nil {
			return fmt.Errorf("read uuid: %w", err)
		}
		p.UUID = &uuid
	}
	return nil
}

// SetCompression tells the client the compression threshold (clientbound 0x03 in Login state).
// Every frame after this one uses the compressed format.
type SetCompression struct {
	Threshold int32 `mc:"varint"`
}

func (SetCompression) PacketID() int32 { return 0x03 }

// LoginSuccess completes login (clientbound 0x02 in Login state).
type LoginSuccess struct {
	UUID          [16]byte `mc:"uuid"`
	Username      string   `mc:"string"`
	PropertyCount int32    `mc:"varint"` // always 0 here
}

func (LoginSuccess) PacketID() int32 { return 0x02 }
