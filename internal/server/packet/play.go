package packet

import (
	"bytes"
	"fmt"

	mcnet "voxelwire/internal/server/net"
	"voxelwire/internal/server/world"
	"voxelwire/internal/server/world/nbt"
)

// Clientbound play packet IDs.
const (
	IDChunkDataAndUpdateLight int32 = 0x24
)

// BlockEntity is one entry of a chunk packet's block-entity list. Data is a
// pre-encoded tag-tree payload.
type BlockEntity struct {
	PackedXZ uint8
	Y        int16
	Type     int32
	Data     []byte
}

// ChunkDataAndUpdateLight is the combined chunk + light packet (0x24).
// Build one with BuildChunkData; the zero value is not a valid packet.
type ChunkDataAndUpdateLight struct {
	ChunkX        int32
	ChunkZ        int32
	Heightmaps    []byte // tag-tree payload, written as-is
	Data          []byte // concatenated per-section block-state + biome payloads
	BlockEntities []BlockEntity
	Light         world.ColumnLight
}

func (*ChunkDataAndUpdateLight) PacketID() int32 { return IDChunkDataAndUpdateLight }

// BuildChunkData assembles the packet for one chunk column. Sections are
// serialized in vertical order, block states before biomes; any section with
// missing data aborts the build with no partial output.
func BuildChunkData(enc *world.SectionEncoder, ch *world.Chunk) (*ChunkDataAndUpdateLight, error) {
	var data bytes.Buffer
	for _, sec := range ch.Sections {
		if err := enc.AppendSection(&data, sec); err != nil {
			return nil, err
		}
	}

	var heightmaps bytes.Buffer
	hw := nbt.NewWriter(&heightmaps)
	hw.BeginNetworkCompound()
	hw.WriteLongArray("MOTION_BLOCKING", ch.Heightmaps.MotionBlocking)
	hw.WriteLongArray("WORLD_SURFACE", ch.Heightmaps.WorldSurface)
	hw.EndCompound()
	if err := hw.Err(); err != nil {
		return nil, fmt.Errorf("encode heightmaps: %w", err)
	}

	return &ChunkDataAndUpdateLight{
		ChunkX:     ch.X,
		ChunkZ:     ch.Z,
		Heightmaps: heightmaps.Bytes(),
		Data:       data.Bytes(),
		Light:      world.BuildColumnLight(ch.Sections),
	}, nil
}

// MarshalPacket encodes the packet body. Field order is fixed by the wire
// format; all multi-byte scalars are big-endian.
func (p *ChunkDataAndUpdateLight) MarshalPacket() ([]byte, error) {
	var buf bytes.Buffer

	if err := mcnet.WriteI32(&buf, p.ChunkX); err != nil {
		return nil, err
	}
	if err := mcnet.WriteI32(&buf, p.ChunkZ); err != nil {
		return nil, err
	}

	buf.Write(p.Heightmaps)

	if _, err := mcnet.WriteByteArray(&buf, p.Data); err != nil {
		return nil, err
	}

	if _, err := mcnet.WriteVarInt(&buf, int32(len(p.BlockEntities))); err != nil {
		return nil, err
	}
	for _, be := range p.BlockEntities {
		if err := mcnet.WriteU8(&buf, be.PackedXZ); err != nil {
			return nil, err
		}
		if err := mcnet.WriteI16(&buf, be.Y); err != nil {
			return nil, err
		}
		if _, err := mcnet.WriteVarInt(&buf, be.Type); err != nil {
			return nil, err
		}
		buf.Write(be.Data)
	}

	if err := world.AppendBitSet(&buf, p.Light.SkyMask); err != nil {
		return nil, err
	}
	if err := world.AppendBitSet(&buf, p.Light.BlockMask); err != nil {
		return nil, err
	}
	if err := world.AppendBitSet(&buf, p.Light.EmptySkyMask); err != nil {
		return nil, err
	}
	if err := world.AppendBitSet(&buf, p.Light.EmptyBlockMask); err != nil {
		return nil, err
	}

	if err := world.AppendLightArrays(&buf, p.Light.SkyArrays); err != nil {
		return nil, err
	}
	if err := world.AppendLightArrays(&buf, p.Light.BlockArrays); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
