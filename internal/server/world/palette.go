package world

import (
	"bytes"
	"errors"
	"fmt"
	"math/bits"

	mcnet "voxelwire/internal/server/net"
	"voxelwire/pkg/gamedata"
)

// ErrMissingSectionData is returned when a section lacks the block-state or
// biome data required for serialization. The whole packet build aborts.
var ErrMissingSectionData = errors.New("section is missing block state or biome data")

// BitsPolicy chooses the packed entry width for a palette of the given size.
// The width must be consistent between the emitted word count and every
// packed entry, so the policy is applied exactly once per data array.
type BitsPolicy func(paletteSize int) uint8

// FixedBits always uses the same width, regardless of palette size.
func FixedBits(width uint8) BitsPolicy {
	return func(int) uint8 { return width }
}

// SizeDerived computes ceil(log2(paletteSize)) with a lower bound.
func SizeDerived(min uint8) BitsPolicy {
	return func(paletteSize int) uint8 {
		if paletteSize < 2 {
			return min
		}
		width := uint8(bits.Len(uint(paletteSize - 1)))
		if width < min {
			return min
		}
		return width
	}
}

// Legacy field: the client ignores it for lighting-era chunks, so it is
// emitted as the full section volume rather than recomputed.
const nonAirBlockCount = int16(SectionVolume)

// SectionEncoder serializes a section's paletted containers into the wire
// payload format. The registry resolves palette names to global IDs; it is
// loaded once at startup and never mutated.
type SectionEncoder struct {
	Registry  *gamedata.Registry
	BlockBits BitsPolicy
	BiomeBits BitsPolicy
}

// NewSectionEncoder returns an encoder with the default width policies:
// a fixed 15 bits for block states and a size-derived width (minimum 1)
// for biomes.
func NewSectionEncoder(reg *gamedata.Registry) *SectionEncoder {
	return &SectionEncoder{
		Registry:  reg,
		BlockBits: FixedBits(15),
		BiomeBits: SizeDerived(1),
	}
}

// AppendSection serializes the section's block states then biomes into buf.
func (e *SectionEncoder) AppendSection(buf *bytes.Buffer, sec *Section) error {
	if err := e.AppendBlockStates(buf, sec); err != nil {
		return err
	}
	return e.AppendBiomes(buf, sec)
}

// AppendBlockStates writes a section's block-state container: non-air count,
// bits-per-entry, palette, then the packed data array.
func (e *SectionEncoder) AppendBlockStates(buf *bytes.Buffer, sec *Section) error {
	if sec.BlockStates == nil {
		return fmt.Errorf("section y=%d block states: %w", sec.Y, ErrMissingSectionData)
	}

	if err := mcnet.WriteI16(buf, nonAirBlockCount); err != nil {
		return err
	}

	width := e.BlockBits(len(sec.BlockStates.Palette))
	buf.WriteByte(width)

	if err := e.appendPalette(buf, sec.BlockStates.Palette, e.Registry.BlockStateID); err != nil {
		return fmt.Errorf("section y=%d block palette: %w", sec.Y, err)
	}

	return appendPackedArray(buf, sec.BlockStates.Indices, width)
}

// AppendBiomes writes a section's biome container: bits-per-entry, palette,
// then the packed data array. Biomes carry no non-air count.
func (e *SectionEncoder) AppendBiomes(buf *bytes.Buffer, sec *Section) error {
	if sec.Biomes == nil {
		return fmt.Errorf("section y=%d biomes: %w", sec.Y, ErrMissingSectionData)
	}

	width := e.BiomeBits(len(sec.Biomes.Palette))
	buf.WriteByte(width)

	if err := e.appendPalette(buf, sec.Biomes.Palette, e.Registry.BiomeID); err != nil {
		return fmt.Errorf("section y=%d biome palette: %w", sec.Y, err)
	}

	return appendPackedArray(buf, sec.Biomes.Indices, width)
}

// appendPalette writes the VarInt palette length followed by one VarInt
// global ID per entry, in palette order.
func (e *SectionEncoder) appendPalette(buf *bytes.Buffer, palette []string, lookup func(string) (int32, bool)) error {
	if _, err := mcnet.WriteVarInt(buf, int32(len(palette))); err != nil {
		return err
	}
	for _, name := range palette {
		id, ok := lookup(name)
		if !ok {
			return fmt.Errorf("%q: %w", name, gamedata.ErrUnknownEntry)
		}
		if _, err := mcnet.WriteVarInt(buf, id); err != nil {
			return err
		}
	}
	return nil
}

// appendPackedArray writes the VarInt word count followed by the packed
// words, each reinterpreted as a signed big-endian 64-bit integer.
func appendPackedArray(buf *bytes.Buffer, indices []uint64, width uint8) error {
	words := Pack(indices, width)
	if _, err := mcnet.WriteVarInt(buf, int32(len(words))); err != nil {
		return err
	}
	for _, word := range words {
		if err := mcnet.WriteI64(buf, int64(word)); err != nil {
			return err
		}
	}
	return nil
}
