package world

import (
	"bytes"

	"github.com/willf/bitset"

	mcnet "voxelwire/internal/server/net"
)

// ColumnLight holds the per-column light state sent with a chunk packet:
// presence bitmasks (one bit per section) and the matching light arrays,
// in section order.
type ColumnLight struct {
	SkyMask        *bitset.BitSet
	BlockMask      *bitset.BitSet
	EmptySkyMask   *bitset.BitSet
	EmptyBlockMask *bitset.BitSet
	SkyArrays      [][]byte
	BlockArrays    [][]byte
}

// BuildColumnLight computes light masks and arrays for a column. A mask bit
// is set when the section carries the corresponding light array; there is no
// light propagation here, sections ship whatever nibbles they hold.
func BuildColumnLight(sections []*Section) ColumnLight {
	n := uint(len(sections))
	light := ColumnLight{
		SkyMask:        bitset.New(n),
		BlockMask:      bitset.New(n),
		EmptySkyMask:   bitset.New(n),
		EmptyBlockMask: bitset.New(n),
	}

	for i, sec := range sections {
		if len(sec.SkyLight) > 0 {
			light.SkyMask.Set(uint(i))
			light.SkyArrays = append(light.SkyArrays, sec.SkyLight)
		}
		if len(sec.BlockLight) > 0 {
			light.BlockMask.Set(uint(i))
			light.BlockArrays = append(light.BlockArrays, sec.BlockLight)
		}
	}

	return light
}

// AppendBitSet writes a bitmask as a VarInt word count followed by the
// 64-bit words. Trailing all-zero words are dropped, so an empty mask
// encodes as a bare zero count.
func AppendBitSet(buf *bytes.Buffer, set *bitset.BitSet) error {
	words := set.Bytes()
	for len(words) > 0 && words[len(words)-1] == 0 {
		words = words[:len(words)-1]
	}

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

// AppendLightArrays writes a VarInt array count followed by each array with
// its own byte-length prefix.
func AppendLightArrays(buf *bytes.Buffer, arrays [][]byte) error {
	if _, err := mcnet.WriteVarInt(buf, int32(len(arrays))); err != nil {
		return err
	}
	for _, arr := range arrays {
		if _, err := mcnet.WriteByteArray(buf, arr); err != nil {
			return err
		}
	}
	return nil
}
