package world

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	mcnet "voxelwire/internal/server/net"
	"voxelwire/pkg/gamedata"
)

func stoneSection() *Section {
	indices := make([]uint64, SectionVolume)
	for i := range indices {
		indices[i] = 1
	}
	return &Section{
		Y: -4,
		BlockStates: &PalettedData{
			Palette: []string{"minecraft:air", "minecraft:stone"},
			Indices: indices,
		},
		Biomes: &PalettedData{
			Palette: []string{"minecraft:plains"},
			Indices: make([]uint64, BiomeVolume),
		},
	}
}

func TestAppendBlockStatesLayout(t *testing.T) {
	enc := NewSectionEncoder(gamedata.Builtin())
	var buf bytes.Buffer

	if err := enc.AppendBlockStates(&buf, stoneSection()); err != nil {
		t.Fatalf("AppendBlockStates: %v", err)
	}

	data := buf.Bytes()

	// Non-air count: fixed 4096, big-endian int16.
	if got := int16(binary.BigEndian.Uint16(data[0:2])); got != 4096 {
		t.Errorf("non-air count = %d, want 4096", got)
	}
	// Bits per entry: fixed 15 under the default policy.
	if data[2] != 15 {
		t.Errorf("bits per entry = %d, want 15", data[2])
	}
	// Palette: VarInt length 2 then VarInt IDs 0 (air), 1 (stone).
	if data[3] != 2 || data[4] != 0 || data[5] != 1 {
		t.Errorf("palette bytes = %x %x %x, want 02 00 01", data[3], data[4], data[5])
	}

	// Data array: VarInt word count 1024 (4096 entries, 4 per word).
	r := bytes.NewReader(data[6:])
	wordCount, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		t.Fatal(err)
	}
	if wordCount != 1024 {
		t.Errorf("word count = %d, want 1024", wordCount)
	}
	if r.Len() != 1024*8 {
		t.Errorf("data array = %d bytes, want %d", r.Len(), 1024*8)
	}

	// First word holds four stone indices at offsets 0, 15, 30, 45.
	var first uint64
	if err := binary.Read(r, binary.BigEndian, &first); err != nil {
		t.Fatal(err)
	}
	want := uint64(1) | 1<<15 | 1<<30 | 1<<45
	if first != want {
		t.Errorf("first word = %#x, want %#x", first, want)
	}
}

func TestAppendBiomesLayout(t *testing.T) {
	enc := NewSectionEncoder(gamedata.Builtin())
	var buf bytes.Buffer

	if err := enc.AppendBiomes(&buf, stoneSection()); err != nil {
		t.Fatalf("AppendBiomes: %v", err)
	}

	// bpe(1) + palette len(1) + plains id(1) + word count(1) + one word(8)
	data := buf.Bytes()
	if len(data) != 12 {
		t.Fatalf("biome payload = %d bytes, want 12", len(data))
	}
	if data[0] != 1 {
		t.Errorf("bits per entry = %d, want 1 (single-entry palette)", data[0])
	}
	if data[1] != 1 || data[2] != 1 {
		t.Errorf("palette = len %d id %d, want len 1 id 1", data[1], data[2])
	}
	if data[3] != 1 {
		t.Errorf("word count = %d, want 1", data[3])
	}
}

func TestSizeDerivedPolicy(t *testing.T) {
	tests := []struct {
		name        string
		min         uint8
		paletteSize int
		want        uint8
	}{
		{"single_entry_floors_to_min", 1, 1, 1},
		{"two_entries", 1, 2, 1},
		{"three_entries", 1, 3, 2},
		{"four_entries", 1, 4, 2},
		{"five_entries", 1, 5, 3},
		{"min_four_small_palette", 4, 2, 4},
		{"min_four_large_palette", 4, 33, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := SizeDerived(tt.min)
			if got := policy(tt.paletteSize); got != tt.want {
				t.Errorf("SizeDerived(%d)(%d) = %d, want %d", tt.min, tt.paletteSize, got, tt.want)
			}
		})
	}
}

func TestAppendBlockStatesMissingData(t *testing.T) {
	enc := NewSectionEncoder(gamedata.Builtin())
	sec := stoneSection()
	sec.BlockStates = nil

	var buf bytes.Buffer
	err := enc.AppendBlockStates(&buf, sec)
	if !errors.Is(err, ErrMissingSectionData) {
		t.Fatalf("AppendBlockStates = %v, want ErrMissingSectionData", err)
	}
}

func TestAppendPaletteUnknownName(t *testing.T) {
	enc := NewSectionEncoder(gamedata.Builtin())
	sec := stoneSection()
	sec.BlockStates.Palette = []string{"minecraft:air", "minecraft:unobtainium"}

	var buf bytes.Buffer
	err := enc.AppendBlockStates(&buf, sec)
	if !errors.Is(err, gamedata.ErrUnknownEntry) {
		t.Fatalf("AppendBlockStates = %v, want ErrUnknownEntry", err)
	}
}
