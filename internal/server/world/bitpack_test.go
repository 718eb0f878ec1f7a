package world

import (
	"math/rand"
	"testing"
)

func TestPackNoStraddle(t *testing.T) {
	// 15 bits per entry → 4 entries per word, 4 bits of padding each.
	values := make([]uint64, 4096)
	for i := range values {
		values[i] = 1
	}

	words := Pack(values, 15)
	if len(words) != 1024 {
		t.Fatalf("Pack produced %d words, want 1024", len(words))
	}

	// Each word: four entries of 1 at offsets 0, 15, 30, 45.
	want := uint64(1) | 1<<15 | 1<<30 | 1<<45
	if words[0] != want {
		t.Errorf("words[0] = %#x, want %#x", words[0], want)
	}
}

func TestPackPartialFinalWord(t *testing.T) {
	// 5 entries at 15 bits: 4 fill the first word, the fifth starts a new one.
	values := []uint64{1, 2, 3, 4, 5}
	words := Pack(values, 15)
	if len(words) != 2 {
		t.Fatalf("Pack produced %d words, want 2", len(words))
	}
	if words[1] != 5 {
		t.Errorf("words[1] = %#x, want 0x5", words[1])
	}
}

func TestPackedWordCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
		bits  uint8
		words int
	}{
		{"blocks_15_bits", 4096, 15, 1024},
		{"blocks_4_bits", 4096, 4, 256},
		{"biomes_1_bit", 64, 1, 1},
		{"biomes_3_bits", 64, 3, 4},
		{"heightmap_9_bits", 256, 9, 37},
		{"empty", 0, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackedWordCount(tt.count, tt.bits); got != tt.words {
				t.Errorf("PackedWordCount(%d, %d) = %d, want %d", tt.count, tt.bits, got, tt.words)
			}
		})
	}
}

func TestPackUnpackRoundTripAllWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for bits := uint8(1); bits <= 63; bits++ {
		values := make([]uint64, 517) // deliberately not word-aligned
		max := uint64(1) << bits
		for i := range values {
			values[i] = rng.Uint64() % max
		}

		words := Pack(values, bits)
		if len(words) != PackedWordCount(len(values), bits) {
			t.Fatalf("bits=%d: %d words, want %d", bits, len(words), PackedWordCount(len(values), bits))
		}

		got := Unpack(words, bits, len(values))
		for i := range values {
			if got[i] != values[i] {
				t.Fatalf("bits=%d: entry %d = %d, want %d", bits, i, got[i], values[i])
			}
		}
	}
}
