package world

// Bit-packed arrays hold fixed-width unsigned entries in 64-bit words,
// low bits first. An entry never straddles two words: when the next entry
// would not fit in the bits remaining, the rest of the word is left as zero
// padding and the entry starts the next word.

// EntriesPerWord returns how many entries of the given width fit in one word.
func EntriesPerWord(bitsPerEntry uint8) int {
	return 64 / int(bitsPerEntry)
}

// PackedWordCount returns the number of words needed for count entries.
func PackedWordCount(count int, bitsPerEntry uint8) int {
	per := EntriesPerWord(bitsPerEntry)
	return (count + per - 1) / per
}

// Pack packs values into 64-bit words at bitsPerEntry bits each. Values are
// masked to the entry width. bitsPerEntry must be in 1..63.
func Pack(values []uint64, bitsPerEntry uint8) []uint64 {
	mask := uint64(1)<<bitsPerEntry - 1
	perWord := EntriesPerWord(bitsPerEntry)

	words := make([]uint64, 0, PackedWordCount(len(values), bitsPerEntry))
	var current uint64
	inCurrent := 0

	for _, v := range values {
		current |= (v & mask) << (uint(bitsPerEntry) * uint(inCurrent))
		inCurrent++

		if inCurrent == perWord {
			words = append(words, current)
			current = 0
			inCurrent = 0
		}
	}

	if inCurrent > 0 {
		words = append(words, current)
	}

	return words
}

// Unpack reverses Pack, returning count entries of bitsPerEntry bits each.
func Unpack(words []uint64, bitsPerEntry uint8, count int) []uint64 {
	mask := uint64(1)<<bitsPerEntry - 1
	perWord := EntriesPerWord(bitsPerEntry)

	values := make([]uint64, 0, count)
	for _, word := range words {
		for i := 0; i < perWord && len(values) < count; i++ {
			values = append(values, word&mask)
			word >>= bitsPerEntry
		}
	}

	return values
}
