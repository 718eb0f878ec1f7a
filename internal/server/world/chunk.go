package world

// A chunk is one 16×16 column of the world, cut into 24 vertical sections
// covering y = -64..320 (section indices -4..=20). Each section owns a
// block-state palette over 4096 voxels, a biome palette over 64 cells
// (4×4×4), and 2048-byte nibble arrays for sky and block light.

const (
	// SectionCount is the fixed number of sections per chunk column.
	SectionCount = 24
	// MinSectionY is the lowest section index.
	MinSectionY = -4

	// SectionVolume is the number of block voxels in one section.
	SectionVolume = 16 * 16 * 16
	// BiomeVolume is the number of biome cells in one section.
	BiomeVolume = 4 * 4 * 4
	// LightBytes is the size of one light array: 4096 nibbles, two per byte.
	LightBytes = SectionVolume / 2

	// heightmapColumns is the number of per-column height entries.
	heightmapColumns = 16 * 16
	// heightmapBits is the entry width for packed heightmap values.
	heightmapBits = 9
)

// PalettedData is a palette of distinct identifiers plus dense per-voxel
// indices into it. Every index must be < len(Palette).
type PalettedData struct {
	Palette []string
	Indices []uint64
}

// Section is one 16×16×16 slab of a chunk.
type Section struct {
	Y           int8
	BlockStates *PalettedData // 4096 indices
	Biomes      *PalettedData // 64 indices
	SkyLight    []byte        // 2048 bytes, one nibble per voxel pair
	BlockLight  []byte
}

// Heightmaps carries the packed per-column height data sent with a chunk.
type Heightmaps struct {
	MotionBlocking []int64
	WorldSurface   []int64
}

// Chunk is a full column, built on demand for one outgoing packet and
// discarded after serialization.
type Chunk struct {
	X, Z        int32
	Status      string
	DataVersion int32
	Sections    []*Section
	Heightmaps  Heightmaps
}

// PackHeightmap packs 256 column heights into 9-bit entries.
func PackHeightmap(heights []uint64) []int64 {
	words := Pack(heights, heightmapBits)
	packed := make([]int64, len(words))
	for i, w := range words {
		packed[i] = int64(w)
	}
	return packed
}

// NewStubChunk builds a chunk with fixed stand-in terrain: every voxel in
// every section is stone, the biome everywhere is plains, and all light is
// at maximum. Real terrain comes from a generator this package does not own.
func NewStubChunk(x, z int32) *Chunk {
	palette := []string{"minecraft:air", "minecraft:stone"}

	sections := make([]*Section, 0, SectionCount)
	for y := MinSectionY; y < MinSectionY+SectionCount; y++ {
		indices := make([]uint64, SectionVolume)
		for i := range indices {
			indices[i] = 1 // stone
		}

		fullLight := make([]byte, LightBytes)
		for i := range fullLight {
			fullLight[i] = 0xFF
		}

		sections = append(sections, &Section{
			Y: int8(y),
			BlockStates: &PalettedData{
				Palette: append([]string(nil), palette...),
				Indices: indices,
			},
			Biomes: &PalettedData{
				Palette: []string{"minecraft:plains"},
				Indices: make([]uint64, BiomeVolume),
			},
			SkyLight:   fullLight,
			BlockLight: append([]byte(nil), fullLight...),
		})
	}

	heights := make([]uint64, heightmapColumns)
	heightmap := PackHeightmap(heights)

	return &Chunk{
		X:           x,
		Z:           z,
		Status:      "full",
		DataVersion: 3465,
		Sections:    sections,
		Heightmaps: Heightmaps{
			MotionBlocking: heightmap,
			WorldSurface:   append([]int64(nil), heightmap...),
		},
	}
}
