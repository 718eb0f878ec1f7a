// Package gamedata resolves block-state and biome names to the numeric IDs
// used on the wire. A Registry is built once at process start and is
// read-only afterward; serializers receive it by reference.
package gamedata

import (
	"errors"
	"strings"
)

// ErrUnknownEntry is returned when a name has no ID in the registry.
var ErrUnknownEntry = errors.New("unknown registry entry")

// Registry maps resource names to global numeric identifiers. Names are
// stored without the "minecraft:" namespace; lookups accept either form.
type Registry struct {
	blockStates map[string]int32
	biomes      map[string]int32
}

// BlockStateID returns the global block-state ID for name.
func (r *Registry) BlockStateID(name string) (int32, bool) {
	id, ok := r.blockStates[trimNamespace(name)]
	return id, ok
}

// BiomeID returns the global biome ID for name.
func (r *Registry) BiomeID(name string) (int32, bool) {
	id, ok := r.biomes[trimNamespace(name)]
	return id, ok
}

// BlockStateCount returns the number of registered block states.
func (r *Registry) BlockStateCount() int { return len(r.blockStates) }

// BiomeCount returns the number of registered biomes.
func (r *Registry) BiomeCount() int { return len(r.biomes) }

func trimNamespace(name string) string {
	return strings.TrimPrefix(name, "minecraft:")
}

// Builtin returns the compiled-in registry covering the block states and
// biomes the stub terrain uses, with their canonical global IDs.
func Builtin() *Registry {
	return &Registry{
		blockStates: map[string]int32{
			"air":         0,
			"stone":       1,
			"grass_block": 9,
			"oak_log":     131,
		},
		biomes: map[string]int32{
			"the_void": 0,
			"plains":   1,
		},
	}
}
