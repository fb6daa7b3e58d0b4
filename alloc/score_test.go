package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatibilityScore_Formula(t *testing.T) {
	a := MustParseBlock("10.0.0.0/24")
	b := MustParseBlock("10.0.1.0/24")
	// 23 shared bits, equal prefix lengths: 2*23 + (32 - 0)
	assert.Equal(t, 78, CompatibilityScore(a, b))

	c := MustParseBlock("10.0.0.0/23")
	// 32 shared bits, prefix lengths differ by 1: 2*32 + (32 - 1)
	assert.Equal(t, 95, CompatibilityScore(a, c))

	d := MustParseBlock("192.168.0.0/24")
	// no shared bits, equal prefix lengths: 0 + 32
	assert.Equal(t, 32, CompatibilityScore(a, d))
}

func TestCompatibilityScore_Symmetric(t *testing.T) {
	blocks := []Block{
		MustParseBlock("10.0.0.0/22"),
		MustParseBlock("10.0.0.0/29"),
		MustParseBlock("172.16.4.0/24"),
		MustParseBlock("198.51.100.128/25"),
	}
	for _, x := range blocks {
		for _, y := range blocks {
			assert.Equal(t, CompatibilityScore(x, y), CompatibilityScore(y, x),
				"CompatibilityScore(%s, %s) must be symmetric", x, y)
		}
	}
}

func TestRankBlocksFor_PrefersAggregationCompatibility(t *testing.T) {
	sys := System{ID: "AS1", Home: MustParseBlock("10.0.0.0/24")}
	candidates := []Block{
		MustParseBlock("192.168.0.0/24"),
		MustParseBlock("10.0.1.0/24"),
		MustParseBlock("10.0.0.0/23"),
	}

	ranked := RankBlocksFor(sys, candidates)

	// Supernet beats adjacent sibling beats unrelated block.
	assert.Equal(t, MustParseBlock("10.0.0.0/23"), ranked[0])
	assert.Equal(t, MustParseBlock("10.0.1.0/24"), ranked[1])
	assert.Equal(t, MustParseBlock("192.168.0.0/24"), ranked[2])

	assert.True(t, Aggregatable(sys.Home, ranked[0]))
	assert.False(t, Aggregatable(sys.Home, ranked[2]))
}

func TestRankBlocksFor_FullCandidateSet(t *testing.T) {
	sys := System{ID: "AS1", Home: MustParseBlock("10.0.0.0/24")}
	candidates := []Block{
		MustParseBlock("10.0.0.0/23"),
		MustParseBlock("172.16.0.0/22"),
		MustParseBlock("192.168.0.0/29"),
		MustParseBlock("198.51.100.0/25"),
	}
	ranked := RankBlocksFor(sys, candidates)
	assert.Len(t, ranked, len(candidates))
	seen := make(map[Block]bool)
	for _, b := range ranked {
		assert.False(t, seen[b], "block %s ranked twice", b)
		seen[b] = true
	}
}

func TestRankBlocksFor_StableTieBreak(t *testing.T) {
	// Both candidates score identically against the home block (24 vs 25
	// octet-aligned mirrors), so input order must be preserved.
	sys := System{ID: "AS1", Home: MustParseBlock("10.0.0.0/24")}
	candidates := []Block{
		MustParseBlock("192.168.0.0/24"),
		MustParseBlock("192.0.2.0/24"),
	}
	assert.Equal(t, CompatibilityScore(sys.Home, candidates[0]),
		CompatibilityScore(sys.Home, candidates[1]))

	ranked := RankBlocksFor(sys, candidates)
	assert.Equal(t, candidates[0], ranked[0])
	assert.Equal(t, candidates[1], ranked[1])
}

func TestRankSystemsFor_OrdersByScore(t *testing.T) {
	blk := MustParseBlock("10.0.0.0/24")
	systems := []System{
		{ID: "AS1", Home: MustParseBlock("192.168.0.0/24")},
		{ID: "AS2", Home: MustParseBlock("10.0.0.0/23")},
		{ID: "AS3", Home: MustParseBlock("10.0.1.0/24")},
	}
	ranked := RankSystemsFor(blk, systems)
	assert.Equal(t, []SystemID{"AS2", "AS3", "AS1"}, ranked)
}
