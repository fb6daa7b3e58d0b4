package workload

import (
	"fmt"
	"math/rand"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alloc-sim/alloc-sim/alloc"
)

func TestGenerateScenario_Counts(t *testing.T) {
	spec := DefaultScenarioSpec()
	rng := rand.New(rand.NewSource(spec.Seed))

	systems, blocks, err := GenerateScenario(&spec, rng)
	require.NoError(t, err)
	assert.Len(t, systems, spec.Systems)
	assert.Len(t, blocks, spec.Blocks)

	for i, s := range systems {
		assert.Equal(t, alloc.SystemID(fmt.Sprintf("AS%d", i+1)), s.ID)
	}
}

func TestGenerateScenario_BlocksWithinConfiguredRanges(t *testing.T) {
	spec := DefaultScenarioSpec()
	spec.Systems = 50
	spec.Blocks = 50
	rng := rand.New(rand.NewSource(1))

	systems, blocks, err := GenerateScenario(&spec, rng)
	require.NoError(t, err)

	bases := make([]netip.Prefix, len(spec.BaseNetworks))
	for i, bn := range spec.BaseNetworks {
		bases[i] = netip.MustParsePrefix(bn).Masked()
	}
	inSomeBase := func(b alloc.Block) bool {
		for _, base := range bases {
			if base.Contains(b.Addr()) {
				return true
			}
		}
		return false
	}

	all := make([]alloc.Block, 0, len(systems)+len(blocks))
	for _, s := range systems {
		all = append(all, s.Home)
	}
	all = append(all, blocks...)

	for _, b := range all {
		require.True(t, b.IsValid())
		assert.GreaterOrEqual(t, b.Bits(), spec.PrefixMin)
		assert.LessOrEqual(t, b.Bits(), spec.PrefixMax)
		assert.True(t, inSomeBase(b), "block %s outside every base network", b)
	}
}

func TestGenerateScenario_Deterministic(t *testing.T) {
	spec := DefaultScenarioSpec()

	s1, b1, err := GenerateScenario(&spec, rand.New(rand.NewSource(spec.Seed)))
	require.NoError(t, err)
	s2, b2, err := GenerateScenario(&spec, rand.New(rand.NewSource(spec.Seed)))
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.Equal(t, b1, b2)
}

func TestGenerateScenario_InvalidSpec(t *testing.T) {
	spec := DefaultScenarioSpec()
	spec.Blocks = 0
	_, _, err := GenerateScenario(&spec, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}
