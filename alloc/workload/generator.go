// Synthetic scenario generation: random Autonomous Systems and allocatable
// blocks drawn from a configured pool of base networks. Deterministic given
// the same spec and RNG state; all randomness comes through the injected
// *rand.Rand, never the global source.

package workload

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"net/netip"

	"github.com/alloc-sim/alloc-sim/alloc"
)

// GenerateScenario creates one trial's entities from a ScenarioSpec:
// spec.Systems Autonomous Systems named AS1..ASn, each with a random home
// prefix, and spec.Blocks allocatable blocks. Each prefix is built by
// picking a base network, drawing a random host address inside it, drawing
// a prefix length in [PrefixMin, PrefixMax], and masking.
func GenerateScenario(spec *ScenarioSpec, rng *rand.Rand) ([]alloc.System, []alloc.Block, error) {
	if err := spec.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid scenario spec: %w", err)
	}
	bases := make([]netip.Prefix, len(spec.BaseNetworks))
	for i, bn := range spec.BaseNetworks {
		// Validate() has already vetted these.
		bases[i] = netip.MustParsePrefix(bn).Masked()
	}

	systems := make([]alloc.System, spec.Systems)
	for i := range systems {
		// Home prefixes may repeat across systems; only the IDs are unique.
		systems[i] = alloc.System{
			ID:   alloc.SystemID(fmt.Sprintf("AS%d", i+1)),
			Home: randomBlock(spec, bases, rng),
		}
	}

	// Allocatable blocks must be distinct: the preference table keys block
	// preferences by Block and rejects duplicates. Redraw on collision.
	seen := make(map[alloc.Block]bool, spec.Blocks)
	blocks := make([]alloc.Block, 0, spec.Blocks)
	attempts := 0
	for len(blocks) < spec.Blocks {
		if attempts++; attempts > spec.Blocks*maxDrawFactor {
			return nil, nil, fmt.Errorf(
				"could not draw %d distinct blocks from the configured base networks and prefix range",
				spec.Blocks)
		}
		b := randomBlock(spec, bases, rng)
		if seen[b] {
			continue
		}
		seen[b] = true
		blocks = append(blocks, b)
	}
	return systems, blocks, nil
}

// maxDrawFactor bounds duplicate redraws per requested block before the
// generator concludes the configured space is too small.
const maxDrawFactor = 1000

// randomBlock draws one block: random base network, random host address
// within it, random prefix length in the configured range, host bits masked.
func randomBlock(spec *ScenarioSpec, bases []netip.Prefix, rng *rand.Rand) alloc.Block {
	base := bases[rng.Intn(len(bases))]
	addr := randomHost(base, rng)
	bits := spec.PrefixMin + rng.Intn(spec.PrefixMax-spec.PrefixMin+1)
	return alloc.BlockFromPrefix(netip.PrefixFrom(addr, bits))
}

// randomHost returns a uniformly random host address inside the base
// network, excluding the network and broadcast addresses. The base must be
// IPv4 with prefix length <= 30 (enforced by ScenarioSpec.Validate), so at
// least two host addresses exist.
func randomHost(base netip.Prefix, rng *rand.Rand) netip.Addr {
	b4 := base.Addr().As4()
	network := binary.BigEndian.Uint32(b4[:])
	size := uint64(1) << (32 - base.Bits())
	offset := 1 + rng.Int63n(int64(size-2))

	var out [4]byte
	binary.BigEndian.PutUint32(out[:], network+uint32(offset))
	return netip.AddrFrom4(out)
}
