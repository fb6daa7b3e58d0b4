package alloc

import (
	"hash/fnv"
	"math/rand"
)

// === TrialKey ===

// TrialKey uniquely identifies a reproducible evaluation run.
// Two runs with the same TrialKey and identical configuration
// MUST produce bit-for-bit identical results.
type TrialKey int64

// NewTrialKey creates a TrialKey from a seed value.
func NewTrialKey(seed int64) TrialKey {
	return TrialKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemWorkload is the RNG subsystem for synthetic scenario
	// generation. Uses the master seed directly so --seed alone pins
	// the generated systems and blocks.
	SubsystemWorkload = "workload"

	// SubsystemBaseline is the RNG subsystem for the uniform-random
	// baseline pairing. Isolated from workload generation so the baseline
	// shuffle never perturbs which entities get generated.
	SubsystemBaseline = "baseline"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemWorkload: uses the master seed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	key        TrialKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a TrialKey.
func NewPartitionedRNG(key TrialKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemWorkload {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the TrialKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() TrialKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
