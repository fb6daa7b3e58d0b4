// Package alloc provides the core stable-allocation engine for alloc-sim.
//
// # Reading Guide
//
// Start with these three files to understand the allocation kernel:
//   - block.go: the Block value type and network relation predicates
//   - score.go: compatibility scoring and preference ranking
//   - matching.go: the deferred-acceptance (Gale-Shapley) matching loop
//
// # Architecture
//
// The pipeline is: rank, then match, then score.
//
//	systems, blocks
//	    → NewPreferenceTable (total preference orders on both axes)
//	    → Match (system-proposing deferred acceptance)
//	    → CountAggregations / RandomPairing (evaluation)
//
// Preference lists are computed up front from static inputs and are
// immutable during a run. The matching phase is inherently sequential:
// each acceptance decision depends on the current global engagement state,
// so only the independent per-entity ranking computations could ever be
// parallelized, never the matching loop itself.
//
// Synthetic scenario generation lives in the alloc/workload sub-package;
// all randomness flows through PartitionedRNG (rng.go) so a single seed
// reproduces a full evaluation run bit-for-bit.
package alloc
