// Implements per-trial evaluation of the stable matching against a
// uniform-random baseline pairing. Each trial is a pure computation over
// its inputs returning a TrialResult; callers own accumulation across
// trials via Summary.

package alloc

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// TrialResult bundles the outputs of a single evaluation trial: the stable
// matching itself plus the aggregation counts for it and for the random
// baseline computed over the same entities.
type TrialResult struct {
	Matching Matching

	// StableAggregations counts matched pairs whose home and assigned
	// blocks are aggregatable.
	StableAggregations int

	// RandomAggregations is the same count for the uniform-random
	// baseline pairing.
	RandomAggregations int
}

// CountAggregations counts pairs in the assignment whose system home block
// and assigned block can be aggregated. Systems absent from pairs
// contribute nothing.
func CountAggregations(systems []System, pairs map[SystemID]Block) int {
	homes := make(map[SystemID]Block, len(systems))
	for _, s := range systems {
		homes[s.ID] = s.Home
	}
	n := 0
	for id, blk := range pairs {
		if Aggregatable(homes[id], blk) {
			n++
		}
	}
	return n
}

// RandomPairing assigns blocks to systems uniformly at random: the block
// slice is shuffled and zipped against the systems in input order. When
// the sides differ in size the shorter one limits the pairing, mirroring
// the matching engine's unmatched-leftover semantics.
func RandomPairing(systems []System, blocks []Block, rng *rand.Rand) map[SystemID]Block {
	shuffled := make([]Block, len(blocks))
	copy(shuffled, blocks)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := min(len(systems), len(shuffled))
	pairs := make(map[SystemID]Block, n)
	for i := 0; i < n; i++ {
		pairs[systems[i].ID] = shuffled[i]
	}
	return pairs
}

// RunTrial ranks, matches, and scores one set of systems and blocks.
// baselineRNG drives only the random baseline shuffle; the matching itself
// is deterministic. Returns an error only for malformed inputs rejected by
// preference construction.
func RunTrial(systems []System, blocks []Block, baselineRNG *rand.Rand) (TrialResult, error) {
	prefs, err := NewPreferenceTable(systems, blocks)
	if err != nil {
		return TrialResult{}, err
	}
	m := Match(prefs)

	res := TrialResult{
		Matching:           m,
		StableAggregations: CountAggregations(systems, m.Pairs),
		RandomAggregations: CountAggregations(systems, RandomPairing(systems, blocks, baselineRNG)),
	}
	logrus.Debugf("trial: %d/%d systems matched, %d proposals, stable=%d random=%d",
		len(m.Pairs), len(systems), m.Proposals, res.StableAggregations, res.RandomAggregations)
	return res, nil
}

// Summary accumulates TrialResults across an evaluation run.
type Summary struct {
	Trials      int
	StableTotal int
	RandomTotal int
}

// Add folds one trial into the summary.
func (s *Summary) Add(r TrialResult) {
	s.Trials++
	s.StableTotal += r.StableAggregations
	s.RandomTotal += r.RandomAggregations
}

// StableMean returns the mean aggregatable-pair count for the stable
// matchings. Zero trials yield 0.
func (s *Summary) StableMean() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.StableTotal) / float64(s.Trials)
}

// RandomMean returns the mean aggregatable-pair count for the random
// baselines. Zero trials yield 0.
func (s *Summary) RandomMean() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.RandomTotal) / float64(s.Trials)
}
