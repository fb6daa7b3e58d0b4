package alloc

import "sort"

// CompatibilityScore scores how well two blocks suit each other as an
// allocation pair. Higher is better.
//
// Formula: 2*CommonPrefixLen(x,y) + (width - |bits(x) - bits(y)|)
//
// The common-prefix term is weighted 2x so topological proximity dominates
// mere prefix-length similarity. The score is symmetric and is used
// unchanged on both ranking axes (blocks-for-a-system and
// systems-for-a-block).
func CompatibilityScore(x, y Block) int {
	diff := x.Bits() - y.Bits()
	if diff < 0 {
		diff = -diff
	}
	return 2*CommonPrefixLen(x, y) + (x.Width() - diff)
}

// RankBlocksFor orders the full candidate block set by descending
// compatibility with the system's home block. Ties preserve the input
// order, so ranking is deterministic for a fixed candidate slice.
func RankBlocksFor(sys System, blocks []Block) []Block {
	ranked := make([]Block, len(blocks))
	copy(ranked, blocks)
	scores := make(map[Block]int, len(blocks))
	for _, b := range blocks {
		scores[b] = CompatibilityScore(sys.Home, b)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}

// RankSystemsFor orders the full system set by descending compatibility
// of their home blocks with the given block. Ties preserve input order.
func RankSystemsFor(blk Block, systems []System) []SystemID {
	ranked := make([]SystemID, len(systems))
	scores := make(map[SystemID]int, len(systems))
	for i, s := range systems {
		ranked[i] = s.ID
		scores[s.ID] = CompatibilityScore(blk, s.Home)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}
