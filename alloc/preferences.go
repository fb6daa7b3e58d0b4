package alloc

import "fmt"

// PreferenceTable holds the two preference maps the matching engine
// consumes: for every system an ordered list of all blocks, and for every
// block an ordered list of all systems, most preferred first. Both lists
// are total orders over the full opposite set; NewPreferenceTable
// guarantees this by construction and rejects inputs that would break it.
// Immutable after construction.
type PreferenceTable struct {
	Systems []System
	Blocks  []Block

	SystemPrefs map[SystemID][]Block
	BlockPrefs  map[Block][]SystemID
}

// NewPreferenceTable computes both preference maps from the given systems
// and blocks. Returns an error for duplicate system IDs, duplicate blocks,
// or invalid (zero) blocks — a malformed input here would silently corrupt
// the matching, so construction fails loudly instead.
func NewPreferenceTable(systems []System, blocks []Block) (*PreferenceTable, error) {
	seenIDs := make(map[SystemID]bool, len(systems))
	for i, s := range systems {
		if s.ID == "" {
			return nil, fmt.Errorf("system[%d]: empty ID", i)
		}
		if !s.Home.IsValid() {
			return nil, fmt.Errorf("system %s: invalid home block", s.ID)
		}
		if seenIDs[s.ID] {
			return nil, fmt.Errorf("duplicate system ID %s", s.ID)
		}
		seenIDs[s.ID] = true
	}
	seenBlocks := make(map[Block]bool, len(blocks))
	for i, b := range blocks {
		if !b.IsValid() {
			return nil, fmt.Errorf("block[%d]: invalid block", i)
		}
		if seenBlocks[b] {
			return nil, fmt.Errorf("duplicate block %s", b)
		}
		seenBlocks[b] = true
	}

	pt := &PreferenceTable{
		Systems:     systems,
		Blocks:      blocks,
		SystemPrefs: make(map[SystemID][]Block, len(systems)),
		BlockPrefs:  make(map[Block][]SystemID, len(blocks)),
	}
	for _, s := range systems {
		pt.SystemPrefs[s.ID] = RankBlocksFor(s, blocks)
	}
	for _, b := range blocks {
		pt.BlockPrefs[b] = RankSystemsFor(b, systems)
	}
	return pt, nil
}
