// Implements the deferred-acceptance (Gale-Shapley) matching engine.
// Systems propose; blocks hold at most one tentative acceptance and trade
// up when a more preferred system proposes. The resulting matching is
// stable and system-optimal: each system receives the best block it gets
// in any stable matching. Blocks must never be made the proposing side —
// that silently flips the optimality direction.

package alloc

// Matching is the final one-to-one assignment from system to block.
// At most one block per system and one system per block; systems that
// exhaust their preference list, or entities left over when the two sides
// differ in size, simply do not appear in Pairs. Built incrementally by
// Match and immutable afterward.
type Matching struct {
	Pairs map[SystemID]Block

	// Proposals counts proposal attempts made during the run.
	// Bounded by |systems| x |blocks|.
	Proposals int
}

// Match runs system-proposing deferred acceptance over the preference
// table and returns the stable matching.
//
// Each free system proposes down its own preference list, one block per
// attempt. An unclaimed block accepts tentatively; a claimed block trades
// up only for a strictly preferred proposer, re-freeing its previous
// holder. A system's position in its list only ever advances — it is not
// reset when the system is displaced — so total proposals are bounded and
// termination is guaranteed.
//
// The table is a precondition: both preference maps must be total orders
// over the full opposite set (NewPreferenceTable guarantees this).
func Match(prefs *PreferenceTable) Matching {
	m := Matching{Pairs: make(map[SystemID]Block, len(prefs.Systems))}

	// Per-block rank lookup for O(1) proposal comparisons.
	rank := make(map[Block]map[SystemID]int, len(prefs.Blocks))
	for b, order := range prefs.BlockPrefs {
		r := make(map[SystemID]int, len(order))
		for i, id := range order {
			r[id] = i
		}
		rank[b] = r
	}

	free := &proposerQueue{}
	for _, s := range prefs.Systems {
		free.Enqueue(s.ID)
	}
	holder := make(map[Block]SystemID, len(prefs.Blocks))
	next := make(map[SystemID]int, len(prefs.Systems))

	for free.Len() > 0 {
		sys := free.Dequeue()
		list := prefs.SystemPrefs[sys]
		for next[sys] < len(list) {
			blk := list[next[sys]]
			next[sys]++
			m.Proposals++

			cur, claimed := holder[blk]
			if !claimed {
				holder[blk] = sys
				m.Pairs[sys] = blk
				break
			}
			if rank[blk][sys] < rank[blk][cur] {
				holder[blk] = sys
				m.Pairs[sys] = blk
				delete(m.Pairs, cur)
				free.Enqueue(cur)
				break
			}
			// Rejected; try the next preference.
		}
		// List exhausted without acceptance: permanently unmatched.
	}
	return m
}
