// Implements the Block value type and the network relation predicates
// (aggregation feasibility, common prefix length) that preference scoring
// is built on. Blocks are parsed once at ingestion; all downstream code
// operates on the structured value, never on CIDR strings.

package alloc

import (
	"fmt"
	"math/bits"
	"net/netip"
)

// Block is an immutable address block: a masked network address plus a
// prefix length. The zero Block is invalid; construct via ParseBlock or
// BlockFromPrefix.
type Block struct {
	prefix netip.Prefix
}

// ParseBlock parses a CIDR string ("10.0.0.0/24") into a Block.
// Host bits below the prefix length are masked off, so "10.0.0.7/24"
// yields the 10.0.0.0/24 network. Returns an error for malformed input
// or a prefix length outside the valid range for the address family.
func ParseBlock(s string) (Block, error) {
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return Block{}, fmt.Errorf("invalid address block %q: %w", s, err)
	}
	return Block{prefix: p.Masked()}, nil
}

// MustParseBlock is ParseBlock for static inputs; panics on error.
func MustParseBlock(s string) Block {
	b, err := ParseBlock(s)
	if err != nil {
		panic(err)
	}
	return b
}

// BlockFromPrefix wraps an already-parsed prefix, masking host bits.
func BlockFromPrefix(p netip.Prefix) Block {
	return Block{prefix: p.Masked()}
}

// Addr returns the masked network address.
func (b Block) Addr() netip.Addr { return b.prefix.Addr() }

// Bits returns the prefix length.
func (b Block) Bits() int { return b.prefix.Bits() }

// Width returns the full address width in bits (32 for IPv4, 128 for IPv6).
func (b Block) Width() int { return b.prefix.Addr().BitLen() }

// IsValid reports whether the Block was properly constructed.
func (b Block) IsValid() bool { return b.prefix.IsValid() }

func (b Block) String() string { return b.prefix.String() }

// Prefix returns the underlying netip.Prefix.
func (b Block) Prefix() netip.Prefix { return b.prefix }

// Aggregatable reports whether two blocks can be combined into a single
// routing-table entry: either one is a supernet of the other, or both
// collapse to the identical network when widened one bit past the shorter
// of the two prefix lengths (adjacent siblings). Widening past /0 is not
// possible, so two /0 blocks that are not supernets of each other report
// false rather than erroring. Symmetric in its arguments.
func Aggregatable(a, b Block) bool {
	if !a.IsValid() || !b.IsValid() || a.Width() != b.Width() {
		return false
	}
	// For prefixes, overlap implies containment one way or the other.
	if a.prefix.Overlaps(b.prefix) {
		return true
	}
	parent := min(a.Bits(), b.Bits()) - 1
	if parent < 0 {
		return false
	}
	pa := netip.PrefixFrom(a.Addr(), parent).Masked()
	pb := netip.PrefixFrom(b.Addr(), parent).Masked()
	return pa == pb
}

// CommonPrefixLen returns the number of leading bits shared by the two
// masked network addresses, compared over the full address width. The
// comparison is pure bit arithmetic and deliberately ignores both blocks'
// prefix lengths, so the result may exceed either one (two blocks with
// the same network address share all Width bits). Blocks from different
// address families share nothing.
func CommonPrefixLen(a, b Block) int {
	if a.Width() != b.Width() {
		return 0
	}
	ab := a.Addr().AsSlice()
	bb := b.Addr().AsSlice()
	n := 0
	for i := range ab {
		if x := ab[i] ^ bb[i]; x != 0 {
			return n + bits.LeadingZeros8(x)
		}
		n += 8
	}
	return n
}
