package gnews

import "github.com/cespare/xxhash/v2"

// dedup tracks article links already seen across feeds. Links are
// stored as xxhash sums rather than strings; Google News links carry
// long tracking segments and a full fetch spans several feeds.
type dedup struct {
	seen map[uint64]struct{}
}

func newDedup() *dedup {
	return &dedup{seen: make(map[uint64]struct{})}
}

// insert records the link and reports whether it was new.
func (d *dedup) insert(link string) bool {
	sum := xxhash.Sum64String(link)
	if _, ok := d.seen[sum]; ok {
		return false
	}
	d.seen[sum] = struct{}{}
	return true
}
