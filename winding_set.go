package fastuidraw

import "math/bits"

// windingSet is a dense bitset over a contiguous range of winding numbers,
// [minWinding, minWinding+len). It plays the role of the original's
// boost::dynamic_bitset-backed WindingSet: a compact way to test, per
// vertex, whether any of the windings touching that vertex are "inside"
// under the complement of the active fill rule (the AA-boundary test,
// §4.6). No bitset library appears anywhere in the retrieval pack (see
// DESIGN.md), so this is a small hand-rolled word-packed bitset rather
// than a stdlib fallback of convenience -- winding ranges here are bounded
// by a single subset's observed winding span, typically tens of entries.
type windingSet struct {
	minWinding int
	words      []uint64
}

func newWindingSet(minWinding, maxWinding int) windingSet {
	n := maxWinding - minWinding + 1
	if n < 0 {
		n = 0
	}
	return windingSet{
		minWinding: minWinding,
		words:      make([]uint64, (n+63)/64),
	}
}

func (w *windingSet) index(winding int) (word, bit int, ok bool) {
	i := winding - w.minWinding
	if i < 0 || i/64 >= len(w.words) {
		return 0, 0, false
	}
	return i / 64, i % 64, true
}

func (w *windingSet) set(winding int, value bool) {
	word, bit, ok := w.index(winding)
	if !ok {
		return
	}
	if value {
		w.words[word] |= 1 << uint(bit)
	} else {
		w.words[word] &^= 1 << uint(bit)
	}
}

func (w windingSet) has(winding int) bool {
	word, bit, ok := w.index(winding)
	if !ok {
		return false
	}
	return w.words[word]&(1<<uint(bit)) != 0
}

// extractFromFillRule builds the windingSet whose bits mark every winding
// number in range for which rule(w) is true -- in practice this is used
// with the complement of the fill rule driving a given tessellation pass,
// to mark vertices on the AA boundary of the filled region (§4.6).
func extractFromFillRule(rule FillRule, minWinding, maxWinding int) windingSet {
	s := newWindingSet(minWinding, maxWinding)
	for w := minWinding; w <= maxWinding; w++ {
		s.set(w, rule(w))
	}
	return s
}

// extractFromSet builds the windingSet containing exactly the given
// windings (duplicates ignored), sized to their observed min/max.
func extractFromSet(windings []int) windingSet {
	if len(windings) == 0 {
		return windingSet{}
	}
	lo, hi := windings[0], windings[0]
	for _, w := range windings[1:] {
		if w < lo {
			lo = w
		}
		if w > hi {
			hi = w
		}
	}
	s := newWindingSet(lo, hi)
	for _, w := range windings {
		s.set(w, true)
	}
	return s
}

// haveCommonBit reports whether a and b have any winding number in common.
func haveCommonBit(a, b windingSet) bool {
	lo := a.minWinding
	if b.minWinding < lo {
		lo = b.minWinding
	}
	hi := a.minWinding + len(a.words)*64
	bhi := b.minWinding + len(b.words)*64
	if bhi > hi {
		hi = bhi
	}
	for w := lo; w < hi; w++ {
		if a.has(w) && b.has(w) {
			return true
		}
	}
	return false
}

// popcount reports the number of windings set, useful for diagnostics.
func (w windingSet) popcount() int {
	n := 0
	for _, word := range w.words {
		n += bits.OnesCount64(word)
	}
	return n
}
