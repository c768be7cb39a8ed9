package packing

import "sort"

// snapTol absorbs floating-point noise when comparing deck coordinates.
const snapTol = 1e-6

// deckRect is an axis-aligned region of the deck. x runs along the deck
// length from the front of the trailer, z across the width from the driver
// side; l and w extend rearward and across.
type deckRect struct {
	x, z, l, w float64
}

func (r deckRect) area() float64 { return r.l * r.w }

// freeDeck tracks the unoccupied regions of a trailer deck as maximal
// rectangles: carving out a footprint splits every overlapping free region
// into the strips around it, so candidate positions stay as large as
// possible and rotated retries can use space spanning earlier placements.
type freeDeck struct {
	free []deckRect
}

func newFreeDeck(length, width float64) *freeDeck {
	if length <= 0 || width <= 0 {
		return &freeDeck{}
	}
	return &freeDeck{free: []deckRect{{0, 0, length, width}}}
}

// candidates returns the free regions that can hold an l×w footprint, sorted
// front-to-back then across the deck. The ordering fixes the scan order so
// identical input always packs identically.
func (d *freeDeck) candidates(l, w float64) []deckRect {
	var out []deckRect
	for _, r := range d.free {
		if l <= r.l+snapTol && w <= r.w+snapTol {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].x != out[j].x {
			return out[i].x < out[j].x
		}
		return out[i].z < out[j].z
	})
	return out
}

// place carves an l×w footprint anchored at the front-left corner of the
// given region and rebuilds the free list around it.
func (d *freeDeck) place(at deckRect, l, w float64) {
	used := deckRect{x: at.x, z: at.z, l: l, w: w}
	var next []deckRect
	for _, r := range d.free {
		if !overlaps(r, used) {
			next = append(next, r)
			continue
		}
		if used.x > r.x+snapTol {
			next = append(next, deckRect{x: r.x, z: r.z, l: used.x - r.x, w: r.w})
		}
		if used.x+used.l < r.x+r.l-snapTol {
			next = append(next, deckRect{x: used.x + used.l, z: r.z, l: r.x + r.l - (used.x + used.l), w: r.w})
		}
		if used.z > r.z+snapTol {
			next = append(next, deckRect{x: r.x, z: r.z, l: r.l, w: used.z - r.z})
		}
		if used.z+used.w < r.z+r.w-snapTol {
			next = append(next, deckRect{x: r.x, z: used.z + used.w, l: r.l, w: r.z + r.w - (used.z + used.w)})
		}
	}
	d.free = pruneContained(next)
}

// overlaps reports a strict overlap; touching edges do not count.
func overlaps(a, b deckRect) bool {
	return a.x < b.x+b.l-snapTol && a.x+a.l > b.x+snapTol &&
		a.z < b.z+b.w-snapTol && a.z+a.w > b.z+snapTol
}

// containsRect reports whether outer fully contains inner.
func containsRect(outer, inner deckRect) bool {
	return outer.x <= inner.x+snapTol && outer.z <= inner.z+snapTol &&
		outer.x+outer.l >= inner.x+inner.l-snapTol &&
		outer.z+outer.w >= inner.z+inner.w-snapTol
}

// pruneContained drops regions fully contained in another, keeping the first
// of any duplicates so the free list stays deterministic.
func pruneContained(rects []deckRect) []deckRect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]deckRect, 0, len(rects))
	for i, r := range rects {
		contained := false
		for j, o := range rects {
			if i == j || !containsRect(o, r) {
				continue
			}
			if o.area() > r.area()+snapTol || j < i {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, r)
		}
	}
	return kept
}
