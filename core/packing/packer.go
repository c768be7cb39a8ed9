package packing

import (
	"fmt"
	"math"
	"sort"

	"github.com/primovera12/load-planner/core/model"
)

// Options controls the placement heuristic. Every knob is an explicit field
// with a documented default; there are no dynamically-keyed option bags.
type Options struct {
	// PrioritizeWeight sorts candidates heaviest-first instead of by
	// footprint area.
	PrioritizeWeight bool `json:"prioritize_weight"`
	// AllowRotation permits a 90-degree retry when the unrotated footprint
	// finds no position.
	AllowRotation bool `json:"allow_rotation"`
	// OptimizeForBalance prefers, among valid positions, the one keeping the
	// running center of gravity closest to the deck midpoint.
	OptimizeForBalance bool `json:"optimize_for_balance"`
}

// DefaultOptions returns the options used when the caller has no preference.
func DefaultOptions() Options {
	return Options{AllowRotation: true}
}

// Placement is one unit fixed on the deck. X is measured along the deck
// length from the front, Z across the width from the driver side. Length and
// Width are the unrotated dimensions; Rotated swaps them on the deck.
type Placement struct {
	ItemID      string
	Description string
	Length      float64
	Width       float64
	Weight      float64
	X           float64
	Z           float64
	Rotated     bool
}

// EffectiveLength is the extent along the deck after rotation.
func (p Placement) EffectiveLength() float64 {
	if p.Rotated {
		return p.Width
	}
	return p.Length
}

// EffectiveWidth is the extent across the deck after rotation.
func (p Placement) EffectiveWidth() float64 {
	if p.Rotated {
		return p.Length
	}
	return p.Width
}

// CenterX is the longitudinal center of the placed unit.
func (p Placement) CenterX() float64 { return p.X + p.EffectiveLength()/2 }

// CenterZ is the lateral center of the placed unit.
func (p Placement) CenterZ() float64 { return p.Z + p.EffectiveWidth()/2 }

// Overlaps reports whether two placements occupy intersecting deck area.
func (p Placement) Overlaps(o Placement) bool {
	return p.X < o.X+o.EffectiveLength()-snapTol &&
		p.X+p.EffectiveLength() > o.X+snapTol &&
		p.Z < o.Z+o.EffectiveWidth()-snapTol &&
		p.Z+p.EffectiveWidth() > o.Z+snapTol
}

// UnplacedItem is a unit that could not be placed, with the reason.
type UnplacedItem struct {
	ItemID      string
	Description string
	Reason      string
}

// Stats summarizes an optimization run.
type Stats struct {
	ItemsPlaced          int
	ItemsRequested       int
	WeightUtilizationPct float64
	SpaceUtilizationPct  float64
}

// OptimizationResult is the full outcome of packing one trailer. Every input
// unit appears either in Placements or in Unplaced, never both, never
// neither.
type OptimizationResult struct {
	Placements []Placement
	Unplaced   []UnplacedItem
	Stats      Stats
	Warnings   []string
}

// Packer places cargo onto a single trailer deck. It is stateless between
// calls and safe for concurrent use.
type Packer struct {
	Options Options
}

// New returns a Packer with the given options.
func New(opts Options) *Packer {
	return &Packer{Options: opts}
}

// OptimizeLoad expands the cargo list into units, orders them, and greedily
// places each on the deck front-to-back without overlap, respecting the
// trailer's cargo weight budget. Units that find no position are reported,
// not dropped.
func (p *Packer) OptimizeLoad(items []model.CargoItem, trailer model.TrailerSpec) OptimizationResult {
	units, warnings := model.ExpandUnits(items)
	res := OptimizationResult{Warnings: warnings}
	res.Stats.ItemsRequested = len(units)

	sorted := make([]model.CargoUnit, len(units))
	copy(sorted, units)
	if p.Options.PrioritizeWeight {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Weight > sorted[j].Weight
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Footprint() > sorted[j].Footprint()
		})
	}

	deck := newFreeDeck(trailer.DeckLength, trailer.DeckWidth)
	var placedWeight, placedArea, moment float64

	for _, u := range sorted {
		if placedWeight+u.Weight > trailer.MaxCargoWeight+snapTol {
			res.reject(u, "exceeds remaining weight capacity")
			continue
		}
		pl, ok := p.position(deck, u, trailer, placedWeight, moment)
		if !ok {
			res.reject(u, "no deck space left")
			continue
		}
		res.Placements = append(res.Placements, pl)
		placedWeight += u.Weight
		placedArea += u.Footprint()
		moment += u.Weight * pl.CenterX()
	}

	res.Stats.ItemsPlaced = len(res.Placements)
	if trailer.MaxCargoWeight > 0 {
		res.Stats.WeightUtilizationPct = placedWeight / trailer.MaxCargoWeight * 100
	}
	if area := trailer.DeckArea(); area > 0 {
		res.Stats.SpaceUtilizationPct = placedArea / area * 100
	}
	return res
}

func (r *OptimizationResult) reject(u model.CargoUnit, reason string) {
	r.Unplaced = append(r.Unplaced, UnplacedItem{
		ItemID:      u.UnitID,
		Description: u.Description,
		Reason:      reason,
	})
	r.Warnings = append(r.Warnings, fmt.Sprintf("could not place %s: %s", u.UnitID, reason))
}

// position finds a deck position for the unit, trying the unrotated
// footprint first and the rotated one only when nothing fits.
func (p *Packer) position(deck *freeDeck, u model.CargoUnit, trailer model.TrailerSpec, placedWeight, moment float64) (Placement, bool) {
	if pl, ok := p.tryOrientation(deck, u, trailer, false, placedWeight, moment); ok {
		return pl, true
	}
	if p.Options.AllowRotation && u.Length != u.Width {
		return p.tryOrientation(deck, u, trailer, true, placedWeight, moment)
	}
	return Placement{}, false
}

func (p *Packer) tryOrientation(deck *freeDeck, u model.CargoUnit, trailer model.TrailerSpec, rotated bool, placedWeight, moment float64) (Placement, bool) {
	l, w := u.Length, u.Width
	if rotated {
		l, w = w, l
	}
	cands := deck.candidates(l, w)
	if len(cands) == 0 {
		return Placement{}, false
	}

	chosen := cands[0]
	if p.Options.OptimizeForBalance && len(cands) > 1 {
		mid := trailer.DeckLength / 2
		best := math.Inf(1)
		for _, c := range cands {
			cg := (moment + u.Weight*(c.x+l/2)) / (placedWeight + u.Weight)
			if off := math.Abs(cg - mid); off < best-snapTol {
				best = off
				chosen = c
			}
		}
	}

	deck.place(chosen, l, w)
	return Placement{
		ItemID:      u.UnitID,
		Description: u.Description,
		Length:      u.Length,
		Width:       u.Width,
		Weight:      u.Weight,
		X:           chosen.x,
		Z:           chosen.z,
		Rotated:     rotated,
	}, true
}
