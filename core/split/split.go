package split

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/primovera12/load-planner/core/model"
)

// packingDerate discounts the deck area the splitter budgets per trailer:
// this stage reasons about aggregate area, not exact geometry, and real
// rectangle packing never reaches 100% coverage.
const packingDerate = 0.8

// TrailerLoad is the set of cargo units assigned to one physical trailer
// instance.
type TrailerLoad struct {
	ID             string
	Items          []model.CargoUnit
	TotalWeight    float64
	TotalFootprint float64
}

// Estimate is the cheap lower bound on trailers needed, used for fast
// previews before running the full split.
type Estimate struct {
	ByWeight int
	BySpace  int
	Count    int
}

// SplitLoad partitions a cargo list across as many instances of one trailer
// type as needed, first-fit-decreasing on weight. A unit goes to the first
// opened trailer with both weight and derated-area headroom; otherwise a new
// trailer is opened. A unit too big for any trailer still gets its own load —
// the caller surfaces that condition through the fit analyzer. Warnings from
// skipped invalid items are returned alongside the loads.
func SplitLoad(items []model.CargoItem, trailer model.TrailerSpec) ([]TrailerLoad, []string) {
	units, warnings := model.ExpandUnits(items)

	sorted := make([]model.CargoUnit, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	maxWeight := trailer.MaxCargoWeight
	maxArea := trailer.DeckArea() * packingDerate

	var loads []TrailerLoad
	for _, u := range sorted {
		idx := -1
		for i := range loads {
			if loads[i].TotalWeight+u.Weight <= maxWeight &&
				loads[i].TotalFootprint+u.Footprint() <= maxArea {
				idx = i
				break
			}
		}
		if idx < 0 {
			loads = append(loads, TrailerLoad{ID: uuid.NewString()})
			idx = len(loads) - 1
		}
		loads[idx].Items = append(loads[idx].Items, u)
		loads[idx].TotalWeight += u.Weight
		loads[idx].TotalFootprint += u.Footprint()
	}
	return loads, warnings
}

// EstimateTrailersNeeded returns the lower bound max(ceil by weight, ceil by
// full deck area). The full split may need more trailers than this estimate
// because first-fit-decreasing is a heuristic.
func EstimateTrailersNeeded(items []model.CargoItem, trailer model.TrailerSpec) Estimate {
	units, _ := model.ExpandUnits(items)
	if len(units) == 0 {
		return Estimate{}
	}

	var totalWeight, totalFootprint float64
	for _, u := range units {
		totalWeight += u.Weight
		totalFootprint += u.Footprint()
	}

	var est Estimate
	if trailer.MaxCargoWeight > 0 {
		est.ByWeight = int(math.Ceil(totalWeight / trailer.MaxCargoWeight))
	}
	if area := trailer.DeckArea(); area > 0 {
		est.BySpace = int(math.Ceil(totalFootprint / area))
	}
	est.Count = est.ByWeight
	if est.BySpace > est.Count {
		est.Count = est.BySpace
	}
	return est
}
