package packing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/primovera12/load-planner/core/model"
)

// LoadingStep is one entry in the physical loading sequence.
type LoadingStep struct {
	Step        int
	ItemID      string
	Description string
	Position    string
	Weight      float64
	Rotated     bool
}

// String renders the step for printable loading instructions.
func (s LoadingStep) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s — %s (%.0f lb", s.Step, s.ItemID, s.Position, s.Weight)
	if s.Rotated {
		b.WriteString(", rotated 90°")
	}
	b.WriteString(")")
	return b.String()
}

// GenerateLoadingInstructions derives the loading sequence from a packing
// result: rearmost placements first so earlier steps are never blocked by
// later ones, driver side before passenger side on equal depth.
func GenerateLoadingInstructions(result OptimizationResult, trailer model.TrailerSpec) []LoadingStep {
	ordered := make([]Placement, len(result.Placements))
	copy(ordered, result.Placements)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].X != ordered[j].X {
			return ordered[i].X > ordered[j].X
		}
		return ordered[i].Z < ordered[j].Z
	})

	steps := make([]LoadingStep, 0, len(ordered))
	for i, p := range ordered {
		steps = append(steps, LoadingStep{
			Step:        i + 1,
			ItemID:      p.ItemID,
			Description: p.Description,
			Position:    describePosition(p, trailer),
			Weight:      p.Weight,
			Rotated:     p.Rotated,
		})
	}
	return steps
}

// describePosition renders a placement relative to the deck center, the way
// a loading crew reads it.
func describePosition(p Placement, trailer model.TrailerSpec) string {
	const tol = 0.05

	lon := "at deck center"
	if dx := p.CenterX() - trailer.DeckLength/2; dx > tol {
		lon = fmt.Sprintf("%.1f' toward rear", dx)
	} else if dx < -tol {
		lon = fmt.Sprintf("%.1f' toward front", math.Abs(dx))
	}

	lat := "on centerline"
	if dz := p.CenterZ() - trailer.DeckWidth/2; dz > tol {
		lat = fmt.Sprintf("%.1f' right of center", dz)
	} else if dz < -tol {
		lat = fmt.Sprintf("%.1f' left of center", math.Abs(dz))
	}

	return lon + ", " + lat
}
