package model

import "fmt"

// CargoItem is one line of cargo as supplied by the caller. Dimensions are in
// feet and weight in pounds; unit normalization happens upstream of the
// engine. Quantity is expanded into individual units before any packing or
// splitting decision is made.
type CargoItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	Stackable   bool    `json:"stackable"`
	Priority    bool    `json:"priority"`
}

// Footprint returns the deck area one unit occupies, in square feet.
func (c CargoItem) Footprint() float64 { return c.Length * c.Width }

// Validate checks that the item can be reasoned about at all.
func (c CargoItem) Validate() error {
	if c.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	if c.Length <= 0 || c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("dimensions must be positive")
	}
	if c.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	return nil
}

// Label returns a human-readable handle for warnings.
func (c CargoItem) Label() string {
	if c.ID != "" {
		return c.ID
	}
	if c.Description != "" {
		return c.Description
	}
	return "unnamed item"
}

// CargoUnit is a single physical piece produced by quantity expansion.
// OriginalIndex and UnitIndex give every ordering heuristic a stable tiebreak
// so identical input always yields identical output.
type CargoUnit struct {
	CargoItem
	UnitID        string
	OriginalIndex int
	UnitIndex     int
}

// ExpandUnits expands item quantities into individual units. Items that fail
// validation are skipped and reported in the returned warnings rather than
// aborting the batch; import wizards feed partially malformed cargo lists and
// expect the rest to be planned.
func ExpandUnits(items []CargoItem) ([]CargoUnit, []string) {
	var units []CargoUnit
	var warnings []string
	for i, it := range items {
		if err := it.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", it.Label(), err))
			continue
		}
		for q := 0; q < it.Quantity; q++ {
			unitID := it.Label()
			if it.Quantity > 1 {
				unitID = fmt.Sprintf("%s#%d", unitID, q+1)
			}
			units = append(units, CargoUnit{
				CargoItem:     it,
				UnitID:        unitID,
				OriginalIndex: i,
				UnitIndex:     q,
			})
		}
	}
	return units, warnings
}

// CargoEnvelope is the aggregate bounding envelope of a cargo set: the
// largest single dimension on each axis and the summed weight. Fit and
// permit analysis operate on the envelope, not on individual pieces.
type CargoEnvelope struct {
	Description string
	Length      float64
	Width       float64
	Height      float64
	Weight      float64
}

// EnvelopeOf aggregates a cargo list into its envelope. Weight counts every
// unit of every item; invalid items are ignored the same way ExpandUnits
// skips them.
func EnvelopeOf(items []CargoItem) CargoEnvelope {
	var env CargoEnvelope
	for _, it := range items {
		if it.Validate() != nil {
			continue
		}
		if it.Length > env.Length {
			env.Length = it.Length
		}
		if it.Width > env.Width {
			env.Width = it.Width
		}
		if it.Height > env.Height {
			env.Height = it.Height
		}
		env.Weight += it.Weight * float64(it.Quantity)
		if env.Description == "" {
			env.Description = it.Description
		}
	}
	return env
}
