// Package catalog holds the read-only trailer reference data the planning
// components run against. The built-in catalog covers the common open-deck
// fleet; deployments override or extend it from configuration.
package catalog

import "github.com/primovera12/load-planner/core/model"

// Standard returns the built-in trailer catalog in a fixed order. Ranking
// ties resolve by catalog order, so this order is part of the engine's
// deterministic behavior.
func Standard() []model.TrailerSpec {
	return []model.TrailerSpec{
		{
			ID:             "flatbed-48",
			Name:           "48' Flatbed",
			Category:       model.CategoryFlatbed,
			DeckLength:     48,
			DeckWidth:      8.5,
			DeckHeight:     5.0,
			MaxCargoWeight: 48000,
			TareWeight:     10000,
			LoadingMethod:  model.LoadForklift,
		},
		{
			ID:             "flatbed-53",
			Name:           "53' Flatbed",
			Category:       model.CategoryFlatbed,
			DeckLength:     53,
			DeckWidth:      8.5,
			DeckHeight:     5.0,
			MaxCargoWeight: 45000,
			TareWeight:     11000,
			LoadingMethod:  model.LoadForklift,
		},
		{
			ID:             "stepdeck-48",
			Name:           "48' Step Deck",
			Category:       model.CategoryStepDeck,
			DeckLength:     48,
			DeckWidth:      8.5,
			DeckHeight:     3.5,
			MaxCargoWeight: 48000,
			TareWeight:     11500,
			LoadingMethod:  model.LoadForklift,
		},
		{
			ID:             "stepdeck-53",
			Name:           "53' Step Deck",
			Category:       model.CategoryStepDeck,
			DeckLength:     53,
			DeckWidth:      8.5,
			DeckHeight:     3.5,
			MaxCargoWeight: 45000,
			TareWeight:     12000,
			LoadingMethod:  model.LoadForklift,
		},
		{
			ID:             "rgn-29",
			Name:           "29' Removable Gooseneck",
			Category:       model.CategoryRGN,
			DeckLength:     29,
			DeckWidth:      8.5,
			DeckHeight:     2.0,
			MaxCargoWeight: 42000,
			TareWeight:     15000,
			LoadingMethod:  model.LoadDriveOn,
		},
		{
			ID:             "lowboy-24",
			Name:           "24' Lowboy",
			Category:       model.CategoryLowboy,
			DeckLength:     24,
			DeckWidth:      8.5,
			DeckHeight:     1.5,
			MaxCargoWeight: 40000,
			TareWeight:     15500,
			LoadingMethod:  model.LoadDriveOn,
		},
		{
			ID:             "double-drop-29",
			Name:           "29' Double Drop",
			Category:       model.CategoryDoubleDrop,
			DeckLength:     29,
			DeckWidth:      8.5,
			DeckHeight:     2.0,
			MaxCargoWeight: 41000,
			TareWeight:     14500,
			LoadingMethod:  model.LoadCrane,
		},
	}
}

// ByID looks a trailer up in the given catalog.
func ByID(specs []model.TrailerSpec, id string) (model.TrailerSpec, bool) {
	for _, s := range specs {
		if s.ID == id {
			return s, true
		}
	}
	return model.TrailerSpec{}, false
}

// Merge overlays overrides onto a base catalog by ID: matching IDs replace
// the base entry in place, unknown IDs append in their given order.
func Merge(base, overrides []model.TrailerSpec) []model.TrailerSpec {
	merged := make([]model.TrailerSpec, len(base))
	copy(merged, base)
	for _, o := range overrides {
		replaced := false
		for i := range merged {
			if merged[i].ID == o.ID {
				merged[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, o)
		}
	}
	return merged
}
