package model

import "fmt"

// TrailerCategory identifies the deck style of a trailer.
type TrailerCategory string

const (
	CategoryFlatbed    TrailerCategory = "flatbed"
	CategoryStepDeck   TrailerCategory = "step-deck"
	CategoryRGN        TrailerCategory = "rgn"
	CategoryLowboy     TrailerCategory = "lowboy"
	CategoryDoubleDrop TrailerCategory = "double-drop"
)

// LoadingMethod describes how cargo gets onto the deck.
type LoadingMethod string

const (
	LoadDriveOn  LoadingMethod = "drive-on"
	LoadCrane    LoadingMethod = "crane"
	LoadForklift LoadingMethod = "forklift"
)

// TrailerSpec is a read-only trailer record from the catalog. The engine
// never mutates a spec; catalog changes require a fresh load.
type TrailerSpec struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       TrailerCategory `json:"category"`
	DeckLength     float64         `json:"deck_length"`
	DeckWidth      float64         `json:"deck_width"`
	DeckHeight     float64         `json:"deck_height"`
	MaxCargoWeight float64         `json:"max_cargo_weight"`
	TareWeight     float64         `json:"tare_weight"`
	LoadingMethod  LoadingMethod   `json:"loading_method"`
}

// DeckArea returns the usable deck surface in square feet.
func (t TrailerSpec) DeckArea() float64 { return t.DeckLength * t.DeckWidth }

// MaxLegalCargoHeight is the tallest cargo this deck can carry without an
// over-height permit under the given limits.
func (t TrailerSpec) MaxLegalCargoHeight(l LegalLimits) float64 {
	return l.MaxHeight - t.DeckHeight
}

// MaxLegalCargoWidth is the legal cargo width; deck style does not change it.
func (t TrailerSpec) MaxLegalCargoWidth(l LegalLimits) float64 {
	return l.MaxWidth
}

// Validate checks that the spec describes a usable trailer. A failing spec is
// a catalog defect, not an operational error.
func (t TrailerSpec) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("trailer id is required")
	}
	if t.DeckLength <= 0 || t.DeckWidth <= 0 {
		return fmt.Errorf("trailer %s: deck dimensions must be positive", t.ID)
	}
	if t.DeckHeight < 0 {
		return fmt.Errorf("trailer %s: deck height cannot be negative", t.ID)
	}
	if t.MaxCargoWeight <= 0 {
		return fmt.Errorf("trailer %s: max cargo weight must be positive", t.ID)
	}
	if t.TareWeight < 0 {
		return fmt.Errorf("trailer %s: tare weight cannot be negative", t.ID)
	}
	return nil
}
