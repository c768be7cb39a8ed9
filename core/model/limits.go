package model

import "fmt"

// LegalLimits is the federal limit set every fit and permit decision is made
// against. It is injected into each component so tests can substitute
// alternate jurisdictions without touching algorithm code.
type LegalLimits struct {
	// MaxWidth is the legal cargo width in feet.
	MaxWidth float64 `json:"max_width"`
	// MaxHeight is the legal overall height (deck + cargo) in feet.
	MaxHeight float64 `json:"max_height"`
	// MaxGrossWeight is the legal gross vehicle weight in pounds.
	MaxGrossWeight float64 `json:"max_gross_weight"`
	// TractorWeight is the nominal tractor tare used as a fixed addend in
	// gross weight estimates.
	TractorWeight float64 `json:"tractor_weight"`
}

// DefaultLegalLimits returns the federal interstate limit set.
func DefaultLegalLimits() LegalLimits {
	return LegalLimits{
		MaxWidth:       8.5,
		MaxHeight:      13.5,
		MaxGrossWeight: 80000,
		TractorWeight:  17000,
	}
}

// Validate checks the limit set is usable.
func (l LegalLimits) Validate() error {
	if l.MaxWidth <= 0 || l.MaxHeight <= 0 || l.MaxGrossWeight <= 0 {
		return fmt.Errorf("legal limits must be positive")
	}
	if l.TractorWeight < 0 {
		return fmt.Errorf("tractor weight cannot be negative")
	}
	return nil
}

// SuperloadLimits is the separate, larger threshold set past which an
// ordinary oversize or overweight permit escalates to a superload.
type SuperloadLimits struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Length      float64 `json:"length"`
	GrossWeight float64 `json:"gross_weight"`
}

// DefaultSuperloadLimits returns thresholds typical of state superload
// programs. Authoritative per-jurisdiction schedules live outside the engine.
func DefaultSuperloadLimits() SuperloadLimits {
	return SuperloadLimits{
		Width:       16,
		Height:      16,
		Length:      120,
		GrossWeight: 200000,
	}
}

// Validate checks the superload thresholds are usable.
func (s SuperloadLimits) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Length <= 0 || s.GrossWeight <= 0 {
		return fmt.Errorf("superload limits must be positive")
	}
	return nil
}
