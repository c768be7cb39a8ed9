package fit

import (
	"fmt"

	"github.com/primovera12/load-planner/core/model"
)

// PermitType identifies the class of permit a shipment requires.
type PermitType string

const (
	PermitOversizeWidth  PermitType = "OVERSIZE_WIDTH"
	PermitOversizeHeight PermitType = "OVERSIZE_HEIGHT"
	PermitOversizeLength PermitType = "OVERSIZE_LENGTH"
	PermitOverweight     PermitType = "OVERWEIGHT"
	PermitSuperload      PermitType = "SUPERLOAD"
)

// PermitRequirement is one permit implied by a cargo/trailer pairing. The
// cost is a flat planning estimate, not an authoritative fee.
type PermitRequirement struct {
	Type          PermitType
	Reason        string
	EstimatedCost float64
}

// FitAnalysis is the geometric and weight feasibility of one cargo envelope
// on one trailer. Fits is deck-relative; IsLegal is limit-relative.
type FitAnalysis struct {
	TotalHeight float64
	TotalWeight float64

	ExceedsHeight bool
	ExceedsWidth  bool
	ExceedsWeight bool
	ExceedsLength bool

	HeightClearance float64
	WidthClearance  float64
	WeightClearance float64
	LengthClearance float64

	Fits    bool
	IsLegal bool
}

// PermitFeeSchedule holds the flat estimate tiers used when pricing permit
// requirements. Per-jurisdiction fee tables are an external collaborator.
type PermitFeeSchedule struct {
	Oversize   float64 `json:"oversize"`
	Overweight float64 `json:"overweight"`
	Superload  float64 `json:"superload"`
}

// DefaultPermitFees returns the planning-estimate tiers.
func DefaultPermitFees() PermitFeeSchedule {
	return PermitFeeSchedule{Oversize: 100, Overweight: 150, Superload: 750}
}

// Analyzer evaluates cargo envelopes against trailer specs and legal limits.
// The zero value is not useful; build one with NewAnalyzer or inject limit
// sets explicitly.
type Analyzer struct {
	Limits    model.LegalLimits
	Superload model.SuperloadLimits
	Fees      PermitFeeSchedule
}

// NewAnalyzer returns an Analyzer configured with the federal defaults.
func NewAnalyzer() Analyzer {
	return Analyzer{
		Limits:    model.DefaultLegalLimits(),
		Superload: model.DefaultSuperloadLimits(),
		Fees:      DefaultPermitFees(),
	}
}

// AnalyzeFit computes feasibility for one cargo envelope on one trailer.
// It always returns a value; zero-dimension cargo simply yields large
// clearances.
func (a Analyzer) AnalyzeFit(cargo model.CargoEnvelope, trailer model.TrailerSpec) FitAnalysis {
	f := FitAnalysis{
		TotalHeight: cargo.Height + trailer.DeckHeight,
		TotalWeight: cargo.Weight + trailer.TareWeight + a.Limits.TractorWeight,
	}

	f.ExceedsHeight = f.TotalHeight > a.Limits.MaxHeight
	f.ExceedsWidth = cargo.Width > a.Limits.MaxWidth
	f.ExceedsWeight = f.TotalWeight > a.Limits.MaxGrossWeight
	f.ExceedsLength = cargo.Length > trailer.DeckLength

	f.HeightClearance = a.Limits.MaxHeight - f.TotalHeight
	f.WidthClearance = a.Limits.MaxWidth - cargo.Width
	f.WeightClearance = a.Limits.MaxGrossWeight - f.TotalWeight
	f.LengthClearance = trailer.DeckLength - cargo.Length

	f.Fits = cargo.Length <= trailer.DeckLength &&
		cargo.Width <= trailer.DeckWidth &&
		cargo.Weight <= trailer.MaxCargoWeight
	f.IsLegal = !f.ExceedsHeight && !f.ExceedsWidth && !f.ExceedsWeight && !f.ExceedsLength

	return f
}

// DeterminePermits lists the permits implied by a fit analysis, one per
// violated legal dimension. A violation past the superload threshold
// escalates to a SUPERLOAD requirement instead.
func (a Analyzer) DeterminePermits(cargo model.CargoEnvelope, f FitAnalysis) []PermitRequirement {
	var permits []PermitRequirement

	if f.ExceedsWidth {
		permits = append(permits, a.permitFor(
			PermitOversizeWidth,
			cargo.Width > a.Superload.Width,
			fmt.Sprintf("cargo width %.1f ft exceeds %.1f ft legal limit", cargo.Width, a.Limits.MaxWidth),
		))
	}
	if f.ExceedsHeight {
		permits = append(permits, a.permitFor(
			PermitOversizeHeight,
			f.TotalHeight > a.Superload.Height,
			fmt.Sprintf("loaded height %.1f ft exceeds %.1f ft legal limit", f.TotalHeight, a.Limits.MaxHeight),
		))
	}
	if f.ExceedsLength {
		permits = append(permits, a.permitFor(
			PermitOversizeLength,
			cargo.Length > a.Superload.Length,
			fmt.Sprintf("cargo length %.1f ft exceeds the %.1f ft deck", cargo.Length, f.LengthClearance+cargo.Length),
		))
	}
	if f.ExceedsWeight {
		p := a.permitFor(
			PermitOverweight,
			f.TotalWeight > a.Superload.GrossWeight,
			fmt.Sprintf("gross weight %.0f lb exceeds %.0f lb legal limit", f.TotalWeight, a.Limits.MaxGrossWeight),
		)
		if p.Type == PermitOverweight {
			p.EstimatedCost = a.Fees.Overweight
		}
		permits = append(permits, p)
	}

	return permits
}

func (a Analyzer) permitFor(t PermitType, superload bool, reason string) PermitRequirement {
	if superload {
		return PermitRequirement{
			Type:          PermitSuperload,
			Reason:        reason + "; exceeds superload threshold",
			EstimatedCost: a.Fees.Superload,
		}
	}
	return PermitRequirement{Type: t, Reason: reason, EstimatedCost: a.Fees.Oversize}
}
