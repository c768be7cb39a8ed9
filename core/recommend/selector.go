package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/primovera12/load-planner/core/fit"
	"github.com/primovera12/load-planner/core/model"
)

// TruckRecommendation is one scored catalog trailer for a cargo envelope.
// Recommendations are produced fresh on every call and never persisted.
type TruckRecommendation struct {
	Trailer      model.TrailerSpec
	Score        int
	Fit          fit.FitAnalysis
	Permits      []fit.PermitRequirement
	Reason       string
	Warnings     []string
	IsBestChoice bool
}

// Selector ranks catalog trailers against a cargo envelope using weighted
// penalties and bonuses. All weights are named fields so alternate scoring
// policies can be tuned without touching the algorithm.
type Selector struct {
	Analyzer fit.Analyzer

	// NoFitPenalty applies when cargo physically will not fit the deck or
	// exceeds the trailer's own capacity.
	NoFitPenalty float64
	// HeightRate/HeightCap penalize each foot over legal height, capped.
	HeightRate float64
	HeightCap  float64
	// WidthRate/WidthCap penalize each foot over legal width, capped.
	WidthRate float64
	WidthCap  float64
	// WeightCap bounds the penalty taken from the overweight percentage of
	// the legal gross limit.
	WeightCap float64
	// OverkillClearance is the height clearance past which a trailer is
	// considered more deck than this cargo needs.
	OverkillClearance float64
	OverkillPenalty   float64
	// PermitPenalty applies per required permit.
	PermitPenalty float64
	// TightFitBonus rewards a height clearance within [0,1] ft.
	TightFitBonus float64
	// DriveOnBonus rewards drive-on decks when the cargo description matches
	// EquipmentKeywords.
	DriveOnBonus      float64
	EquipmentKeywords []string
}

// NewSelector returns a Selector with the standard scoring weights.
func NewSelector() Selector {
	return Selector{
		Analyzer:          fit.NewAnalyzer(),
		NoFitPenalty:      50,
		HeightRate:        10,
		HeightCap:         40,
		WidthRate:         5,
		WidthCap:          25,
		WeightCap:         30,
		OverkillClearance: 3,
		OverkillPenalty:   10,
		PermitPenalty:     5,
		TightFitBonus:     5,
		DriveOnBonus:      10,
		EquipmentKeywords: []string{"excavator", "dozer", "loader", "tractor", "tracked"},
	}
}

// SelectTrucks scores every catalog trailer and returns the list sorted by
// score descending. The highest-scoring entry is flagged as the best choice;
// score ties resolve to the earlier catalog entry so output is deterministic.
// An empty catalog yields an empty list.
func (s Selector) SelectTrucks(cargo model.CargoEnvelope, catalog []model.TrailerSpec) []TruckRecommendation {
	recs := make([]TruckRecommendation, 0, len(catalog))
	for _, trailer := range catalog {
		recs = append(recs, s.evaluate(cargo, trailer))
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > 0 {
		recs[0].IsBestChoice = true
	}
	return recs
}

// LegalTrucks returns only the trailers that can carry the cargo without any
// permit: a physical fit with no legal dimension exceeded.
func (s Selector) LegalTrucks(cargo model.CargoEnvelope, catalog []model.TrailerSpec) []TruckRecommendation {
	var legal []TruckRecommendation
	for _, rec := range s.SelectTrucks(cargo, catalog) {
		if rec.Fit.Fits && rec.Fit.IsLegal {
			legal = append(legal, rec)
		}
	}
	return legal
}

// BestTruck returns the top-ranked recommendation. The second return is false
// when the catalog is empty.
func (s Selector) BestTruck(cargo model.CargoEnvelope, catalog []model.TrailerSpec) (TruckRecommendation, bool) {
	recs := s.SelectTrucks(cargo, catalog)
	if len(recs) == 0 {
		return TruckRecommendation{}, false
	}
	return recs[0], true
}

// CanTransportLegally reports whether any catalog trailer carries the cargo
// without permits.
func (s Selector) CanTransportLegally(cargo model.CargoEnvelope, catalog []model.TrailerSpec) bool {
	return len(s.LegalTrucks(cargo, catalog)) > 0
}

func (s Selector) evaluate(cargo model.CargoEnvelope, trailer model.TrailerSpec) TruckRecommendation {
	f := s.Analyzer.AnalyzeFit(cargo, trailer)
	permits := s.Analyzer.DeterminePermits(cargo, f)

	score := 100.0
	var warnings []string
	var notes []string

	if !f.Fits {
		score -= s.NoFitPenalty
		warnings = append(warnings, "cargo exceeds this trailer's deck or weight capacity")
	}
	if over := f.TotalHeight - s.Analyzer.Limits.MaxHeight; over > 0 {
		score -= math.Min(s.HeightCap, s.HeightRate*over)
		warnings = append(warnings, fmt.Sprintf("%.1f ft over legal height", over))
	}
	if over := cargo.Width - s.Analyzer.Limits.MaxWidth; over > 0 {
		score -= math.Min(s.WidthCap, s.WidthRate*over)
		warnings = append(warnings, fmt.Sprintf("%.1f ft over legal width", over))
	}
	if over := f.TotalWeight - s.Analyzer.Limits.MaxGrossWeight; over > 0 {
		pct := over / s.Analyzer.Limits.MaxGrossWeight * 100
		score -= math.Min(s.WeightCap, pct)
		warnings = append(warnings, fmt.Sprintf("%.0f lb over legal gross weight", over))
	}
	if f.HeightClearance > s.OverkillClearance {
		score -= s.OverkillPenalty
		notes = append(notes, "more deck clearance than this cargo needs")
	}
	score -= float64(len(permits)) * s.PermitPenalty
	if f.HeightClearance >= 0 && f.HeightClearance <= 1 {
		score += s.TightFitBonus
		notes = append(notes, "ideal height fit")
	}
	if trailer.LoadingMethod == model.LoadDriveOn && s.matchesEquipment(cargo.Description) {
		score += s.DriveOnBonus
		notes = append(notes, "drive-on loading suits this equipment")
	}

	score = math.Min(100, math.Max(0, score))

	return TruckRecommendation{
		Trailer:  trailer,
		Score:    int(math.Round(score)),
		Fit:      f,
		Permits:  permits,
		Reason:   buildReason(f, permits, notes),
		Warnings: warnings,
	}
}

func (s Selector) matchesEquipment(description string) bool {
	desc := strings.ToLower(description)
	for _, kw := range s.EquipmentKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

func buildReason(f fit.FitAnalysis, permits []fit.PermitRequirement, notes []string) string {
	var parts []string
	switch {
	case f.Fits && f.IsLegal:
		parts = append(parts, "fits within legal limits")
	case f.Fits:
		parts = append(parts, fmt.Sprintf("fits the deck but needs %d permit(s)", len(permits)))
	default:
		parts = append(parts, "does not fit this trailer")
	}
	parts = append(parts, notes...)
	return strings.Join(parts, "; ")
}
