package metrics

import "time"

// PlanEvent records one single-trailer optimization run.
type PlanEvent struct {
	PlanID               string
	TrailerID            string
	ItemsRequested       int
	ItemsPlaced          int
	WeightUtilizationPct float64
	SpaceUtilizationPct  float64
	Duration             time.Duration
	Time                 time.Time
}

// RecommendationEvent records one scored trailer from a ranking run.
type RecommendationEvent struct {
	PlanID    string
	TrailerID string
	Score     int
	Best      bool
	Legal     bool
	Permits   int
	Time      time.Time
}

// SplitEvent records one multi-trailer split.
type SplitEvent struct {
	PlanID    string
	TrailerID string
	Units     int
	Trailers  int
	Estimated int
	Time      time.Time
}

// Sink records planning events for observability purposes. The core engine
// never records anything itself; only the app layer feeds sinks.
type Sink interface {
	RecordPlan(ev PlanEvent) error
	RecordRecommendations(evs []RecommendationEvent) error
	RecordSplit(ev SplitEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlan(PlanEvent) error                        { return nil }
func (NopSink) RecordRecommendations([]RecommendationEvent) error { return nil }
func (NopSink) RecordSplit(SplitEvent) error                      { return nil }

// MultiSink fans events out to multiple sinks, returning the first error
// encountered.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

func (m *MultiSink) RecordPlan(ev PlanEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlan(ev); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiSink) RecordRecommendations(evs []RecommendationEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRecommendations(evs); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiSink) RecordSplit(ev SplitEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordSplit(ev); err != nil {
			return err
		}
	}
	return nil
}
