package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/primovera12/load-planner/config"
	"github.com/primovera12/load-planner/core/axle"
	"github.com/primovera12/load-planner/core/catalog"
	"github.com/primovera12/load-planner/core/fit"
	"github.com/primovera12/load-planner/core/logger"
	coremetrics "github.com/primovera12/load-planner/core/metrics"
	"github.com/primovera12/load-planner/core/model"
	"github.com/primovera12/load-planner/core/packing"
	"github.com/primovera12/load-planner/core/recommend"
	"github.com/primovera12/load-planner/core/split"
	infralogger "github.com/primovera12/load-planner/infra/logger"
	inframetrics "github.com/primovera12/load-planner/infra/metrics"
)

// Service wires the planning components together with the configured
// catalog, logger and metrics sinks. The components themselves stay pure;
// all logging and metric recording happens here.
type Service struct {
	cfg      *config.Config
	catalog  []model.TrailerSpec
	selector recommend.Selector
	packer   *packing.Packer
	axles    axle.Config
	sink     coremetrics.Sink
	log      logger.Logger

	cancelMetrics context.CancelFunc
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := infralogger.New("load-planner")

	analyzer := fit.Analyzer{
		Limits:    cfg.Limits,
		Superload: cfg.Superload,
		Fees:      cfg.Permits,
	}
	selector := recommend.NewSelector()
	selector.Analyzer = analyzer

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := inframetrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, inframetrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL,
			cfg.Metrics.InfluxToken,
			cfg.Metrics.InfluxOrg,
			cfg.Metrics.InfluxBucket,
		))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = coremetrics.NewMultiSink(sinks...)
	}

	svc := &Service{
		cfg:      cfg,
		catalog:  cfg.Catalog(),
		selector: selector,
		packer:   packing.New(cfg.Packing),
		axles:    cfg.Axles,
		sink:     sink,
		log:      logg,
	}

	if cfg.Metrics.PrometheusEnabled {
		ctx, cancel := context.WithCancel(context.Background())
		svc.cancelMetrics = cancel
		go func() {
			if err := inframetrics.StartPromServer(ctx, cfg.Metrics.PrometheusPort); err != nil {
				logg.Errorf("prom server: %v", err)
			}
		}()
	}
	return svc, nil
}

// Catalog returns the effective trailer catalog.
func (s *Service) Catalog() []model.TrailerSpec { return s.catalog }

// Recommend ranks every catalog trailer for the cargo envelope.
func (s *Service) Recommend(cargo model.CargoEnvelope) []recommend.TruckRecommendation {
	planID := uuid.NewString()
	recs := s.selector.SelectTrucks(cargo, s.catalog)

	events := make([]coremetrics.RecommendationEvent, 0, len(recs))
	now := time.Now()
	for _, r := range recs {
		events = append(events, coremetrics.RecommendationEvent{
			PlanID:    planID,
			TrailerID: r.Trailer.ID,
			Score:     r.Score,
			Best:      r.IsBestChoice,
			Legal:     r.Fit.IsLegal && r.Fit.Fits,
			Permits:   len(r.Permits),
			Time:      now,
		})
	}
	if err := s.sink.RecordRecommendations(events); err != nil {
		s.log.Warnf("record recommendations: %v", err)
	}
	s.log.Debugw("ranked trailers", map[string]any{
		"plan_id":  planID,
		"trailers": len(recs),
	})
	return recs
}

// Pack places the cargo on the named trailer and computes the resulting axle
// distribution.
func (s *Service) Pack(items []model.CargoItem, trailerID string) (packing.OptimizationResult, axle.WeightDistribution, error) {
	trailer, ok := catalog.ByID(s.catalog, trailerID)
	if !ok {
		return packing.OptimizationResult{}, axle.WeightDistribution{}, fmt.Errorf("unknown trailer %q", trailerID)
	}

	planID := uuid.NewString()
	start := time.Now()
	result := s.packer.OptimizeLoad(items, trailer)
	dist := s.axles.Distribute(
		axle.LoadsFromPlacements(result.Placements),
		trailer.DeckLength,
		s.cfg.Limits.TractorWeight,
		trailer.TareWeight,
	)

	if err := s.sink.RecordPlan(coremetrics.PlanEvent{
		PlanID:               planID,
		TrailerID:            trailer.ID,
		ItemsRequested:       result.Stats.ItemsRequested,
		ItemsPlaced:          result.Stats.ItemsPlaced,
		WeightUtilizationPct: result.Stats.WeightUtilizationPct,
		SpaceUtilizationPct:  result.Stats.SpaceUtilizationPct,
		Duration:             time.Since(start),
		Time:                 start,
	}); err != nil {
		s.log.Warnf("record plan: %v", err)
	}
	s.log.Infof("packed %d/%d units on %s", result.Stats.ItemsPlaced, result.Stats.ItemsRequested, trailer.ID)
	return result, dist, nil
}

// Instructions renders the loading sequence for a packing result.
func (s *Service) Instructions(result packing.OptimizationResult, trailerID string) ([]packing.LoadingStep, error) {
	trailer, ok := catalog.ByID(s.catalog, trailerID)
	if !ok {
		return nil, fmt.Errorf("unknown trailer %q", trailerID)
	}
	return packing.GenerateLoadingInstructions(result, trailer), nil
}

// Split partitions the cargo across instances of the named trailer type and
// returns the cheap estimate alongside.
func (s *Service) Split(items []model.CargoItem, trailerID string) ([]split.TrailerLoad, split.Estimate, []string, error) {
	trailer, ok := catalog.ByID(s.catalog, trailerID)
	if !ok {
		return nil, split.Estimate{}, nil, fmt.Errorf("unknown trailer %q", trailerID)
	}

	planID := uuid.NewString()
	estimate := split.EstimateTrailersNeeded(items, trailer)
	loads, warnings := split.SplitLoad(items, trailer)

	units := 0
	for _, l := range loads {
		units += len(l.Items)
	}
	if err := s.sink.RecordSplit(coremetrics.SplitEvent{
		PlanID:    planID,
		TrailerID: trailer.ID,
		Units:     units,
		Trailers:  len(loads),
		Estimated: estimate.Count,
		Time:      time.Now(),
	}); err != nil {
		s.log.Warnf("record split: %v", err)
	}
	s.log.Infof("split %d units across %d %s trailers", units, len(loads), trailer.ID)
	return loads, estimate, warnings, nil
}

// Close stops the metrics endpoint if one was started.
func (s *Service) Close() error {
	if s.cancelMetrics != nil {
		s.cancelMetrics()
	}
	return nil
}
