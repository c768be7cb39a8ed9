package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/primovera12/load-planner/core/metrics"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	plans           *prometheus.CounterVec
	unplaced        *prometheus.CounterVec
	utilization     *prometheus.HistogramVec
	recommendations *prometheus.CounterVec
	splitTrailers   prometheus.Histogram
}

// NewPromSink registers planning metrics on the provided registerer. If reg
// is nil, the default registerer is used. Already-registered collectors are
// reused so repeated construction is safe.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	s := &PromSink{
		plans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loadplan_runs_total",
			Help: "Total number of single-trailer optimization runs",
		}, []string{"trailer_id"}),
		unplaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loadplan_items_unplaced_total",
			Help: "Cargo units that could not be placed",
		}, []string{"trailer_id"}),
		utilization: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loadplan_utilization_percent",
			Help:    "Weight and deck space utilization per run",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}, []string{"trailer_id", "kind"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loadplan_recommendations_total",
			Help: "Trailer recommendations produced by the scorer",
		}, []string{"trailer_id", "best", "legal"}),
		splitTrailers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "loadplan_split_trailers",
			Help:    "Trailer instances opened per multi-trailer split",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
	}

	if err := register(reg, &s.plans); err != nil {
		return nil, err
	}
	if err := register(reg, &s.unplaced); err != nil {
		return nil, err
	}
	if err := registerHist(reg, &s.utilization); err != nil {
		return nil, err
	}
	if err := register(reg, &s.recommendations); err != nil {
		return nil, err
	}
	if err := reg.Register(s.splitTrailers); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.splitTrailers = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	return s, nil
}

func register(reg prometheus.Registerer, c **prometheus.CounterVec) error {
	if err := reg.Register(*c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			*c = are.ExistingCollector.(*prometheus.CounterVec)
			return nil
		}
		return err
	}
	return nil
}

func registerHist(reg prometheus.Registerer, h **prometheus.HistogramVec) error {
	if err := reg.Register(*h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			*h = are.ExistingCollector.(*prometheus.HistogramVec)
			return nil
		}
		return err
	}
	return nil
}

// RecordPlan counts the run and observes its utilization.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	s.plans.WithLabelValues(ev.TrailerID).Inc()
	if n := ev.ItemsRequested - ev.ItemsPlaced; n > 0 {
		s.unplaced.WithLabelValues(ev.TrailerID).Add(float64(n))
	}
	s.utilization.WithLabelValues(ev.TrailerID, "weight").Observe(ev.WeightUtilizationPct)
	s.utilization.WithLabelValues(ev.TrailerID, "space").Observe(ev.SpaceUtilizationPct)
	return nil
}

// RecordRecommendations counts each scored trailer.
func (s *PromSink) RecordRecommendations(evs []coremetrics.RecommendationEvent) error {
	for _, ev := range evs {
		s.recommendations.WithLabelValues(
			ev.TrailerID,
			strconv.FormatBool(ev.Best),
			strconv.FormatBool(ev.Legal),
		).Inc()
	}
	return nil
}

// RecordSplit observes the number of trailer instances opened.
func (s *PromSink) RecordSplit(ev coremetrics.SplitEvent) error {
	s.splitTrailers.Observe(float64(ev.Trailers))
	return nil
}
