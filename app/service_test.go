package app

import (
	"math"
	"testing"

	"github.com/primovera12/load-planner/config"
	"github.com/primovera12/load-planner/core/model"
	"github.com/primovera12/load-planner/core/packing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(config.Default())
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	t.Cleanup(func() {
		if err := svc.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return svc
}

func TestServicePack(t *testing.T) {
	svc := newTestService(t)
	items := []model.CargoItem{
		{ID: "crate", Quantity: 2, Length: 10, Width: 4, Height: 4, Weight: 5000},
	}

	result, dist, err := svc.Pack(items, "flatbed-48")
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if result.Stats.ItemsPlaced != 2 {
		t.Fatalf("expected both units placed, got %d", result.Stats.ItemsPlaced)
	}
	// Axle sums must agree with tractor + trailer + cargo.
	want := 17000.0 + 10000 + 10000
	got := dist.Steer.Weight + dist.Drive.Weight + dist.Trailer.Weight
	if math.Abs(got-want) > 1 {
		t.Errorf("axle sum %.1f, want %.1f", got, want)
	}

	steps, err := svc.Instructions(result, "flatbed-48")
	if err != nil {
		t.Fatalf("instructions: %v", err)
	}
	if len(steps) != 2 {
		t.Errorf("expected 2 loading steps, got %d", len(steps))
	}
}

func TestServicePack_UnknownTrailer(t *testing.T) {
	svc := newTestService(t)
	if _, _, err := svc.Pack(nil, "hovercraft-9"); err == nil {
		t.Fatal("unknown trailer must error")
	}
	if _, err := svc.Instructions(packing.OptimizationResult{}, "hovercraft-9"); err == nil {
		t.Fatal("unknown trailer must error")
	}
}

func TestServiceRecommend(t *testing.T) {
	svc := newTestService(t)
	cargo := model.CargoEnvelope{Length: 20, Width: 8, Height: 8, Weight: 10000}

	recs := svc.Recommend(cargo)
	if len(recs) != len(svc.Catalog()) {
		t.Fatalf("expected one recommendation per catalog trailer, got %d", len(recs))
	}
	if !recs[0].IsBestChoice {
		t.Errorf("top recommendation should be flagged best")
	}
}

func TestServiceSplit(t *testing.T) {
	svc := newTestService(t)
	items := []model.CargoItem{
		{ID: "coil", Quantity: 8, Length: 10, Width: 4, Height: 4, Weight: 10000},
	}

	loads, est, warnings, err := svc.Split(items, "flatbed-48")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if est.Count != 2 || len(loads) != 2 {
		t.Errorf("expected 2 trailers estimated and used, got est %d, actual %d", est.Count, len(loads))
	}
}
