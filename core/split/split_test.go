package split

import (
	"testing"

	"github.com/primovera12/load-planner/core/model"
)

func flatbed48() model.TrailerSpec {
	return model.TrailerSpec{
		ID: "flatbed-48", Category: model.CategoryFlatbed,
		DeckLength: 48, DeckWidth: 8.5, DeckHeight: 5.0,
		MaxCargoWeight: 48000, TareWeight: 10000,
		LoadingMethod: model.LoadForklift,
	}
}

func TestSplitLoad_WeightBoundSplit(t *testing.T) {
	items := []model.CargoItem{
		{ID: "coil", Quantity: 8, Length: 10, Width: 4, Height: 4, Weight: 10000},
	}
	trailer := flatbed48()

	est := EstimateTrailersNeeded(items, trailer)
	if est.ByWeight != 2 || est.BySpace != 1 || est.Count != 2 {
		t.Fatalf("estimate: got %+v, want weight 2 / space 1 / count 2", est)
	}

	loads, warnings := SplitLoad(items, trailer)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(loads) != 2 {
		t.Fatalf("80,000 lb across 48,000 lb trailers needs 2 loads, got %d", len(loads))
	}
	for _, l := range loads {
		if len(l.Items) != 4 || l.TotalWeight != 40000 {
			t.Errorf("load %s: %d items, %.0f lb", l.ID, len(l.Items), l.TotalWeight)
		}
		if l.ID == "" {
			t.Errorf("load missing ID")
		}
	}
}

func TestSplitLoad_SpaceBoundSplit(t *testing.T) {
	items := []model.CargoItem{
		{ID: "mat", Quantity: 12, Length: 10, Width: 8, Height: 0.5, Weight: 100},
	}
	trailer := flatbed48()

	est := EstimateTrailersNeeded(items, trailer)
	if est.Count != est.BySpace || est.BySpace != 3 {
		t.Fatalf("estimate: got %+v, want space-bound count 3", est)
	}

	loads, _ := SplitLoad(items, trailer)
	if len(loads) < est.Count {
		t.Fatalf("split produced %d loads, below the %d lower bound", len(loads), est.Count)
	}
	derated := trailer.DeckArea() * packingDerate
	for _, l := range loads {
		if l.TotalFootprint > derated {
			t.Errorf("load %s exceeds derated area: %.1f > %.1f", l.ID, l.TotalFootprint, derated)
		}
	}
}

func TestSplitLoad_OversizedUnitGetsOwnLoad(t *testing.T) {
	items := []model.CargoItem{
		{ID: "press", Quantity: 1, Length: 10, Width: 8, Height: 8, Weight: 60000},
		{ID: "crate", Quantity: 2, Length: 10, Width: 4, Height: 4, Weight: 5000},
	}

	loads, _ := SplitLoad(items, flatbed48())
	if len(loads) != 2 {
		t.Fatalf("expected 2 loads, got %d", len(loads))
	}
	if len(loads[0].Items) != 1 || loads[0].Items[0].UnitID != "press" {
		t.Errorf("over-capacity unit should ride alone: %+v", loads[0].Items)
	}
	if len(loads[1].Items) != 2 {
		t.Errorf("remaining units should share the second load, got %d", len(loads[1].Items))
	}
}

func TestSplitLoad_EstimateIsLowerBound(t *testing.T) {
	cases := [][]model.CargoItem{
		{{ID: "a", Quantity: 3, Length: 20, Width: 8, Height: 4, Weight: 30000}},
		{{ID: "b", Quantity: 10, Length: 6, Width: 6, Height: 4, Weight: 7000}},
		{
			{ID: "c", Quantity: 4, Length: 12, Width: 8, Height: 4, Weight: 15000},
			{ID: "d", Quantity: 6, Length: 8, Width: 4, Height: 2, Weight: 2000},
		},
	}
	trailer := flatbed48()
	for _, items := range cases {
		est := EstimateTrailersNeeded(items, trailer)
		loads, _ := SplitLoad(items, trailer)
		if len(loads) < est.Count {
			t.Errorf("split of %s used %d trailers, estimate said at least %d",
				items[0].ID, len(loads), est.Count)
		}
	}
}

func TestSplitLoad_StableOrderForEqualWeights(t *testing.T) {
	items := []model.CargoItem{
		{ID: "x", Quantity: 3, Length: 10, Width: 4, Height: 4, Weight: 5000},
	}

	loads, _ := SplitLoad(items, flatbed48())
	if len(loads) != 1 {
		t.Fatalf("expected one load, got %d", len(loads))
	}
	want := []string{"x#1", "x#2", "x#3"}
	for i, u := range loads[0].Items {
		if u.UnitID != want[i] {
			t.Errorf("unit %d: got %s, want %s", i, u.UnitID, want[i])
		}
	}
}

func TestSplitLoad_Empty(t *testing.T) {
	loads, warnings := SplitLoad(nil, flatbed48())
	if len(loads) != 0 || len(warnings) != 0 {
		t.Errorf("empty cargo should split to nothing: %d loads, %v", len(loads), warnings)
	}
	if est := EstimateTrailersNeeded(nil, flatbed48()); est.Count != 0 {
		t.Errorf("empty cargo estimate should be zero, got %+v", est)
	}
}

func TestSplitLoad_InvalidItemsWarn(t *testing.T) {
	items := []model.CargoItem{
		{ID: "bad", Quantity: 1, Length: 0, Width: 4, Height: 4, Weight: 1000},
		{ID: "good", Quantity: 1, Length: 10, Width: 4, Height: 4, Weight: 1000},
	}

	loads, warnings := SplitLoad(items, flatbed48())
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for the invalid item, got %v", warnings)
	}
	if len(loads) != 1 || len(loads[0].Items) != 1 || loads[0].Items[0].UnitID != "good" {
		t.Errorf("valid item should still be assigned: %+v", loads)
	}
}
