package catalog

import (
	"testing"

	"github.com/primovera12/load-planner/core/model"
)

func TestStandard_AllEntriesValid(t *testing.T) {
	specs := Standard()
	if len(specs) != 7 {
		t.Fatalf("expected 7 built-in trailers, got %d", len(specs))
	}
	seen := map[string]bool{}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			t.Errorf("catalog entry %s invalid: %v", s.ID, err)
		}
		if seen[s.ID] {
			t.Errorf("duplicate catalog ID %s", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestStandard_Flatbed48(t *testing.T) {
	spec, ok := ByID(Standard(), "flatbed-48")
	if !ok {
		t.Fatal("flatbed-48 missing from catalog")
	}
	if spec.DeckLength != 48 || spec.DeckWidth != 8.5 || spec.DeckHeight != 5.0 {
		t.Errorf("flatbed-48 deck dimensions changed: %+v", spec)
	}
	if spec.MaxCargoWeight != 48000 || spec.TareWeight != 10000 {
		t.Errorf("flatbed-48 weights changed: %+v", spec)
	}
	if spec.LoadingMethod != model.LoadForklift {
		t.Errorf("flatbed-48 loading method: %s", spec.LoadingMethod)
	}
}

func TestByID_Unknown(t *testing.T) {
	if _, ok := ByID(Standard(), "flatbed-99"); ok {
		t.Error("lookup of unknown ID should fail")
	}
}

func TestMerge(t *testing.T) {
	base := Standard()
	overrides := []model.TrailerSpec{
		{ID: "flatbed-48", Name: "Custom 48", Category: model.CategoryFlatbed,
			DeckLength: 48, DeckWidth: 8.5, DeckHeight: 4.8,
			MaxCargoWeight: 50000, TareWeight: 9500, LoadingMethod: model.LoadCrane},
		{ID: "extendable-80", Name: "80' Extendable", Category: model.CategoryFlatbed,
			DeckLength: 80, DeckWidth: 8.5, DeckHeight: 5.0,
			MaxCargoWeight: 44000, TareWeight: 16000, LoadingMethod: model.LoadCrane},
	}

	merged := Merge(base, overrides)
	if len(merged) != len(base)+1 {
		t.Fatalf("merge size: got %d, want %d", len(merged), len(base)+1)
	}
	if merged[0].ID != "flatbed-48" || merged[0].MaxCargoWeight != 50000 {
		t.Errorf("override should replace in place: %+v", merged[0])
	}
	if merged[len(merged)-1].ID != "extendable-80" {
		t.Errorf("unknown override should append last: %s", merged[len(merged)-1].ID)
	}

	// Merge must not mutate the base slice.
	if fresh, _ := ByID(Standard(), "flatbed-48"); fresh.MaxCargoWeight != 48000 {
		t.Errorf("merge mutated the standard catalog")
	}
}
