package model

import "testing"

func TestExpandUnits_QuantityExpansion(t *testing.T) {
	items := []CargoItem{
		{ID: "crate", Quantity: 3, Length: 4, Width: 4, Height: 4, Weight: 500},
		{ID: "beam", Quantity: 1, Length: 20, Width: 1, Height: 1, Weight: 900},
	}
	units, warnings := ExpandUnits(items)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(units) != 4 {
		t.Fatalf("expected 4 units, got %d", len(units))
	}
	if units[0].UnitID != "crate#1" || units[2].UnitID != "crate#3" {
		t.Errorf("expected numbered unit ids, got %q %q", units[0].UnitID, units[2].UnitID)
	}
	if units[3].UnitID != "beam" {
		t.Errorf("single-quantity item should keep its id, got %q", units[3].UnitID)
	}
	if units[2].OriginalIndex != 0 || units[3].OriginalIndex != 1 {
		t.Errorf("original indexes must follow input order")
	}
}

func TestExpandUnits_SkipsInvalidWithWarning(t *testing.T) {
	items := []CargoItem{
		{ID: "bad", Quantity: 1, Length: 0, Width: 4, Height: 4, Weight: 500},
		{ID: "good", Quantity: 1, Length: 4, Width: 4, Height: 4, Weight: 500},
		{ID: "weightless", Quantity: 1, Length: 4, Width: 4, Height: 4, Weight: 0},
	}
	units, warnings := ExpandUnits(items)
	if len(units) != 1 || units[0].UnitID != "good" {
		t.Fatalf("expected only the valid item, got %v", units)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected one warning per skipped item, got %v", warnings)
	}
}

func TestEnvelopeOf(t *testing.T) {
	items := []CargoItem{
		{ID: "a", Description: "excavator", Quantity: 2, Length: 20, Width: 8, Height: 9, Weight: 10000},
		{ID: "b", Quantity: 1, Length: 30, Width: 6, Height: 5, Weight: 4000},
	}
	env := EnvelopeOf(items)
	if env.Length != 30 || env.Width != 8 || env.Height != 9 {
		t.Errorf("envelope should take max dimension per axis, got %+v", env)
	}
	if env.Weight != 24000 {
		t.Errorf("envelope weight should count quantity, got %.0f", env.Weight)
	}
	if env.Description != "excavator" {
		t.Errorf("expected first description, got %q", env.Description)
	}
}

func TestEnvelopeOf_IgnoresInvalid(t *testing.T) {
	env := EnvelopeOf([]CargoItem{{ID: "bad", Quantity: 1, Weight: 100}})
	if env.Weight != 0 {
		t.Fatalf("invalid items must not contribute, got %+v", env)
	}
}
