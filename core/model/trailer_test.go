package model

import "testing"

func TestTrailerSpecDerived(t *testing.T) {
	spec := TrailerSpec{
		ID: "flatbed-48", DeckLength: 48, DeckWidth: 8.5, DeckHeight: 5,
		MaxCargoWeight: 48000, TareWeight: 10000,
	}
	if spec.DeckArea() != 408 {
		t.Errorf("deck area: got %.1f", spec.DeckArea())
	}
	limits := DefaultLegalLimits()
	if got := spec.MaxLegalCargoHeight(limits); got != 8.5 {
		t.Errorf("max legal cargo height: got %.1f", got)
	}
	if got := spec.MaxLegalCargoWidth(limits); got != 8.5 {
		t.Errorf("max legal cargo width: got %.1f", got)
	}
}

func TestTrailerSpecValidate(t *testing.T) {
	cases := []struct {
		name string
		spec TrailerSpec
		ok   bool
	}{
		{"valid", TrailerSpec{ID: "x", DeckLength: 48, DeckWidth: 8.5, MaxCargoWeight: 1000}, true},
		{"missing id", TrailerSpec{DeckLength: 48, DeckWidth: 8.5, MaxCargoWeight: 1000}, false},
		{"zero deck", TrailerSpec{ID: "x", DeckLength: 0, DeckWidth: 8.5, MaxCargoWeight: 1000}, false},
		{"no capacity", TrailerSpec{ID: "x", DeckLength: 48, DeckWidth: 8.5}, false},
	}
	for _, tc := range cases {
		if err := tc.spec.Validate(); (err == nil) != tc.ok {
			t.Errorf("%s: got err=%v", tc.name, err)
		}
	}
}
