package packing

import (
	"strings"
	"testing"
)

func TestGenerateLoadingInstructions_RearToFront(t *testing.T) {
	res := OptimizationResult{Placements: []Placement{
		{ItemID: "front", Length: 10, Width: 4, Weight: 2000, X: 0, Z: 0},
		{ItemID: "rear", Length: 10, Width: 4, Weight: 2000, X: 30, Z: 0},
		{ItemID: "mid", Length: 10, Width: 4, Weight: 2000, X: 15, Z: 0},
	}}

	steps := GenerateLoadingInstructions(res, testTrailer())
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	want := []string{"rear", "mid", "front"}
	for i, w := range want {
		if steps[i].ItemID != w {
			t.Errorf("step %d: got %s, want %s", i+1, steps[i].ItemID, w)
		}
		if steps[i].Step != i+1 {
			t.Errorf("step numbering off at %d: %d", i, steps[i].Step)
		}
	}
}

func TestGenerateLoadingInstructions_DriverSideFirstOnEqualDepth(t *testing.T) {
	res := OptimizationResult{Placements: []Placement{
		{ItemID: "passenger", Length: 10, Width: 4, Weight: 1000, X: 0, Z: 4.5},
		{ItemID: "driver", Length: 10, Width: 4, Weight: 1000, X: 0, Z: 0},
	}}

	steps := GenerateLoadingInstructions(res, testTrailer())
	if steps[0].ItemID != "driver" || steps[1].ItemID != "passenger" {
		t.Errorf("equal-depth tie should order driver side first: %s, %s",
			steps[0].ItemID, steps[1].ItemID)
	}
}

func TestDescribePosition(t *testing.T) {
	trailer := testTrailer()
	cases := []struct {
		name string
		p    Placement
		want string
	}{
		{
			name: "dead center",
			p:    Placement{Length: 10, Width: 4, X: 19, Z: 2.25},
			want: "at deck center, on centerline",
		},
		{
			name: "rear driver side",
			p:    Placement{Length: 10, Width: 4, X: 30, Z: 0},
			want: "11.0' toward rear, 2.2' left of center",
		},
		{
			name: "front of deck",
			p:    Placement{Length: 10, Width: 4, X: 0, Z: 2.25},
			want: "19.0' toward front, on centerline",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := describePosition(tc.p, trailer); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLoadingStepString(t *testing.T) {
	s := LoadingStep{Step: 1, ItemID: "coil#2", Position: "at deck center, on centerline", Weight: 8000, Rotated: true}
	out := s.String()
	if !strings.HasPrefix(out, "1. coil#2 — ") {
		t.Errorf("unexpected prefix: %q", out)
	}
	if !strings.Contains(out, "8000 lb") || !strings.Contains(out, "rotated 90°") {
		t.Errorf("missing weight or rotation note: %q", out)
	}
}
