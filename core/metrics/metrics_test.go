package metrics

import "testing"

type recordSink struct {
	count int
}

func (r *recordSink) RecordPlan(PlanEvent) error                        { r.count++; return nil }
func (r *recordSink) RecordRecommendations([]RecommendationEvent) error { r.count++; return nil }
func (r *recordSink) RecordSplit(SplitEvent) error                      { r.count++; return nil }

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordPlan(PlanEvent{}); err != nil {
		t.Fatalf("record plan: %v", err)
	}
	if err := m.RecordRecommendations(nil); err != nil {
		t.Fatalf("record recommendations: %v", err)
	}
	if err := m.RecordSplit(SplitEvent{}); err != nil {
		t.Fatalf("record split: %v", err)
	}
	if s1.count != 3 || s2.count != 3 {
		t.Fatalf("events not forwarded: %d, %d", s1.count, s2.count)
	}
}

func TestNopSink(t *testing.T) {
	var s NopSink
	if err := s.RecordPlan(PlanEvent{}); err != nil {
		t.Fatalf("nop plan: %v", err)
	}
	if err := s.RecordRecommendations(nil); err != nil {
		t.Fatalf("nop recommendations: %v", err)
	}
	if err := s.RecordSplit(SplitEvent{}); err != nil {
		t.Fatalf("nop split: %v", err)
	}
}
