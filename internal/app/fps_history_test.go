package app

import "testing"

func TestFPSRing_ChronologicalOrderAfterWrap(t *testing.T) {
	t.Parallel()
	r := NewFPSRing(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		r.Push(v)
	}
	got := r.Values()
	want := []float64{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Values() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFPSRing_EmptyReturnsNil(t *testing.T) {
	t.Parallel()
	r := NewFPSRing(4)
	if r.Values() != nil {
		t.Error("empty ring should return nil values")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}
