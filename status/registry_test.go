package status

import (
	"sync/atomic"
	"testing"
)

func TestMetricMapCachedPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("sim.bodies")
	b := m.Get("sim.bodies")
	if a != b {
		t.Error("repeated Get should return the cached pointer")
	}
	a.Store(42)
	if b.Load() != 42 {
		t.Errorf("value through cached pointer = %d, want 42", b.Load())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("zeta")
	m.Get("alpha")
	m.Get("mid")

	var keys []string
	m.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})
	want := []string{"alpha", "mid", "zeta"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Range order = %v, want %v", keys, want)
		}
	}
}

func TestAtomicFloatRoundTrip(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Error("zero value should read as 0.0")
	}
	f.Set(3.25)
	if f.Get() != 3.25 {
		t.Errorf("Get = %v, want 3.25", f.Get())
	}
	if got := f.Add(0.75); got != 4.0 {
		t.Errorf("Add result = %v, want 4.0", got)
	}
}
