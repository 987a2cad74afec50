package geom

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"identical", NewBox(0, 0, 1, 1), NewBox(0, 0, 1, 1), true},
		{"partial", NewBox(0, 0, 2, 2), NewBox(1, 1, 3, 3), true},
		{"contained", NewBox(0, 0, 4, 4), NewBox(1, 1, 2, 2), true},
		{"touching right edge", NewBox(0, 0, 1, 1), NewBox(1, 0, 2, 1), false},
		{"touching bottom edge", NewBox(0, 0, 1, 1), NewBox(0, 1, 1, 2), false},
		{"touching corner", NewBox(0, 0, 1, 1), NewBox(1, 1, 2, 2), false},
		{"apart", NewBox(0, 0, 1, 1), NewBox(5, 5, 6, 6), false},
		{"cross shape", NewBox(0, 1, 3, 2), NewBox(1, 0, 2, 3), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tc.want)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(V(1, 5), V(-2, 3), V(4, -1), V(0, 0))
	want := NewBox(-2, -1, 4, 5)
	if b != want {
		t.Errorf("Expected %+v, got %+v", want, b)
	}
	if b.Width() != 6 || b.Height() != 6 {
		t.Errorf("Expected 6x6, got %vx%v", b.Width(), b.Height())
	}
	if c := b.Center(); c != V(1, 2) {
		t.Errorf("Expected center (1, 2), got %v", c)
	}

	if empty := BoxAround(); empty != (Box{}) {
		t.Errorf("Expected zero box for no points, got %+v", empty)
	}
}

func TestVectorHelpers(t *testing.T) {
	if d := Distance(V(0, 0), V(3, 4)); d != 5 {
		t.Errorf("Expected distance 5, got %v", d)
	}
	if v := Scale(Add(V(1, 2), V(1, 0)), 2); v != V(4, 4) {
		t.Errorf("Expected (4, 4), got %v", v)
	}
	if !IsZero(Sub(V(1, 1), V(1, 1))) {
		t.Error("Expected zero vector")
	}
	if IsFinite(V(math.NaN(), 0)) || IsFinite(V(0, math.Inf(1))) {
		t.Error("Expected NaN and Inf to be rejected")
	}
	if !IsFinite(V(-3, 1e9)) {
		t.Error("Expected ordinary values to be finite")
	}
}
