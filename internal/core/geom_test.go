package core

import (
	"math"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAt(V(0, 0), V(10, 10)),
			b:        BoxAt(V(5, 5), V(10, 10)),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        BoxAt(V(0, 0), V(10, 10)),
			b:        BoxAt(V(15, 0), V(10, 10)),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        BoxAt(V(0, 0), V(10, 10)),
			b:        BoxAt(V(0, 15), V(10, 10)),
			expected: false,
		},
		{
			name:     "touching edge (no overlap)",
			a:        BoxAt(V(0, 0), V(10, 10)),
			b:        BoxAt(V(10, 0), V(10, 10)),
			expected: false,
		},
		{
			name:     "touching bottom edge (no overlap)",
			a:        BoxAt(V(0, 0), V(10, 10)),
			b:        BoxAt(V(0, 10), V(10, 10)),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoxAt(V(0, 0), V(20, 20)),
			b:        BoxAt(V(5, 5), V(5, 5)),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        BoxAt(V(0, 0), V(10, 10)),
			b:        BoxAt(V(9.5, 9.5), V(10, 10)),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxContainsStrict(t *testing.T) {
	b := BoxAt(V(10, 10), V(20, 15))

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), false},
		{"left edge", V(10, 20), false},
		{"bottom-right corner", V(30, 25), false},
		{"outside right", V(35, 15), false},
		{"outside top", V(15, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.ContainsStrict(tc.p); got != tc.expected {
				t.Errorf("ContainsStrict(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestBoxOffsetAndCenter(t *testing.T) {
	b := BoxAt(V(5, 10), V(20, 10)).Offset(3, -4)

	if b.Min != V(8, 6) || b.Max != V(28, 16) {
		t.Errorf("Offset() = %+v, expected Min=(8,6) Max=(28,16)", b)
	}
	if b.Width() != 20 || b.Height() != 10 {
		t.Errorf("Width/Height = %v/%v, expected 20/10", b.Width(), b.Height())
	}
	if c := b.Center(); c != V(18, 11) {
		t.Errorf("Center() = %v, expected (18, 11)", c)
	}
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y-0.8) > 1e-9 {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", n)
	}

	if z := V(0, 0).Normalize(); !z.IsZero() {
		t.Errorf("Normalize() of zero vector = %v, expected zero", z)
	}

	if d := V(1, 1).Dist(V(4, 5)); d != 5 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
