package core

import "testing"

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(V(1280, 720), 128, 36)

	tests := []struct {
		x, y int
	}{
		{0, 0},
		{10, 5},
		{127, 35},
	}

	for _, tc := range tests {
		p := v.ToWorld(tc.x, tc.y)
		x, y := v.ToCell(p)
		if x != tc.x || y != tc.y {
			t.Errorf("ToCell(ToWorld(%d, %d)) = (%d, %d)", tc.x, tc.y, x, y)
		}
	}

	if p := v.ToWorld(0, 0); p != V(5, 10) {
		t.Errorf("ToWorld(0, 0) = %v, expected (5, 10)", p)
	}
}

func TestViewportBoxToRect(t *testing.T) {
	v := NewViewport(V(1280, 720), 128, 36)

	tests := []struct {
		name     string
		box      Box
		expected Rect
	}{
		{"aligned", BoxAt(V(800, 560), V(40, 40)), NewRect(80, 28, 4, 2)},
		{"partial cells round outward", BoxAt(V(805, 565), V(40, 40)), NewRect(80, 28, 5, 3)},
		{"tiny box still visible", BoxAt(V(3, 3), V(1, 1)), NewRect(0, 0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.BoxToRect(tc.box); got != tc.expected {
				t.Errorf("BoxToRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
