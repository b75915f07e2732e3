package core

import "math"

// Viewport maps world space onto a grid of screen cells.
type Viewport struct {
	World Vec2 // World size in units
	Cols  int
	Rows  int
}

// NewViewport creates a viewport showing the whole world on cols x rows cells.
func NewViewport(world Vec2, cols, rows int) Viewport {
	return Viewport{World: world, Cols: Max(cols, 1), Rows: Max(rows, 1)}
}

func (v Viewport) scale() (float64, float64) {
	return float64(v.Cols) / v.World.X, float64(v.Rows) / v.World.Y
}

// ToCell returns the cell containing world point p.
func (v Viewport) ToCell(p Vec2) (int, int) {
	sx, sy := v.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// ToWorld returns the world point at the center of cell (x, y).
func (v Viewport) ToWorld(x, y int) Vec2 {
	sx, sy := v.scale()
	return Vec2{X: (float64(x) + 0.5) / sx, Y: (float64(y) + 0.5) / sy}
}

// BoxToRect returns the cells covered by b. Any box yields at least one cell.
func (v Viewport) BoxToRect(b Box) Rect {
	sx, sy := v.scale()
	x0 := int(math.Floor(b.Min.X * sx))
	y0 := int(math.Floor(b.Min.Y * sy))
	x1 := int(math.Ceil(b.Max.X * sx))
	y1 := int(math.Ceil(b.Max.Y * sy))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}
