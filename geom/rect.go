package geom

import "math"

// Rect is an axis-aligned rectangle described by its top-left corner and size.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// BoundingBox returns the tightest Rect enclosing points.
// It returns the zero Rect for an empty slice.
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	lo := Pt(math.Inf(1), math.Inf(1))
	hi := Pt(math.Inf(-1), math.Inf(-1))
	for _, p := range points {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return Rect{Left: lo.X, Top: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// Size returns the width and height as a Point.
func (r Rect) Size() Point {
	return Point{X: r.Width, Y: r.Height}
}

// Center returns the center point of the rect.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}
