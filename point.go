package dataplot

import "math"

// PointD represents a 2D point in either data space or screen space.
// Which space a value lives in is determined by the caller; the two are
// never mixed in a single computation.
type PointD struct {
	X, Y float64
}

// Pt is a convenience function to create a PointD.
func Pt(x, y float64) PointD {
	return PointD{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p PointD) Add(q PointD) PointD {
	return PointD{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p PointD) Sub(q PointD) PointD {
	return PointD{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p PointD) Mul(s float64) PointD {
	return PointD{X: p.X * s, Y: p.Y * s}
}

// DistanceTo returns the Euclidean distance between two points.
func (p PointD) DistanceTo(q PointD) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// SizeI is a width/height pair in whole pixels.
type SizeI struct {
	Width, Height int
}

// Empty reports whether either dimension is zero or negative.
func (s SizeI) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// ThicknessD is padding around a rectangle, one value per edge.
type ThicknessD struct {
	Left, Top, Right, Bottom float64
}

// UniformThickness returns a ThicknessD with the same value on every edge.
func UniformThickness(v float64) ThicknessD {
	return ThicknessD{Left: v, Top: v, Right: v, Bottom: v}
}

// Max returns the per-edge maximum of t and u.
func (t ThicknessD) Max(u ThicknessD) ThicknessD {
	return ThicknessD{
		Left:   math.Max(t.Left, u.Left),
		Top:    math.Max(t.Top, u.Top),
		Right:  math.Max(t.Right, u.Right),
		Bottom: math.Max(t.Bottom, u.Bottom),
	}
}
