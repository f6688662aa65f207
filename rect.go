package dataplot

import (
	"fmt"
	"math"
)

// rectEpsilon is the absolute tolerance used by RectD.Equal.
const rectEpsilon = 1e-9

// RectD is an axis-aligned rectangle in floating point.
//
// Width and Height are expected to be non-negative but construction does
// not enforce it. Use NormalizedRect to build a rectangle from two
// arbitrary corners.
type RectD struct {
	X, Y, Width, Height float64
}

// EmptyRect is the canonical empty rectangle.
var EmptyRect = RectD{}

// Rect is a convenience function to create a RectD.
func Rect(x, y, w, h float64) RectD {
	return RectD{X: x, Y: y, Width: w, Height: h}
}

// NormalizedRect returns the rectangle spanned by two corner points given
// in any order.
func NormalizedRect(p1, p2 PointD) RectD {
	return RectD{
		X:      math.Min(p1.X, p2.X),
		Y:      math.Min(p1.Y, p2.Y),
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

// Left returns the minimum X.
func (r RectD) Left() float64 { return r.X }

// Top returns the minimum Y.
func (r RectD) Top() float64 { return r.Y }

// Right returns X + Width.
func (r RectD) Right() float64 { return r.X + r.Width }

// Bottom returns Y + Height.
func (r RectD) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r RectD) Center() PointD {
	return PointD{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether r equals EmptyRect.
func (r RectD) IsEmpty() bool {
	return r.Equal(EmptyRect)
}

// Equal reports whether all four fields of r and s agree within a small
// absolute tolerance.
func (r RectD) Equal(s RectD) bool {
	return nearlyEqual(r.X, s.X) && nearlyEqual(r.Y, s.Y) &&
		nearlyEqual(r.Width, s.Width) && nearlyEqual(r.Height, s.Height)
}

// Contains reports whether p lies inside r, edges included.
func (r RectD) Contains(p PointD) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Expand grows r on both sides of each axis by the given fraction of that
// axis' span. A zero-span axis stays zero.
func (r RectD) Expand(fx, fy float64) RectD {
	dx := r.Width * fx
	dy := r.Height * fy
	return RectD{X: r.X - dx, Y: r.Y - dy, Width: r.Width + 2*dx, Height: r.Height + 2*dy}
}

// Union returns the smallest rectangle containing r and s.
func (r RectD) Union(s RectD) RectD {
	x0 := math.Min(r.Left(), s.Left())
	y0 := math.Min(r.Top(), s.Top())
	x1 := math.Max(r.Right(), s.Right())
	y1 := math.Max(r.Bottom(), s.Bottom())
	return RectD{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Deflate returns r shrunk by the given padding. Extents that would become
// negative are clamped to zero.
func (r RectD) Deflate(t ThicknessD) RectD {
	return RectD{
		X:      r.X + t.Left,
		Y:      r.Y + t.Top,
		Width:  math.Max(0, r.Width-t.Left-t.Right),
		Height: math.Max(0, r.Height-t.Top-t.Bottom),
	}
}

// String implements fmt.Stringer.
func (r RectD) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.X, r.Y, r.Width, r.Height)
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < rectEpsilon
}
