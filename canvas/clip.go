package canvas

import (
	"image"
	"math"
)

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func minmax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

// clampInt clamps f into [lo, hi] and truncates it.
func clampInt(f float64, lo, hi int) int {
	switch {
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	default:
		return int(f)
	}
}

// clipSegment clips the segment (x0,y0)-(x1,y1) against r using
// Liang-Barsky. It reports false when the segment misses r entirely.
func clipSegment(x0, y0, x1, y1 float64, r image.Rectangle) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - float64(r.Min.X)},
		{dx, float64(r.Max.X) - x0},
		{-dy, y0 - float64(r.Min.Y)},
		{dy, float64(r.Max.Y) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// inside reports whether (x, y) lies in r, treating r as closed.
func inside(x, y float64, r image.Rectangle) bool {
	return x >= float64(r.Min.X) && x <= float64(r.Max.X) &&
		y >= float64(r.Min.Y) && y <= float64(r.Max.Y)
}
