package canvas

import (
	"image"
	"math"

	"github.com/gogpu/dataplot"
	"github.com/gogpu/dataplot/internal/blend"
)

const (
	// ellipseMargin is how far, in pixels, the scanned box extends past the
	// radii to leave room for the anti-aliased edge.
	ellipseMargin = 1.5

	// ellipseCutoff is the normalized distance beyond which a pixel is
	// never touched.
	ellipseCutoff = 1.5

	// edgeFade is the width, in pixels, of the linear coverage ramp outside
	// the ellipse boundary.
	edgeFade = 1.0
)

// FillEllipse fills the ellipse centered at (cx, cy) with radii rx, ry
// using analytic anti-aliasing and source-over blending against the
// current buffer contents.
//
// Pixels whose centers satisfy dx²/rx² + dy²/ry² <= 1 get full coverage.
// Outside that, coverage falls off linearly with the estimated distance
// to the boundary over edgeFade pixels, and nothing beyond a normalized
// distance of 1.5 is touched.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col dataplot.Color) image.Rectangle {
	if !(rx > 0) || !(ry > 0) || col.A == 0 || !finite(cx, cy, rx, ry) {
		return image.Rectangle{}
	}
	c.stats.Ellipses++
	cl := c.clip
	if cl.Empty() ||
		cx+rx+ellipseMargin < float64(cl.Min.X) || cx-rx-ellipseMargin > float64(cl.Max.X) ||
		cy+ry+ellipseMargin < float64(cl.Min.Y) || cy-ry-ellipseMargin > float64(cl.Max.Y) {
		return image.Rectangle{}
	}

	x0 := clampInt(math.Floor(cx-rx-ellipseMargin), cl.Min.X, cl.Max.X-1)
	x1 := clampInt(math.Ceil(cx+rx+ellipseMargin), cl.Min.X, cl.Max.X-1)
	y0 := clampInt(math.Floor(cy-ry-ellipseMargin), cl.Min.Y, cl.Max.Y-1)
	y1 := clampInt(math.Ceil(cy+ry+ellipseMargin), cl.Min.Y, cl.Max.Y-1)
	if x0 > x1 || y0 > y1 {
		return image.Rectangle{}
	}

	irx2 := 1 / (rx * rx)
	iry2 := 1 / (ry * ry)
	const cutoff2 = ellipseCutoff * ellipseCutoff

	for y := y0; y <= y1; y++ {
		row := c.Row(y)
		dy := float64(y) + 0.5 - cy
		dy2 := dy * dy * iry2

		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			d2 := dx*dx*irx2 + dy2
			if d2 > cutoff2 {
				continue
			}

			coverage := uint8(255)
			if d2 > 1 {
				// First-order distance to the boundary of f = d² - 1:
				// f / |∇f| with ∇f = (2dx/rx², 2dy/ry²).
				gx := dx * irx2
				gy := dy * iry2
				dist := (d2 - 1) / (2 * math.Sqrt(gx*gx+gy*gy))
				coverage = blend.Coverage(1 - dist/edgeFade)
				if coverage == 0 {
					continue
				}
			}

			i := x * bytesPerPixel
			blend.Over(row[i:i+4], col.R, col.G, col.B, col.A, coverage)
		}
	}

	return image.Rect(x0, y0, x1+1, y1+1)
}

// FillEllipseBordered draws a border ellipse of color border, then shrinks
// both radii by borderThickness and fills the interior with fill on top.
// A transparent border or non-positive thickness skips the border.
func (c *Canvas) FillEllipseBordered(cx, cy, rx, ry float64, fill, border dataplot.Color, borderThickness float64) image.Rectangle {
	var dirty image.Rectangle
	if border.A > 0 && borderThickness > 0 {
		dirty = c.FillEllipse(cx, cy, rx, ry, border)
		rx -= borderThickness
		ry -= borderThickness
	}
	if fill.A > 0 {
		dirty = dirty.Union(c.FillEllipse(cx, cy, rx, ry, fill))
	}
	return dirty
}

// FillCircle fills a circle of radius r.
func (c *Canvas) FillCircle(cx, cy, r float64, fill dataplot.Color) image.Rectangle {
	return c.FillEllipse(cx, cy, r, r, fill)
}

// FillCircleBordered fills a circle of radius r with a border ring of the
// given thickness.
func (c *Canvas) FillCircleBordered(cx, cy, r float64, fill, border dataplot.Color, borderThickness float64) image.Rectangle {
	return c.FillEllipseBordered(cx, cy, r, r, fill, border, borderThickness)
}
