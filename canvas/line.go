package canvas

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/dataplot"
	"github.com/gogpu/dataplot/internal/blend"
)

// ThinLineMax is the largest thickness drawn with the single-pixel
// Bresenham path. Thicker lines go through the anti-aliased rasterizer.
const ThinLineMax = 1.5

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498307936

// DrawLine draws a line from (x0, y0) to (x1, y1).
//
// Lines up to ThinLineMax thick are stepped with integer Bresenham between
// the rounded endpoints, one pixel wide, no anti-aliasing. Thicker lines
// are rasterized as an anti-aliased stroke with round caps into an
// offscreen mask covering only the line's bounding box (grown by
// ceil(thickness)) and composited from there.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, col dataplot.Color, thickness float64) image.Rectangle {
	if col.A == 0 || !(thickness > 0) || !finite(x0, y0, x1, y1, thickness) {
		return image.Rectangle{}
	}
	if c.clip.Empty() {
		return image.Rectangle{}
	}
	if thickness > ThinLineMax {
		c.stats.ThickLines++
		return c.drawThickLine(x0, y0, x1, y1, col, thickness)
	}
	c.stats.ThinLines++
	return c.drawThinLine(x0, y0, x1, y1, col)
}

func (c *Canvas) drawThinLine(x0, y0, x1, y1 float64, col dataplot.Color) image.Rectangle {
	// Endpoints far outside the buffer are pulled in first so the stepping
	// loop stays proportional to the visible length.
	guard := c.clip.Inset(-1)
	if !inside(x0, y0, guard) || !inside(x1, y1, guard) {
		var ok bool
		x0, y0, x1, y1, ok = clipSegment(x0, y0, x1, y1, guard)
		if !ok {
			return image.Rectangle{}
		}
	}

	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))
	dirty := image.Rect(ix0, iy0, ix1, iy1)
	dirty.Max = dirty.Max.Add(image.Pt(1, 1))
	dirty = dirty.Intersect(c.clip)

	dx := abs(ix1 - ix0)
	dy := abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	err := dx - dy

	for {
		c.blendPixel(ix0, iy0, col, 255)
		if ix0 == ix1 && iy0 == iy1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			ix0 += sx
		}
		if e2 < dx {
			err += dx
			iy0 += sy
		}
	}
	return dirty
}

func (c *Canvas) drawThickLine(x0, y0, x1, y1 float64, col dataplot.Color, thickness float64) image.Rectangle {
	margin := int(math.Ceil(thickness))
	guard := c.clip.Inset(-margin)
	if !inside(x0, y0, guard) || !inside(x1, y1, guard) {
		var ok bool
		x0, y0, x1, y1, ok = clipSegment(x0, y0, x1, y1, guard)
		if !ok {
			return image.Rectangle{}
		}
	}

	lx, hx := minmax(x0, x1)
	ly, hy := minmax(y0, y1)
	box := image.Rect(
		int(math.Floor(lx))-margin, int(math.Floor(ly))-margin,
		int(math.Ceil(hx))+margin+1, int(math.Ceil(hy))+margin+1,
	).Intersect(c.clip)
	if box.Empty() {
		return image.Rectangle{}
	}

	mask := c.strokeMask(box, x0, y0, x1, y1, thickness/2)

	w := box.Dx()
	for y := 0; y < box.Dy(); y++ {
		row := c.Row(box.Min.Y + y)
		cov := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, m := range cov {
			if m == 0 {
				continue
			}
			i := (box.Min.X + x) * bytesPerPixel
			blend.Over(row[i:i+4], col.R, col.G, col.B, col.A, m)
		}
	}
	return box
}

// strokeMask rasterizes a round-capped stroke of half-width hw into an
// alpha mask sized to box, in box-local coordinates.
func (c *Canvas) strokeMask(box image.Rectangle, x0, y0, x1, y1, hw float64) *image.Alpha {
	w, h := box.Dx(), box.Dy()
	if cap(c.mask) < w*h {
		c.mask = make([]byte, w*h)
	}
	mask := &image.Alpha{Pix: c.mask[:w*h], Stride: w, Rect: image.Rect(0, 0, w, h)}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	p0 := dataplot.Pt(x0-ox, y0-oy)
	p1 := dataplot.Pt(x1-ox, y1-oy)

	z := &c.raster
	z.Reset(w, h)
	z.DrawOp = draw.Src

	length := p0.DistanceTo(p1)
	if length == 0 {
		// A zero-length line with round caps is a dot.
		u, v := dataplot.Pt(1, 0), dataplot.Pt(0, 1)
		moveTo(z, p0.Add(u.Mul(hw)))
		quarterArc(z, p0, u, v, hw)
		quarterArc(z, p0, v, u.Mul(-1), hw)
		quarterArc(z, p0, u.Mul(-1), v.Mul(-1), hw)
		quarterArc(z, p0, v.Mul(-1), u, hw)
		z.ClosePath()
	} else {
		d := p1.Sub(p0).Mul(1 / length)
		n := dataplot.Pt(-d.Y, d.X)
		moveTo(z, p0.Add(n.Mul(hw)))
		lineTo(z, p1.Add(n.Mul(hw)))
		quarterArc(z, p1, n, d, hw)
		quarterArc(z, p1, d, n.Mul(-1), hw)
		lineTo(z, p0.Sub(n.Mul(hw)))
		quarterArc(z, p0, n.Mul(-1), d.Mul(-1), hw)
		quarterArc(z, p0, d.Mul(-1), n, hw)
		z.ClosePath()
	}

	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// pathBuilder is the subset of vector.Rasterizer used to build strokes.
type pathBuilder interface {
	MoveTo(ax, ay float32)
	LineTo(bx, by float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
}

func moveTo(z pathBuilder, p dataplot.PointD) {
	z.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(z pathBuilder, p dataplot.PointD) {
	z.LineTo(float32(p.X), float32(p.Y))
}

// quarterArc appends a quarter circle around center from direction u to
// direction v, where u and v are orthogonal unit vectors.
func quarterArc(z pathBuilder, center, u, v dataplot.PointD, r float64) {
	c1 := center.Add(u.Mul(r)).Add(v.Mul(r * kappa))
	c2 := center.Add(v.Mul(r)).Add(u.Mul(r * kappa))
	end := center.Add(v.Mul(r))
	z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(end.X), float32(end.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
