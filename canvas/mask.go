package canvas

import (
	"image"

	"github.com/gogpu/dataplot"
	"github.com/gogpu/dataplot/internal/blend"
)

// Rotation selects how BlendMask orients a mask.
type Rotation int

const (
	// Rotate0 blends the mask as is.
	Rotate0 Rotation = iota

	// Rotate90 turns the mask a quarter turn counter-clockwise, so
	// horizontal text reads bottom to top.
	Rotate90
)

// BlendMask composites col through the coverage mask with its top-left
// corner at (x, y). With Rotate90 the mask is turned first, so the
// touched area is mask height wide and mask width tall.
func (c *Canvas) BlendMask(mask *image.Alpha, x, y int, col dataplot.Color, rot Rotation) image.Rectangle {
	if mask == nil || col.A == 0 {
		return image.Rectangle{}
	}
	mb := mask.Bounds()
	mw, mh := mb.Dx(), mb.Dy()
	if mw == 0 || mh == 0 {
		return image.Rectangle{}
	}

	size := image.Pt(mw, mh)
	if rot == Rotate90 {
		size = image.Pt(mh, mw)
	}
	dst := image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x, y).Add(size)}.Intersect(c.clip)
	if dst.Empty() {
		return image.Rectangle{}
	}

	for dy := dst.Min.Y; dy < dst.Max.Y; dy++ {
		row := c.Row(dy)
		for dx := dst.Min.X; dx < dst.Max.X; dx++ {
			// Destination (u, v) inside the placed mask.
			u, v := dx-x, dy-y
			sx, sy := u, v
			if rot == Rotate90 {
				sx, sy = mw-1-v, u
			}
			m := mask.Pix[mask.PixOffset(mb.Min.X+sx, mb.Min.Y+sy)]
			if m == 0 {
				continue
			}
			i := dx * bytesPerPixel
			blend.Over(row[i:i+4], col.R, col.G, col.B, col.A, m)
		}
	}
	return dst
}
