package canvas

import (
	"image"

	"github.com/gogpu/dataplot"
)

// DrawRectangle strokes the outline of the rectangle spanned by (x, y) and
// (x2, y2) with four DrawLine calls. Degenerate rectangles, transparent
// colors and non-positive thickness draw nothing.
func (c *Canvas) DrawRectangle(x, y, x2, y2 float64, col dataplot.Color, thickness float64) image.Rectangle {
	x, x2 = minmax(x, x2)
	y, y2 = minmax(y, y2)
	if x == x2 || y == y2 || col.A == 0 || !(thickness > 0) {
		return image.Rectangle{}
	}

	dirty := c.DrawLine(x, y, x2, y, col, thickness)
	dirty = dirty.Union(c.DrawLine(x2, y, x2, y2, col, thickness))
	dirty = dirty.Union(c.DrawLine(x2, y2, x, y2, col, thickness))
	dirty = dirty.Union(c.DrawLine(x, y2, x, y, col, thickness))
	return dirty
}
