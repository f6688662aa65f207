// Package canvas implements the raster canvas: a BGRA pixel buffer with
// anti-aliased drawing primitives.
//
// Every primitive clips to the buffer, or to a narrower clip rectangle set
// with SetClip, and returns the minimal pixel
// rectangle it may have modified, clamped to the buffer bounds. Callers
// union these rectangles to present only the changed region. Degenerate
// or fully off-buffer geometry is a no-op that returns an empty rectangle.
package canvas

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/dataplot"
	"github.com/gogpu/dataplot/internal/blend"
	"golang.org/x/image/vector"
)

// ErrEmptyCanvas is returned when exporting a canvas with no pixels.
var ErrEmptyCanvas = errors.New("canvas: empty canvas")

// bytesPerPixel is the size of one B,G,R,A pixel.
const bytesPerPixel = 4

// Canvas owns a row-major pixel buffer, 4 bytes per pixel in B, G, R, A
// order, non-premultiplied.
//
// Canvas implements draw.Image so standard image code can read and write
// it. It is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []byte
	clip   image.Rectangle

	// Scratch state for the thick-line path, reused across calls.
	raster vector.Rasterizer
	mask   []byte

	stats Stats
}

// Stats counts primitive calls that passed argument validation, by
// drawing path.
type Stats struct {
	ThinLines  int
	ThickLines int
	Ellipses   int
}

// Stats returns the counters accumulated since the last ResetStats.
func (c *Canvas) Stats() Stats {
	return c.stats
}

// ResetStats zeroes the counters.
func (c *Canvas) ResetStats() {
	c.stats = Stats{}
}

// New creates a canvas with the given dimensions. Negative dimensions
// are treated as zero.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*bytesPerPixel),
		clip:   image.Rect(0, 0, width, height),
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Stride returns the number of bytes per row.
func (c *Canvas) Stride() int {
	return c.width * bytesPerPixel
}

// Pix returns the raw BGRA bytes.
func (c *Canvas) Pix() []byte {
	return c.pix
}

// Row returns the bytes of row y, or nil when y is out of range.
func (c *Canvas) Row(y int) []byte {
	if y < 0 || y >= c.height {
		return nil
	}
	s := c.Stride()
	return c.pix[y*s : (y+1)*s : (y+1)*s]
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.PixelAt(x, y).NRGBA()
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, dataplot.FromColor(col))
}

// Resize changes the canvas dimensions. The buffer is reallocated, and its
// contents discarded, only when the dimensions actually change. Resize
// reports whether it reallocated.
func (c *Canvas) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		return false
	}
	dataplot.Logger().Debug("canvas: reallocate",
		"from", image.Pt(c.width, c.height), "to", image.Pt(width, height))
	c.width = width
	c.height = height
	c.pix = make([]byte, width*height*bytesPerPixel)
	c.clip = c.Bounds()
	return true
}

// SetClip restricts the drawing primitives to r intersected with the
// buffer bounds. Clear and SetPixel ignore the clip.
func (c *Canvas) SetClip(r image.Rectangle) {
	c.clip = r.Intersect(c.Bounds())
}

// ResetClip makes the whole buffer drawable again.
func (c *Canvas) ResetClip() {
	c.clip = c.Bounds()
}

// Clip returns the current clip rectangle.
func (c *Canvas) Clip() image.Rectangle {
	return c.clip
}

// offset returns the byte offset of pixel (x, y) and whether it is inside
// the buffer.
func (c *Canvas) offset(x, y int) (int, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, false
	}
	return (y*c.width + x) * bytesPerPixel, true
}

// SetPixel writes a single pixel without blending. Out-of-bounds
// coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, col dataplot.Color) {
	i, ok := c.offset(x, y)
	if !ok {
		return
	}
	blend.Put(c.pix[i:i+4], col.R, col.G, col.B, col.A)
}

// PixelAt returns the color of a single pixel, or Transparent when out of
// bounds.
func (c *Canvas) PixelAt(x, y int) dataplot.Color {
	i, ok := c.offset(x, y)
	if !ok {
		return dataplot.Transparent
	}
	p := c.pix[i : i+4]
	return dataplot.Color{R: p[2], G: p[1], B: p[0], A: p[3]}
}

// blendPixel composites col at the given coverage onto pixel (x, y) if it
// lies inside the clip.
func (c *Canvas) blendPixel(x, y int, col dataplot.Color, coverage uint8) {
	if !image.Pt(x, y).In(c.clip) {
		return
	}
	i, _ := c.offset(x, y)
	blend.Over(c.pix[i:i+4], col.R, col.G, col.B, col.A, coverage)
}

// fillSpan writes col into pixels [x0, x1) of row y. The span must already
// be clipped.
func (c *Canvas) fillSpan(y, x0, x1 int, col dataplot.Color) {
	if x0 >= x1 {
		return
	}
	row := c.Row(y)[x0*bytesPerPixel : x1*bytesPerPixel]
	// Seed one pixel, then double the filled prefix.
	blend.Put(row, col.R, col.G, col.B, col.A)
	for n := bytesPerPixel; n < len(row); n *= 2 {
		copy(row[n:], row[:n])
	}
}

// Clear fills every pixel with col and returns the full bounds.
func (c *Canvas) Clear(col dataplot.Color) image.Rectangle {
	if c.width == 0 || c.height == 0 {
		return image.Rectangle{}
	}
	c.fillSpan(0, 0, c.width, col)
	first := c.Row(0)
	for y := 1; y < c.height; y++ {
		copy(c.Row(y), first)
	}
	return c.Bounds()
}

// FillRectangle fills the axis-aligned rectangle spanned by (x, y) and
// (x2, y2) with col, without anti-aliasing or blending. Pixel (i, j) is
// filled when x <= i < x2 and y <= j < y2 after truncation.
func (c *Canvas) FillRectangle(x, y, x2, y2 float64, col dataplot.Color) image.Rectangle {
	r, ok := c.pixelBox(x, y, x2, y2)
	if !ok {
		return image.Rectangle{}
	}
	for row := r.Min.Y; row < r.Max.Y; row++ {
		c.fillSpan(row, r.Min.X, r.Max.X, col)
	}
	return r
}

// pixelBox converts a float rectangle given by two corners into the
// half-open pixel rectangle it covers, clipped.
func (c *Canvas) pixelBox(x, y, x2, y2 float64) (image.Rectangle, bool) {
	if !finite(x, y, x2, y2) {
		return image.Rectangle{}, false
	}
	x0, x1 := minmax(x, x2)
	y0, y1 := minmax(y, y2)
	cl := c.clip
	r := image.Rect(
		clampInt(x0, cl.Min.X, cl.Max.X), clampInt(y0, cl.Min.Y, cl.Max.Y),
		clampInt(x1, cl.Min.X, cl.Max.X), clampInt(y1, cl.Min.Y, cl.Max.Y),
	)
	return r, !r.Empty()
}
