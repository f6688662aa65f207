package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Image returns a copy of the canvas as a standard NRGBA image.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	for i := 0; i+3 < len(c.pix); i += bytesPerPixel {
		img.Pix[i+0] = c.pix[i+2]
		img.Pix[i+1] = c.pix[i+1]
		img.Pix[i+2] = c.pix[i+0]
		img.Pix[i+3] = c.pix[i+3]
	}
	return img
}

// CopyTo presents the region r of the canvas onto dst at the same
// coordinates, replacing what was there. Use it with the dirty rectangles
// returned by the drawing calls to update only what changed.
func (c *Canvas) CopyTo(dst draw.Image, r image.Rectangle) {
	r = r.Intersect(c.Bounds()).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, c, r.Min, draw.Src)
}

// Thumbnail returns the canvas scaled to fit within w×h, preserving the
// aspect ratio.
func (c *Canvas) Thumbnail(w, h int) *image.NRGBA {
	if c.width == 0 || c.height == 0 || w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	scale := min(float64(w)/float64(c.width), float64(h)/float64(c.height))
	tw := max(1, int(float64(c.width)*scale))
	th := max(1, int(float64(c.height)*scale))
	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), c, c.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.width == 0 || c.height == 0 {
		return ErrEmptyCanvas
	}
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.width == 0 || c.height == 0 {
		return ErrEmptyCanvas
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
