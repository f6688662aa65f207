package text

import (
	"image"
	"unicode/utf8"

	"golang.org/x/image/math/fixed"
)

// Measurer reports the extent of a single line of text in pixels.
// Width is the advance width, height the line height.
type Measurer interface {
	Measure(s string, size float64) (width, height float64)
}

// Rasterizer is a Measurer that can also render text.
//
// Rasterize returns a coverage mask with its origin at the top-left of the
// line box, ceil(width) by ceil(height) pixels, or nil for empty text.
type Rasterizer interface {
	Measurer
	Rasterize(s string, size float64) *image.Alpha
}

// Approx measures text without a font, assuming every rune is 0.6em wide
// and lines are 1.2em tall.
type Approx struct{}

// Measure implements Measurer.
func (Approx) Measure(s string, size float64) (width, height float64) {
	if s == "" || !(size > 0) {
		return 0, 0
	}
	return 0.6 * size * float64(utf8.RuneCountInString(s)), 1.2 * size
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
