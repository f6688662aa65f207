package text

import (
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Typesetter measures and rasterizes text with one OpenType font.
//
// Faces are created lazily per font size and cached. Typesetter is safe
// for concurrent use; calls are serialized because opentype faces are not.
type Typesetter struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewTypesetter parses TTF or OTF font data.
func NewTypesetter(data []byte) (*Typesetter, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &Typesetter{font: f, faces: make(map[float64]font.Face)}, nil
}

var defaultTypesetter = sync.OnceValues(func() (*Typesetter, error) {
	return NewTypesetter(goregular.TTF)
})

// Default returns the shared Typesetter for the Go Regular font.
func Default() (*Typesetter, error) {
	return defaultTypesetter()
}

// face returns the cached face for size. t.mu must be held.
func (t *Typesetter) face(size float64) (font.Face, error) {
	if f, ok := t.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: face at size %v: %w", size, err)
	}
	t.faces[size] = f
	return f, nil
}

// Measure implements Measurer. Text that cannot be measured has zero
// extent.
func (t *Typesetter) Measure(s string, size float64) (width, height float64) {
	if s == "" || !(size > 0) {
		return 0, 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := t.face(size)
	if err != nil {
		return 0, 0
	}
	m := f.Metrics()
	return fixedToFloat(font.MeasureString(f, s)), fixedToFloat(m.Ascent + m.Descent)
}

// Rasterize implements Rasterizer. The baseline sits at the face ascent,
// rounded up to a whole pixel.
func (t *Typesetter) Rasterize(s string, size float64) *image.Alpha {
	if s == "" || !(size > 0) {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := t.face(size)
	if err != nil {
		return nil
	}
	m := f.Metrics()
	w := int(math.Ceil(fixedToFloat(font.MeasureString(f, s))))
	h := int(math.Ceil(fixedToFloat(m.Ascent + m.Descent)))
	if w <= 0 || h <= 0 {
		return nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: f,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(m.Ascent.Ceil())},
	}
	d.DrawString(s)
	return mask
}

// Close releases the cached faces. The Typesetter remains usable.
func (t *Typesetter) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for size, f := range t.faces {
		_ = f.Close()
		delete(t.faces, size)
	}
	return nil
}
