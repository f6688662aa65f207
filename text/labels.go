package text

import "image"

// Label is a measured, and possibly rasterized, piece of text.
type Label struct {
	Text   string
	Size   float64
	Width  float64
	Height float64

	// Mask is nil when the pool has no Rasterizer.
	Mask *image.Alpha
}

type labelKey struct {
	text string
	size float64
}

type labelEntry struct {
	label *Label
	frame uint64
}

// LabelPool reuses labels across frames, keyed by text and font size.
//
// A frame is bracketed by Begin and End. Labels requested during the frame
// survive End; the rest are released. LabelPool is not safe for concurrent
// use.
type LabelPool struct {
	measurer   Measurer
	rasterizer Rasterizer

	entries map[labelKey]*labelEntry
	frame   uint64
}

// NewLabelPool creates a pool measuring with m. When r is non-nil labels
// are also rasterized with it; r's measurement is ignored in favor of m so
// that layout does not depend on whether text is drawn.
func NewLabelPool(m Measurer, r Rasterizer) *LabelPool {
	if m == nil {
		m = Approx{}
	}
	return &LabelPool{
		measurer:   m,
		rasterizer: r,
		entries:    make(map[labelKey]*labelEntry),
	}
}

// Begin starts a frame.
func (p *LabelPool) Begin() {
	p.frame++
}

// Get returns the label for s at size, creating it on first use.
func (p *LabelPool) Get(s string, size float64) *Label {
	k := labelKey{text: s, size: size}
	if e, ok := p.entries[k]; ok {
		e.frame = p.frame
		return e.label
	}

	l := &Label{Text: s, Size: size}
	l.Width, l.Height = p.measurer.Measure(s, size)
	if p.rasterizer != nil {
		l.Mask = p.rasterizer.Rasterize(s, size)
	}
	p.entries[k] = &labelEntry{label: l, frame: p.frame}
	return l
}

// End finishes a frame, releasing labels not requested since Begin. It
// returns the number released.
func (p *LabelPool) End() int {
	n := 0
	for k, e := range p.entries {
		if e.frame != p.frame {
			delete(p.entries, k)
			n++
		}
	}
	return n
}

// Len returns the number of pooled labels.
func (p *LabelPool) Len() int {
	return len(p.entries)
}

// Reset releases every label.
func (p *LabelPool) Reset() {
	clear(p.entries)
}
