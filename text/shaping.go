package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// ShapingMeasurer measures text with HarfBuzz shaping via
// go-text/typesetting, so kerning and ligatures count toward the width.
// It does not rasterize.
//
// ShapingMeasurer is safe for concurrent use. The parsed font is
// read-only; the shaper holds a mutable buffer and is guarded by a mutex.
type ShapingMeasurer struct {
	font *font.Font
	lang language.Language

	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
}

// NewShapingMeasurer parses TTF or OTF font data.
func NewShapingMeasurer(data []byte) (*ShapingMeasurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ShapingMeasurer{font: face.Font, lang: language.NewLanguage("en")}, nil
}

// Measure implements Measurer. The height is the shaped run's ascent plus
// descent.
func (m *ShapingMeasurer) Measure(s string, size float64) (width, height float64) {
	if s == "" || !(size > 0) {
		return 0, 0
	}
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.font),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  m.lang,
	}

	m.mu.Lock()
	out := m.shaper.Shape(input)
	m.mu.Unlock()

	return fixedToFloat(out.Advance), fixedToFloat(out.LineBounds.Ascent - out.LineBounds.Descent)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
