package dataplot

// Transform is an immutable affine mapping between a data-space rectangle
// and a screen-space rectangle. Screen Y grows downward, so data Y is
// flipped around the render rectangle's bottom edge.
//
// The zero Transform maps every point to the origin and is safe to use
// before anything has been rendered. A new viewport or render size needs a
// new Transform; there are no setters.
type Transform struct {
	data   RectD
	render RectD
	valid  bool
}

// NewTransform returns the transform from data onto render.
// Zero or negative spans in either rectangle are replaced by 1.0 so the
// mapping never divides by zero.
func NewTransform(data, render RectD) Transform {
	return Transform{
		data:   sanitizeSpan(data),
		render: sanitizeSpan(render),
		valid:  true,
	}
}

func sanitizeSpan(r RectD) RectD {
	if !(r.Width > 0) {
		r.Width = 1
	}
	if !(r.Height > 0) {
		r.Height = 1
	}
	return r
}

// IsZero reports whether t is the zero (identity-to-origin) transform.
func (t Transform) IsZero() bool {
	return !t.valid
}

// DataRect returns the data-space rectangle after span sanitizing.
func (t Transform) DataRect() RectD { return t.data }

// RenderRect returns the screen-space rectangle after span sanitizing.
func (t Transform) RenderRect() RectD { return t.render }

// DataToScreen maps a data-space point to screen pixels.
func (t Transform) DataToScreen(p PointD) PointD {
	if !t.valid {
		return PointD{}
	}
	return PointD{
		X: t.render.X + (p.X-t.data.X)*t.render.Width/t.data.Width,
		Y: t.render.Bottom() - (p.Y-t.data.Y)*t.render.Height/t.data.Height,
	}
}

// ScreenToData maps screen pixels back to data space.
// It is the exact algebraic inverse of DataToScreen.
func (t Transform) ScreenToData(p PointD) PointD {
	if !t.valid {
		return PointD{}
	}
	return PointD{
		X: t.data.X + (p.X-t.render.X)*t.data.Width/t.render.Width,
		Y: t.data.Y + (t.render.Bottom()-p.Y)*t.data.Height/t.render.Height,
	}
}

// PixelsPerUnit returns the horizontal and vertical scale of t in screen
// pixels per data unit.
func (t Transform) PixelsPerUnit() (sx, sy float64) {
	if !t.valid {
		return 0, 0
	}
	return t.render.Width / t.data.Width, t.render.Height / t.data.Height
}
