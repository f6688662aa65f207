package view

import (
	"image"
	"math"

	"github.com/gogpu/dataplot"
	"github.com/gogpu/dataplot/canvas"
	"github.com/gogpu/dataplot/text"
)

const (
	// scatterBorder is the outline thickness of scatter points.
	scatterBorder = 0.5

	// lineMarkerRadius is the radius of the marker drawn on selected
	// line series points.
	lineMarkerRadius = 4.0
)

// PlacedLabel is a piece of text positioned by the last render.
type PlacedLabel struct {
	Text     string
	FontSize float64

	// Bounds is the pixel box the text occupies, after rotation.
	Bounds dataplot.RectD

	// Rotated is set for text that reads bottom to top.
	Rotated bool
}

// render redraws the whole plot and presents it to the host.
func (v *PlotView) render() {
	v.dropStaleHover()
	if v.host == nil {
		return
	}
	w, h := v.host.PixelSize()
	if w < minRenderSize || h < minRenderSize {
		v.logger().Debug("view: host too small to render", "width", w, "height", h)
		return
	}

	if v.viewport.IsEmpty() {
		v.viewport = v.fitViewport()
		v.logger().Debug("view: viewport reset", "viewport", v.viewport)
	}
	data := sanitize(v.viewport)

	v.labels.Begin()
	defer v.labels.End()
	v.placed = v.placed[:0]

	xTicks, xLabels := dataplot.GenerateTicks(data.Left(), data.Right(), v.opts.tickCount)
	yTicks, yLabels := dataplot.GenerateTicks(data.Top(), data.Bottom(), v.opts.tickCount)

	v.margins = v.layoutMargins(yLabels)
	v.canvas.Resize(w, h)
	v.renderRect = dataplot.Rect(
		v.margins.Left, v.margins.Top,
		math.Max(0, float64(w)-v.margins.Left-v.margins.Right),
		math.Max(0, float64(h)-v.margins.Top-v.margins.Bottom),
	)
	v.transform = dataplot.NewTransform(data, v.renderRect)

	c := v.canvas
	dirty := c.Clear(v.opts.background)

	c.SetClip(plotClip(v.renderRect))
	v.drawGrid(xTicks, yTicks)
	v.drawSeries()
	c.ResetClip()

	rr := v.renderRect
	dirty = dirty.Union(c.DrawRectangle(rr.Left(), rr.Top(), rr.Right(), rr.Bottom(), v.opts.borderColor, 1))
	dirty = dirty.Union(v.drawAxes(xTicks, xLabels, yTicks, yLabels))

	if p, ok := v.host.(Presenter); ok {
		p.Present(c, dirty)
	}
}

// plotClip returns the pixel rectangle covering r, edges included.
func plotClip(r dataplot.RectD) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left())), int(math.Floor(r.Top())),
		int(math.Ceil(r.Right()))+1, int(math.Ceil(r.Bottom()))+1,
	)
}

func (v *PlotView) drawGrid(xTicks, yTicks []float64) {
	rr := v.renderRect
	col := v.opts.gridColor
	for _, t := range xTicks {
		x := v.transform.DataToScreen(dataplot.Pt(t, 0)).X
		v.canvas.DrawLine(x, rr.Top(), x, rr.Bottom(), col, 1)
	}
	for _, t := range yTicks {
		y := v.transform.DataToScreen(dataplot.Pt(0, t)).Y
		v.canvas.DrawLine(rr.Left(), y, rr.Right(), y, col, 1)
	}
}

func (v *PlotView) drawSeries() {
	for _, s := range v.model.Series {
		if !s.Visible() {
			continue
		}
		switch s := s.(type) {
		case *dataplot.LineSeries:
			v.drawLineSeries(s)
		case *dataplot.ScatterSeries:
			v.drawScatterSeries(s)
		}
	}
}

func (v *PlotView) drawLineSeries(s *dataplot.LineSeries) {
	pts := s.Points()
	for i := 1; i < len(pts); i++ {
		p0 := v.transform.DataToScreen(pts[i-1].Pos())
		p1 := v.transform.DataToScreen(pts[i].Pos())
		v.canvas.DrawLine(p0.X, p0.Y, p1.X, p1.Y, s.Stroke, s.Thickness)
	}
	for _, p := range pts {
		if p.Selected {
			sp := v.transform.DataToScreen(p.Pos())
			v.canvas.FillCircleBordered(sp.X, sp.Y, lineMarkerRadius, v.opts.selectionColor, s.Stroke, scatterBorder)
		}
	}
}

func (v *PlotView) drawScatterSeries(s *dataplot.ScatterSeries) {
	for _, p := range s.Points() {
		sp := v.transform.DataToScreen(p.Pos())
		fill := s.Fill
		if p.Selected {
			fill = v.opts.selectionColor
		}
		v.canvas.FillCircleBordered(sp.X, sp.Y, s.PointSize, fill, s.Stroke, scatterBorder)
	}
}

// drawAxes draws tick marks, tick labels and titles of every visible axis.
func (v *PlotView) drawAxes(xTicks []float64, xLabels []string, yTicks []float64, yLabels []string) image.Rectangle {
	var dirty image.Rectangle
	for _, a := range v.model.Axes {
		if !a.Visible {
			continue
		}
		if a.Position.Vertical() {
			dirty = dirty.Union(v.drawVerticalAxis(a, yTicks, yLabels))
		} else {
			dirty = dirty.Union(v.drawHorizontalAxis(a, xTicks, xLabels))
		}
	}
	return dirty
}

func (v *PlotView) drawHorizontalAxis(a *dataplot.Axis, ticks []float64, labels []string) image.Rectangle {
	rr := v.renderRect
	// Edge is the axis line, dir points away from the plot area.
	edge, dir := rr.Bottom(), 1.0
	if a.Position == dataplot.AxisTop {
		edge, dir = rr.Top(), -1.0
	}

	var dirty image.Rectangle
	for i, t := range ticks {
		x := v.transform.DataToScreen(dataplot.Pt(t, 0)).X
		dirty = dirty.Union(v.canvas.DrawLine(x, edge, x, edge-dir*a.TickLength, a.Color, 1))

		l := v.labels.Get(labels[i], v.opts.tickFontSize)
		cy := edge + dir*hTickLabelOffset
		dirty = dirty.Union(v.place(l, x-l.Width/2, cy-l.Height/2, false))
	}

	if a.Title != "" {
		l := v.labels.Get(a.Title, v.opts.titleFontSize)
		cx := rr.Left() + rr.Width/2
		cy := edge + dir*a.TitleOffset
		dirty = dirty.Union(v.place(l, cx-l.Width/2, cy-l.Height/2, false))
	}
	return dirty
}

func (v *PlotView) drawVerticalAxis(a *dataplot.Axis, ticks []float64, labels []string) image.Rectangle {
	rr := v.renderRect
	edge, dir := rr.Left(), -1.0
	if a.Position == dataplot.AxisRight {
		edge, dir = rr.Right(), 1.0
	}

	var dirty image.Rectangle
	widest := 0.0
	for i, t := range ticks {
		y := v.transform.DataToScreen(dataplot.Pt(0, t)).Y
		dirty = dirty.Union(v.canvas.DrawLine(edge, y, edge-dir*a.TickLength, y, a.Color, 1))

		l := v.labels.Get(labels[i], v.opts.tickFontSize)
		widest = math.Max(widest, l.Width)
		x := edge + tickLabelGap
		if dir < 0 {
			x = edge - tickLabelGap - l.Width
		}
		dirty = dirty.Union(v.place(l, x, y-l.Height/2, false))
	}

	if a.Title != "" {
		l := v.labels.Get(a.Title, v.opts.titleFontSize)
		// Rotated, the title is l.Height wide and l.Width tall.
		cx := edge + dir*(tickLabelGap+widest+titleGap+l.Height/2)
		cy := rr.Top() + rr.Height/2
		dirty = dirty.Union(v.place(l, cx-l.Height/2, cy-l.Width/2, true))
	}
	return dirty
}

// place records l at the top-left position (x, y) and draws it when it has
// been rasterized.
func (v *PlotView) place(l *text.Label, x, y float64, rotated bool) image.Rectangle {
	b := dataplot.Rect(x, y, l.Width, l.Height)
	if rotated {
		b = dataplot.Rect(x, y, l.Height, l.Width)
	}
	v.placed = append(v.placed, PlacedLabel{Text: l.Text, FontSize: l.Size, Bounds: b, Rotated: rotated})

	if l.Mask == nil {
		return image.Rectangle{}
	}
	rot := canvas.Rotate0
	if rotated {
		rot = canvas.Rotate90
	}
	return v.canvas.BlendMask(l.Mask, int(math.Round(x)), int(math.Round(y)), v.opts.fontColor, rot)
}
