package view

import (
	"github.com/gogpu/dataplot"
)

// Wheel zoom factors per notch.
const (
	zoomInFactor  = 0.9
	zoomOutFactor = 1.1
)

// PointerDown handles a button press. Only the left button interacts.
func (v *PlotView) PointerDown(e PointerEvent) {
	if e.Button != ButtonLeft || v.state != Idle {
		return
	}
	if e.ClickCount == 2 {
		v.ZoomToFit()
		return
	}

	switch {
	case e.Modifiers.Has(v.opts.boxModifier) && v.zoomMode.Zooms():
		v.state = BoxZooming
		v.boxStart = e.Pos
		v.box = dataplot.Rect(e.Pos.X, e.Pos.Y, 0, 0)
		v.capture()

	case e.Modifiers.Has(v.opts.selectModifier):
		v.dropStaleHover()
		if v.hoverSeries == nil || v.hoverIndex < 0 {
			return
		}
		s, i := v.hoverSeries, v.hoverIndex
		p := s.Points()[i]
		p.Selected = !p.Selected
		v.capture()
		v.render()
		if v.onSelect != nil {
			v.onSelect(SelectEvent{Series: s, Index: i, Point: p, Button: e.Button})
		}

	default:
		v.state = Panning
		v.lastPos = e.Pos
		v.capture()
	}
}

// PointerMove handles pointer motion: it stretches the rubber band, pans,
// or updates the hovered point, depending on the state.
func (v *PlotView) PointerMove(e PointerEvent) {
	switch v.state {
	case BoxZooming:
		v.box = dataplot.NormalizedRect(v.boxStart, e.Pos)

	case Panning:
		v.pan(e.Pos)

	default:
		v.hover(e.Pos)
	}
}

// PointerUp handles a button release, committing a box zoom if one is in
// progress.
func (v *PlotView) PointerUp(e PointerEvent) {
	if e.Button != ButtonLeft {
		return
	}
	switch v.state {
	case BoxZooming:
		v.box = dataplot.NormalizedRect(v.boxStart, e.Pos)
		box := v.box
		v.endGesture()
		v.commitBox(box)
	default:
		v.endGesture()
	}
}

// PointerLeave clears the hovered point.
func (v *PlotView) PointerLeave() {
	v.setHover(nil, -1, dataplot.PointD{})
}

// Wheel zooms around the pointer on the axes the zoom mode permits.
func (v *PlotView) Wheel(e WheelEvent) {
	if !v.zoomMode.Zooms() || e.Delta == 0 || v.transform.IsZero() || v.viewport.IsEmpty() {
		return
	}
	factor := zoomOutFactor
	if e.Delta > 0 {
		factor = zoomInFactor
	}
	fx, fy := 1.0, 1.0
	if v.zoomMode.ZoomsX() {
		fx = factor
	}
	if v.zoomMode.ZoomsY() {
		fy = factor
	}

	anchor := v.transform.ScreenToData(e.Pos)
	vp := v.viewport
	v.viewport = dataplot.RectD{
		X:      anchor.X - (anchor.X-vp.X)*fx,
		Y:      anchor.Y - (anchor.Y-vp.Y)*fy,
		Width:  vp.Width * fx,
		Height: vp.Height * fy,
	}
	v.render()
}

// pan shifts the viewport by the pointer movement since the last event.
func (v *PlotView) pan(pos dataplot.PointD) {
	delta := v.lastPos.Sub(pos)
	v.lastPos = pos

	rr := v.renderRect
	if rr.Width <= 0 || rr.Height <= 0 || v.viewport.IsEmpty() {
		return
	}
	var dx, dy float64
	if v.zoomMode.ZoomsX() {
		dx = delta.X * v.viewport.Width / rr.Width
	}
	if v.zoomMode.ZoomsY() {
		dy = -delta.Y * v.viewport.Height / rr.Height
	}
	if dx == 0 && dy == 0 {
		return
	}
	v.viewport.X += dx
	v.viewport.Y += dy
	v.render()
}

// hover resolves the nearest point under pos. Positions outside the plot
// area hover nothing.
func (v *PlotView) hover(pos dataplot.PointD) {
	if v.transform.IsZero() || !v.renderRect.Contains(pos) {
		v.setHover(nil, -1, pos)
		return
	}
	s, hit, ok := v.model.FindNearest(pos, v.transform, v.opts.hoverDistance)
	if !ok {
		v.setHover(nil, -1, pos)
		return
	}
	v.setHover(s, hit.Index, pos)
}

// commitBox adopts the data rectangle under box as the viewport along the
// axes the zoom mode permits. Boxes smaller than the minimum are ignored.
func (v *PlotView) commitBox(box dataplot.RectD) {
	if box.Width < v.opts.minBoxZoom || box.Height < v.opts.minBoxZoom {
		v.logger().Debug("view: box zoom discarded", "box", box)
		return
	}
	if v.transform.IsZero() || v.viewport.IsEmpty() {
		return
	}
	p1 := v.transform.ScreenToData(dataplot.Pt(box.Left(), box.Top()))
	p2 := v.transform.ScreenToData(dataplot.Pt(box.Right(), box.Bottom()))
	r := dataplot.NormalizedRect(p1, p2)

	vp := v.viewport
	if !v.zoomMode.ZoomsX() {
		r.X, r.Width = vp.X, vp.Width
	}
	if !v.zoomMode.ZoomsY() {
		r.Y, r.Height = vp.Y, vp.Height
	}
	v.viewport = r
	v.render()
}

// endGesture returns to Idle and releases pointer capture.
func (v *PlotView) endGesture() {
	v.state = Idle
	v.box = dataplot.RectD{}
	if !v.captured {
		return
	}
	v.captured = false
	if pc, ok := v.host.(PointerCapturer); ok {
		pc.ReleasePointer()
	}
}

func (v *PlotView) capture() {
	if v.captured {
		return
	}
	v.captured = true
	if pc, ok := v.host.(PointerCapturer); ok {
		pc.CapturePointer()
	}
}
