package view

import (
	"slices"

	"github.com/gogpu/dataplot"
	"golang.org/x/text/message"
)

// Tooltip describes the hovered point.
type Tooltip struct {
	// Text is the series title, the X and Y values with two decimals
	// and the tag if set, one per line.
	Text string

	// Pos is the pointer position when the hover started.
	Pos dataplot.PointD
}

// tooltipText formats the tooltip for point p of series s.
func tooltipText(pr *message.Printer, s dataplot.Series, p *dataplot.DataPoint) string {
	if p.Tag == nil {
		return pr.Sprintf("%s\nX: %.2f\nY: %.2f", s.Title(), p.X, p.Y)
	}
	return pr.Sprintf("%s\nX: %.2f\nY: %.2f\n%v", s.Title(), p.X, p.Y, p.Tag)
}

// setHover updates the hovered point and notifies only when the
// (series, index) pair changes.
func (v *PlotView) setHover(s dataplot.Series, index int, pos dataplot.PointD) {
	if s == nil {
		index = -1
	}
	if v.hoverSeries == s && v.hoverIndex == index {
		return
	}
	v.hoverSeries, v.hoverIndex = s, index

	e := HoverEvent{Index: -1}
	if s != nil {
		p := s.Points()[index]
		v.tooltip = Tooltip{Text: tooltipText(v.printer, s, p), Pos: pos}
		e = HoverEvent{Series: s, Index: index, Point: p}
	} else {
		v.tooltip = Tooltip{}
	}
	if v.onHover != nil {
		v.onHover(e)
	}
}

// dropStaleHover clears the hovered point when its series is no longer a
// visible member of the model or its index is past the series end, which
// happens after the model is edited in place.
func (v *PlotView) dropStaleHover() {
	s := v.hoverSeries
	if s == nil {
		return
	}
	if s.Visible() && v.hoverIndex < len(s.Points()) && slices.Contains(v.model.Series, s) {
		return
	}
	v.setHover(nil, -1, dataplot.PointD{})
}
