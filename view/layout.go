package view

import (
	"math"

	"github.com/gogpu/dataplot"
)

const (
	// minRenderSize is the smallest host width and height that renders.
	minRenderSize = 10

	// tickLabelGap separates vertical-axis tick labels from the axis.
	tickLabelGap = 12.0

	// hTickLabelOffset is the distance from a horizontal axis to the
	// center line of its tick labels.
	hTickLabelOffset = 8.0

	// titleGap separates a vertical-axis title from its tick labels.
	titleGap = 8.0

	// edgeGap is kept free between a vertical-axis title and the edge.
	edgeGap = 4.0
)

// fitViewport derives a viewport from the model's data, expanded by the
// data margin. A zero span is widened to one unit around the data. An
// empty model yields the default viewport.
func (v *PlotView) fitViewport() dataplot.RectD {
	r := v.model.DataRect()
	if r.IsEmpty() {
		v.logger().Debug("view: no visible data, using default viewport", "viewport", v.opts.defaultViewport)
		return v.opts.defaultViewport
	}
	r = r.Expand(v.opts.marginX, v.opts.marginY)
	if r.Width == 0 {
		r.X -= 0.5
		r.Width = 1
	}
	if r.Height == 0 {
		r.Y -= 0.5
		r.Height = 1
	}
	return r
}

// sanitize substitutes 1 for non-positive spans, as Transform does.
func sanitize(r dataplot.RectD) dataplot.RectD {
	if !(r.Width > 0) {
		r.Width = 1
	}
	if !(r.Height > 0) {
		r.Height = 1
	}
	return r
}

// settleMargin returns the next margin for one side. It grows at once to
// the whole pixel that fits need, and shrinks only when need falls back to
// floor, so small fluctuations in label width do not move the plot area.
func settleMargin(current, floor, need float64) float64 {
	need = math.Ceil(need)
	switch {
	case need > current:
		return need
	case need <= floor:
		return floor
	default:
		return current
	}
}

// verticalAxisNeed returns the margin a vertical axis needs for its
// widest tick label and its title.
func (v *PlotView) verticalAxisNeed(a *dataplot.Axis, labels []string) float64 {
	widest := 0.0
	for _, s := range labels {
		widest = math.Max(widest, v.labels.Get(s, v.opts.tickFontSize).Width)
	}
	need := tickLabelGap + widest + edgeGap
	if a.Title != "" {
		// The title is rotated, so its height is horizontal extent.
		need += titleGap + v.labels.Get(a.Title, v.opts.titleFontSize).Height
	}
	return need
}

// layoutMargins computes the margins for this frame from the Y tick
// labels of every visible vertical axis.
func (v *PlotView) layoutMargins(yLabels []string) dataplot.ThicknessD {
	pad := v.opts.padding
	need := pad
	for _, a := range v.model.Axes {
		if !a.Visible || !a.Position.Vertical() {
			continue
		}
		n := v.verticalAxisNeed(a, yLabels)
		if a.Position == dataplot.AxisLeft {
			need.Left = math.Max(need.Left, n)
		} else {
			need.Right = math.Max(need.Right, n)
		}
	}

	next := dataplot.ThicknessD{
		Left:   settleMargin(v.margins.Left, pad.Left, need.Left),
		Top:    settleMargin(v.margins.Top, pad.Top, need.Top),
		Right:  settleMargin(v.margins.Right, pad.Right, need.Right),
		Bottom: settleMargin(v.margins.Bottom, pad.Bottom, need.Bottom),
	}
	if next != v.margins {
		v.logger().Debug("view: margins changed", "from", v.margins, "to", next)
	}
	return next
}
