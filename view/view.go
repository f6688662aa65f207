package view

import (
	"log/slog"

	"github.com/gogpu/dataplot"
	"github.com/gogpu/dataplot/canvas"
	"github.com/gogpu/dataplot/text"
	"golang.org/x/text/message"
)

// PlotView renders a dataplot.Model onto a canvas and handles pan, zoom,
// hover and selection input.
type PlotView struct {
	host Host
	opts options

	model    *dataplot.Model
	zoomMode dataplot.ZoomMode

	canvas  *canvas.Canvas
	labels  *text.LabelPool
	printer *message.Printer

	// viewport is dataplot.EmptyRect until the first render after a reset.
	viewport   dataplot.RectD
	transform  dataplot.Transform
	renderRect dataplot.RectD
	margins    dataplot.ThicknessD
	placed     []PlacedLabel

	state    State
	captured bool
	boxStart dataplot.PointD
	box      dataplot.RectD
	lastPos  dataplot.PointD

	hoverSeries dataplot.Series
	hoverIndex  int
	tooltip     Tooltip

	onHover  func(HoverEvent)
	onSelect func(SelectEvent)
}

// New creates a PlotView bound to host. The view does not render until
// Invalidate or another call that changes what is shown.
func New(host Host, opts ...Option) *PlotView {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &PlotView{
		host:       host,
		opts:       o,
		canvas:     canvas.New(0, 0),
		printer:    message.NewPrinter(o.language),
		viewport:   dataplot.EmptyRect,
		margins:    o.padding,
		hoverIndex: -1,
	}
	v.labels = text.NewLabelPool(v.resolveText())

	v.model = o.model
	if v.model == nil {
		v.model = dataplot.EmptyModel()
	}
	v.zoomMode = v.model.ZoomMode
	if o.zoomModeSet {
		v.zoomMode = o.zoomMode
	}
	return v
}

// resolveText picks the measurer and rasterizer from the options, falling
// back to the bundled font and then to the approximate measurer.
func (v *PlotView) resolveText() (text.Measurer, text.Rasterizer) {
	m, r := v.opts.measurer, v.opts.rasterizer
	switch {
	case m != nil:
		return m, r
	case r != nil:
		return r, r
	}
	ts, err := text.Default()
	if err != nil {
		v.logger().Warn("view: default typesetter unavailable, labels are not drawn", "err", err)
		return text.Approx{}, nil
	}
	return ts, ts
}

func (v *PlotView) logger() *slog.Logger {
	if v.opts.logger != nil {
		return v.opts.logger
	}
	return dataplot.Logger()
}

// Model returns the bound model.
func (v *PlotView) Model() *dataplot.Model {
	return v.model
}

// SetModel binds m, adopts its zoom mode, resets the viewport and hover,
// and re-renders. A nil model shows dataplot.EmptyModel.
func (v *PlotView) SetModel(m *dataplot.Model) {
	if m == nil {
		m = dataplot.EmptyModel()
	}
	v.model = m
	v.zoomMode = m.ZoomMode
	v.viewport = dataplot.EmptyRect
	v.endGesture()
	v.setHover(nil, -1, dataplot.PointD{})
	v.labels.Reset()
	v.render()
}

// ZoomMode returns the active zoom mode.
func (v *PlotView) ZoomMode() dataplot.ZoomMode {
	return v.zoomMode
}

// SetZoomMode changes which axes pan and zoom act on. Switching to
// dataplot.ZoomNone also zooms to fit.
func (v *PlotView) SetZoomMode(m dataplot.ZoomMode) {
	v.zoomMode = m
	if m == dataplot.ZoomNone {
		v.ZoomToFit()
	}
}

// Viewport returns the data rectangle currently shown, or
// dataplot.EmptyRect before the first render.
func (v *PlotView) Viewport() dataplot.RectD {
	return v.viewport
}

// SetViewport shows r and re-renders. dataplot.EmptyRect fits the data.
func (v *PlotView) SetViewport(r dataplot.RectD) {
	v.viewport = r
	v.render()
}

// ZoomToFit resets the viewport to the model's data and re-renders.
func (v *PlotView) ZoomToFit() {
	v.viewport = dataplot.EmptyRect
	v.render()
}

// Invalidate re-renders. Hosts call it when the pixel size changes or the
// view becomes visible, and after mutating the model in place.
func (v *PlotView) Invalidate() {
	v.render()
}

// OnHoverChanged registers fn to be called when the hovered point changes.
func (v *PlotView) OnHoverChanged(fn func(HoverEvent)) {
	v.onHover = fn
}

// OnPointSelected registers fn to be called when a point is toggled.
func (v *PlotView) OnPointSelected(fn func(SelectEvent)) {
	v.onSelect = fn
}

// State returns the interaction state.
func (v *PlotView) State() State {
	return v.state
}

// Transform returns the transform of the last render. It is the zero
// Transform before the first render.
func (v *PlotView) Transform() dataplot.Transform {
	return v.transform
}

// RenderRect returns the plot area of the last render in pixels.
func (v *PlotView) RenderRect() dataplot.RectD {
	return v.renderRect
}

// Margins returns the space around the plot area of the last render.
func (v *PlotView) Margins() dataplot.ThicknessD {
	return v.margins
}

// Canvas returns the canvas the view renders into.
func (v *PlotView) Canvas() *canvas.Canvas {
	return v.canvas
}

// Labels returns the text placed by the last render, in drawing order.
func (v *PlotView) Labels() []PlacedLabel {
	return v.placed
}

// Hovered returns the hovered series and point index, or nil and -1.
func (v *PlotView) Hovered() (dataplot.Series, int) {
	return v.hoverSeries, v.hoverIndex
}

// Tooltip returns the tooltip for the hovered point, if any.
func (v *PlotView) Tooltip() (Tooltip, bool) {
	return v.tooltip, v.hoverSeries != nil
}

// BoxOverlay returns the rubber band rectangle in pixels while a box zoom
// is in progress.
func (v *PlotView) BoxOverlay() (dataplot.RectD, bool) {
	return v.box, v.state == BoxZooming
}
