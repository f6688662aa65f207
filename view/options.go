package view

import (
	"log/slog"

	"github.com/gogpu/dataplot"
	"github.com/gogpu/dataplot/text"
	"golang.org/x/text/language"
)

// Option configures a PlotView during creation.
//
// Example:
//
//	v := view.New(host,
//	    view.WithModel(model),
//	    view.WithPadding(dataplot.ThicknessD{Left: 80, Top: 20, Right: 20, Bottom: 60}),
//	)
type Option func(*options)

// options holds optional configuration for PlotView creation.
type options struct {
	model       *dataplot.Model
	zoomMode    dataplot.ZoomMode
	zoomModeSet bool

	padding        dataplot.ThicknessD
	background     dataplot.Color
	gridColor      dataplot.Color
	borderColor    dataplot.Color
	fontColor      dataplot.Color
	selectionColor dataplot.Color
	tickFontSize   float64
	titleFontSize  float64

	marginX, marginY float64
	tickCount        int
	defaultViewport  dataplot.RectD

	measurer   text.Measurer
	rasterizer text.Rasterizer
	language   language.Tag

	hoverDistance  float64
	minBoxZoom     float64
	boxModifier    Modifiers
	selectModifier Modifiers

	logger *slog.Logger
}

// defaultOptions returns the default view options.
func defaultOptions() options {
	return options{
		padding:         dataplot.ThicknessD{Left: 60, Top: 30, Right: 30, Bottom: 50},
		background:      dataplot.WhiteSmoke,
		gridColor:       dataplot.ARGB(40, 0, 0, 0),
		borderColor:     dataplot.Black,
		fontColor:       dataplot.Black,
		selectionColor:  dataplot.DodgerBlue,
		tickFontSize:    12,
		titleFontSize:   14,
		marginX:         0.05,
		marginY:         0.05,
		tickCount:       dataplot.DefaultTickCount,
		defaultViewport: dataplot.Rect(0, 0, 1, 1),
		language:        language.English,
		hoverDistance:   dataplot.DefaultHoverDistance,
		minBoxZoom:      10,
		boxModifier:     ModShift,
		selectModifier:  ModCtrl,
	}
}

// WithModel sets the initial model. Without it the view shows
// dataplot.EmptyModel.
func WithModel(m *dataplot.Model) Option {
	return func(o *options) {
		o.model = m
	}
}

// WithZoomMode overrides the zoom mode taken from the initial model.
func WithZoomMode(m dataplot.ZoomMode) Option {
	return func(o *options) {
		o.zoomMode = m
		o.zoomModeSet = true
	}
}

// WithPadding sets the minimum space around the plot area. Left and right
// grow beyond it when axis labels need more room.
func WithPadding(p dataplot.ThicknessD) Option {
	return func(o *options) {
		o.padding = p
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c dataplot.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithGridColor sets the gridline color.
func WithGridColor(c dataplot.Color) Option {
	return func(o *options) {
		o.gridColor = c
	}
}

// WithBorderColor sets the plot area outline color.
func WithBorderColor(c dataplot.Color) Option {
	return func(o *options) {
		o.borderColor = c
	}
}

// WithFontColor sets the color of tick labels and axis titles.
func WithFontColor(c dataplot.Color) Option {
	return func(o *options) {
		o.fontColor = c
	}
}

// WithSelectionColor sets the fill of selected points.
func WithSelectionColor(c dataplot.Color) Option {
	return func(o *options) {
		o.selectionColor = c
	}
}

// WithFontSize sets the tick label and axis title font sizes in pixels.
// Non-positive sizes are ignored.
func WithFontSize(tick, title float64) Option {
	return func(o *options) {
		if tick > 0 {
			o.tickFontSize = tick
		}
		if title > 0 {
			o.titleFontSize = title
		}
	}
}

// WithDataMargin sets the fraction of the data span added on each side
// when the viewport is fitted to the data.
func WithDataMargin(fx, fy float64) Option {
	return func(o *options) {
		o.marginX = max(fx, 0)
		o.marginY = max(fy, 0)
	}
}

// WithTickCount sets the target maximum number of ticks per axis.
func WithTickCount(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.tickCount = n
		}
	}
}

// WithDefaultViewport sets the viewport used when the model has no
// visible data.
func WithDefaultViewport(r dataplot.RectD) Option {
	return func(o *options) {
		o.defaultViewport = r
	}
}

// WithMeasurer sets the text measurer used for layout. When no rasterizer
// is configured, labels are laid out but not drawn; the host can draw them
// from PlotView.Labels.
func WithMeasurer(m text.Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithLabelRasterizer sets the rasterizer that draws labels onto the
// canvas. It also measures unless WithMeasurer is given.
func WithLabelRasterizer(r text.Rasterizer) Option {
	return func(o *options) {
		o.rasterizer = r
	}
}

// WithLanguage sets the locale used to format tooltip numbers.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.language = tag
	}
}

// WithHoverDistance sets the hover radius in pixels for line series.
// Scatter series use their point size.
func WithHoverDistance(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.hoverDistance = px
		}
	}
}

// WithMinBoxZoom sets the smallest rubber band, in pixels per side, that
// zooms on release. Smaller bands are treated as clicks.
func WithMinBoxZoom(px float64) Option {
	return func(o *options) {
		o.minBoxZoom = max(px, 0)
	}
}

// WithModifiers sets the modifier keys that start a box zoom and select a
// point.
func WithModifiers(box, sel Modifiers) Option {
	return func(o *options) {
		o.boxModifier = box
		o.selectModifier = sel
	}
}

// WithLogger sets a logger for this view instead of dataplot.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
