// Package dataplot provides the data model and coordinate pipeline of an
// interactive 2D chart.
//
// # Overview
//
// dataplot maps data-space series (line and scatter plots) onto a pixel
// raster. The root package holds the pieces that carry no rendering
// state: geometry value types, colors, the tick generator, the
// data↔screen [Transform], series with nearest-point hit testing, and the
// [Model] that aggregates them.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/dataplot"
//		"github.com/gogpu/dataplot/view"
//	)
//
//	m := dataplot.NewModel()
//	line := dataplot.NewLineSeries("sine")
//	for i := 0; i < 100; i++ {
//		x := float64(i) / 10
//		line.Add(x, math.Sin(x), nil)
//	}
//	m.Series = append(m.Series, line)
//
//	pv := view.New(host, view.WithModel(m))
//	pv.Invalidate()
//	pv.Canvas().SavePNG("plot.png")
//
// # Architecture
//
// The module is organized into:
//   - dataplot: geometry, Color, GenerateTicks, Transform, Series, Model
//   - canvas: the BGRA pixel buffer and its anti-aliased primitives
//   - text: text measurement, label rasterization and label pooling
//   - view: the PlotView controller (render pipeline and pan/zoom/hover
//     state machine)
//
// # Coordinate System
//
// Data space is whatever units the series carry, Y increasing upward.
// Screen space is device pixels with the origin at the top-left and Y
// increasing downward. A [Transform] converts between the two.
//
// # Concurrency
//
// Everything here is single-threaded. A view and its model are mutated
// from one goroutine, the one that delivers input events.
package dataplot

// Version is the current version of the library.
const Version = "0.1.0"
