// Package view implements PlotView, the interactive controller that turns a
// dataplot.Model into pixels and pointer input into viewport changes.
//
// A PlotView is bound to a Host that reports the available pixel size. The
// host forwards pointer and wheel input to the view and, if it implements
// Presenter, receives the rendered canvas with the region that changed.
//
// # Interaction
//
//   - Drag pans the viewport along the axes the zoom mode permits.
//   - Shift+drag draws a rubber band and zooms to it on release.
//   - Wheel zooms in or out around the pointer.
//   - Ctrl+click toggles selection of the hovered point.
//   - Double-click zooms to fit the data.
//
// # Example usage
//
//	v := view.New(host,
//	    view.WithModel(dataplot.NewRandomModel(1)),
//	    view.WithZoomMode(dataplot.ZoomXY),
//	)
//	v.OnHoverChanged(func(e view.HoverEvent) {
//	    if tip, ok := v.Tooltip(); ok {
//	        showTooltip(tip.Text, tip.Pos)
//	    }
//	})
//	v.Invalidate()
//
// PlotView is not safe for concurrent use. All calls, including input,
// must come from the host's event goroutine.
package view
