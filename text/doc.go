// Package text measures and rasterizes the short single-line labels a plot
// draws: tick labels, axis titles and tooltips.
//
// A Measurer reports the pixel extent of a string at a font size. A
// Rasterizer additionally renders it into an alpha coverage mask that
// canvas.BlendMask composites onto the plot.
//
// Two font-backed implementations are provided:
//
//   - Typesetter: golang.org/x/image/font/opentype, measures and rasterizes
//   - ShapingMeasurer: go-text/typesetting HarfBuzz shaping, measures only
//
// Default returns a Typesetter for the bundled Go Regular font.
//
// # Example usage
//
//	ts, err := text.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, h := ts.Measure("12.5", 12)
//	mask := ts.Rasterize("12.5", 12)
//
// LabelPool caches measured and rasterized labels keyed by text and font
// size across frames, so redrawing an unchanged axis does no font work.
package text
