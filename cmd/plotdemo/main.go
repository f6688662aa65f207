// Command plotdemo renders the sample data set, replays a short scripted
// interaction against the view, and saves the result as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/dataplot"
	"github.com/gogpu/dataplot/canvas"
	"github.com/gogpu/dataplot/text"
	"github.com/gogpu/dataplot/view"
	"golang.org/x/image/font/gofont/goregular"
)

// host is an offscreen window: a fixed pixel size and a front buffer the
// view presents into.
type host struct {
	w, h   int
	front  *image.NRGBA
	frames int
}

func (h *host) PixelSize() (int, int) { return h.w, h.h }

func (h *host) Present(c *canvas.Canvas, dirty image.Rectangle) {
	if h.front == nil || h.front.Bounds() != c.Bounds() {
		h.front = image.NewNRGBA(c.Bounds())
	}
	c.CopyTo(h.front, dirty)
	h.frames++
}

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "plot.png", "output file")
		thumb   = flag.String("thumbnail", "", "optional 200x150 thumbnail file")
		seed    = flag.Uint64("seed", 1, "random data seed")
		shaped  = flag.Bool("shaping", false, "measure labels with HarfBuzz shaping")
		verbose = flag.Bool("v", false, "log view decisions to stderr")
		version = flag.Bool("version", false, "print the library version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("dataplot", dataplot.Version)
		return
	}
	if *verbose {
		dataplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	size := dataplot.SizeI{Width: *width, Height: *height}
	if size.Empty() {
		log.Fatalf("Invalid size %dx%d", size.Width, size.Height)
	}

	opts := []view.Option{view.WithModel(dataplot.NewRandomModel(*seed))}
	if *shaped {
		textOpts, err := shapingOptions()
		if err != nil {
			log.Fatalf("Failed to load shaping font: %v", err)
		}
		opts = append(opts, textOpts...)
	}

	h := &host{w: size.Width, h: size.Height}
	v := view.New(h, opts...)
	v.OnHoverChanged(func(e view.HoverEvent) {
		if tip, ok := v.Tooltip(); ok {
			log.Printf("hover:\n%s", tip.Text)
		}
	})
	v.OnPointSelected(func(e view.SelectEvent) {
		log.Printf("selected %q point %d: %v", e.Series.Title(), e.Index, e.Point.Selected)
	})
	v.Invalidate()

	replay(v)

	if err := v.Canvas().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if *thumb != "" {
		if err := saveThumbnail(v.Canvas(), *thumb); err != nil {
			log.Fatalf("Failed to save thumbnail: %v", err)
		}
	}

	log.Printf("Plot saved to %s (%dx%d, %d frames, viewport %v)\n",
		*output, size.Width, size.Height, h.frames, v.Viewport())
}

// shapingOptions measures labels with the HarfBuzz shaper and draws them
// with the default typesetter.
func shapingOptions() ([]view.Option, error) {
	sm, err := text.NewShapingMeasurer(goregular.TTF)
	if err != nil {
		return nil, err
	}
	ts, err := text.Default()
	if err != nil {
		return nil, err
	}
	return []view.Option{view.WithMeasurer(sm), view.WithLabelRasterizer(ts)}, nil
}

// replay drives the view the way a user would: zoom in with the wheel,
// pan, box-zoom, then hover and ctrl-click the first scatter point.
func replay(v *view.PlotView) {
	rr := v.RenderRect()
	center := rr.Center()

	for i := 0; i < 3; i++ {
		v.Wheel(view.WheelEvent{Pos: center, Delta: 120})
	}

	v.PointerDown(view.PointerEvent{Pos: center, Button: view.ButtonLeft, ClickCount: 1})
	v.PointerMove(view.PointerEvent{Pos: center.Add(dataplot.Pt(40, -25))})
	v.PointerUp(view.PointerEvent{Pos: center.Add(dataplot.Pt(40, -25)), Button: view.ButtonLeft})

	from := dataplot.Pt(rr.Left()+rr.Width*0.2, rr.Top()+rr.Height*0.2)
	to := dataplot.Pt(rr.Left()+rr.Width*0.8, rr.Top()+rr.Height*0.8)
	v.PointerDown(view.PointerEvent{Pos: from, Button: view.ButtonLeft, Modifiers: view.ModShift, ClickCount: 1})
	v.PointerMove(view.PointerEvent{Pos: to})
	v.PointerUp(view.PointerEvent{Pos: to, Button: view.ButtonLeft})

	model := v.Model()
	if len(model.Series) == 0 {
		return
	}
	for _, p := range model.Series[0].Points() {
		sp := v.Transform().DataToScreen(p.Pos())
		if !v.RenderRect().Contains(sp) {
			continue
		}
		v.PointerMove(view.PointerEvent{Pos: sp})
		v.PointerDown(view.PointerEvent{Pos: sp, Button: view.ButtonLeft, Modifiers: view.ModCtrl, ClickCount: 1})
		v.PointerUp(view.PointerEvent{Pos: sp, Button: view.ButtonLeft})
		return
	}
}

func saveThumbnail(c *canvas.Canvas, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, c.Thumbnail(200, 150)); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
