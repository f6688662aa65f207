package canvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/dataplot"
)

// changedBounds returns the bounding rectangle of pixels that differ
// between before and the canvas' current contents.
func changedBounds(c *Canvas, before []byte) image.Rectangle {
	var r image.Rectangle
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			i := (y*c.Width() + x) * 4
			if !bytes.Equal(before[i:i+4], c.Pix()[i:i+4]) {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func snapshot(c *Canvas) []byte {
	return append([]byte(nil), c.Pix()...)
}

func TestNewCanvas(t *testing.T) {
	c := New(10, 20)
	if c.Width() != 10 || c.Height() != 20 {
		t.Errorf("size = %dx%d, want 10x20", c.Width(), c.Height())
	}
	if len(c.Pix()) != 10*20*4 || c.Stride() != 40 {
		t.Errorf("len(Pix) = %d, Stride = %d", len(c.Pix()), c.Stride())
	}

	z := New(-5, 3)
	if z.Width() != 0 || len(z.Pix()) != 0 {
		t.Errorf("New(-5, 3) = %dx%d", z.Width(), z.Height())
	}
}

func TestResize(t *testing.T) {
	c := New(4, 4)
	if c.Resize(4, 4) {
		t.Error("Resize() to same size reported reallocation")
	}
	if !c.Resize(8, 2) {
		t.Error("Resize() to new size did not reallocate")
	}
	if c.Width() != 8 || c.Height() != 2 || len(c.Pix()) != 8*2*4 {
		t.Errorf("after Resize: %dx%d len %d", c.Width(), c.Height(), len(c.Pix()))
	}
}

func TestClear(t *testing.T) {
	c := New(7, 5)
	dirty := c.Clear(dataplot.WhiteSmoke)
	if dirty != c.Bounds() {
		t.Errorf("Clear() dirty = %v, want %v", dirty, c.Bounds())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if got := c.PixelAt(x, y); got != dataplot.WhiteSmoke {
				t.Fatalf("PixelAt(%d, %d) = %+v, want WhiteSmoke", x, y, got)
			}
		}
	}
	// Byte order is B, G, R, A.
	red := dataplot.RGB(200, 10, 20)
	c.Clear(red)
	if p := c.Pix()[:4]; p[0] != 20 || p[1] != 10 || p[2] != 200 || p[3] != 255 {
		t.Errorf("raw pixel = %v, want BGRA [20 10 200 255]", p)
	}

	if got := New(0, 0).Clear(red); !got.Empty() {
		t.Errorf("Clear() on empty canvas = %v", got)
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	c := New(10, 10)
	c.Clear(dataplot.Black)
	before := snapshot(c)
	for _, p := range []image.Point{{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100}} {
		c.SetPixel(p.X, p.Y, dataplot.Red)
		if got := c.PixelAt(p.X, p.Y); got != dataplot.Transparent {
			t.Errorf("PixelAt(%v) = %+v, want Transparent", p, got)
		}
	}
	if !bytes.Equal(before, c.Pix()) {
		t.Error("out-of-bounds SetPixel modified the buffer")
	}
}

func TestDrawImageInterface(t *testing.T) {
	c := New(3, 3)
	c.Set(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	if got := c.At(1, 1); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("At() = %v", got)
	}
	if c.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBA")
	}
}

func TestDrawLineThinHorizontal(t *testing.T) {
	c := New(10, 10)
	c.Clear(dataplot.White)
	dirty := c.DrawLine(1, 5, 8, 5, dataplot.Black, 1)
	if want := image.Rect(1, 5, 9, 6); dirty != want {
		t.Errorf("dirty = %v, want %v", dirty, want)
	}
	for x := 0; x < 10; x++ {
		got := c.PixelAt(x, 5)
		want := dataplot.White
		if x >= 1 && x <= 8 {
			want = dataplot.Black
		}
		if got != want {
			t.Errorf("PixelAt(%d, 5) = %+v, want %+v", x, got, want)
		}
	}
}

func TestDrawLineThinDiagonal(t *testing.T) {
	c := New(10, 10)
	c.DrawLine(0, 0, 9, 9, dataplot.Red, 1)
	for i := 0; i < 10; i++ {
		if got := c.PixelAt(i, i); got != dataplot.Red {
			t.Errorf("PixelAt(%d, %d) = %+v, want red", i, i, got)
		}
	}
	if got := c.PixelAt(0, 9); got != dataplot.Transparent {
		t.Errorf("off-diagonal pixel touched: %+v", got)
	}
}

func TestDrawLineThinBlendsTranslucent(t *testing.T) {
	c := New(5, 1)
	c.Clear(dataplot.White)
	c.DrawLine(0, 0, 4, 0, dataplot.Black.WithAlpha(40), 1)
	got := c.PixelAt(2, 0)
	if got.A != 255 || got.R >= 255 || got.R < 200 {
		t.Errorf("translucent grid pixel = %+v, want light gray", got)
	}
}

func TestDrawLineDirtyCoversChanges(t *testing.T) {
	lines := []struct {
		x0, y0, x1, y1, th float64
	}{
		{2, 3, 40, 27, 1},
		{-20, 15, 70, 15, 1},
		{10, 10, 30, 35, 4},
		{-5, -5, 60, 45, 3},
		{25, 25, 25, 25, 6},
		{48, 2, 1, 38, 2.5},
	}
	for _, l := range lines {
		c := New(50, 40)
		c.Clear(dataplot.White)
		before := snapshot(c)
		dirty := c.DrawLine(l.x0, l.y0, l.x1, l.y1, dataplot.Blue, l.th)
		changed := changedBounds(c, before)
		if changed.Empty() {
			t.Errorf("DrawLine(%v) drew nothing", l)
			continue
		}
		if !changed.In(dirty) {
			t.Errorf("DrawLine(%v) changed %v outside dirty %v", l, changed, dirty)
		}
		if !dirty.In(c.Bounds()) {
			t.Errorf("DrawLine(%v) dirty %v exceeds bounds", l, dirty)
		}
	}
}

func TestDrawLineThick(t *testing.T) {
	c := New(60, 60)
	c.Clear(dataplot.White)
	dirty := c.DrawLine(10, 30, 50, 30, dataplot.Black, 6)

	if got := c.PixelAt(30, 30); got != dataplot.Black {
		t.Errorf("center pixel = %+v, want black", got)
	}
	if got := c.PixelAt(30, 28); got != dataplot.Black {
		t.Errorf("pixel inside stroke = %+v, want black", got)
	}
	// Round cap extends past the endpoint.
	if got := c.PixelAt(8, 30); got == dataplot.White {
		t.Error("round cap not drawn")
	}
	if got := c.PixelAt(30, 40); got != dataplot.White {
		t.Errorf("pixel far from stroke = %+v, want white", got)
	}
	want := image.Rect(10-6, 30-6, 50+6+1, 30+6+1)
	if dirty != want {
		t.Errorf("dirty = %v, want %v", dirty, want)
	}
}

func TestDrawLineDegenerate(t *testing.T) {
	c := New(10, 10)
	before := snapshot(c)
	nan := math.NaN()
	inf := math.Inf(1)
	cases := []struct {
		x0, y0, x1, y1 float64
		col            dataplot.Color
		th             float64
	}{
		{0, 0, 9, 9, dataplot.Transparent, 1},
		{0, 0, 9, 9, dataplot.Black, 0},
		{0, 0, 9, 9, dataplot.Black, -2},
		{nan, 0, 9, 9, dataplot.Black, 1},
		{0, 0, inf, 9, dataplot.Black, 3},
		{-100, -100, -50, -20, dataplot.Black, 1},
		{200, 0, 300, 9, dataplot.Black, 4},
	}
	for _, tc := range cases {
		if d := c.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, tc.col, tc.th); !d.Empty() {
			t.Errorf("DrawLine(%v) dirty = %v, want empty", tc, d)
		}
	}
	if !bytes.Equal(before, c.Pix()) {
		t.Error("degenerate lines modified the buffer")
	}
	if d := New(0, 0).DrawLine(0, 0, 1, 1, dataplot.Black, 1); !d.Empty() {
		t.Errorf("DrawLine on empty canvas = %v", d)
	}
}

func TestDrawLineHugeCoordinates(t *testing.T) {
	c := New(20, 20)
	dirty := c.DrawLine(-1e12, 10, 1e12, 10, dataplot.Black, 1)
	if dirty != image.Rect(0, 10, 20, 11) {
		t.Errorf("dirty = %v, want row 10", dirty)
	}
	for x := 0; x < 20; x++ {
		if c.PixelAt(x, 10) != dataplot.Black {
			t.Fatalf("PixelAt(%d, 10) not drawn", x)
		}
	}
	c.DrawLine(10, -1e15, 10, 1e15, dataplot.Black, 5)
	if c.PixelAt(10, 0) != dataplot.Black {
		t.Error("thick clipped line not drawn")
	}
}

func TestDrawRectangle(t *testing.T) {
	c := New(20, 20)
	c.Clear(dataplot.White)
	dirty := c.DrawRectangle(15, 15, 5, 5, dataplot.Black, 1)
	if want := image.Rect(5, 5, 16, 16); dirty != want {
		t.Errorf("dirty = %v, want %v", dirty, want)
	}
	for _, p := range []image.Point{{5, 5}, {15, 5}, {15, 15}, {5, 15}, {10, 5}, {5, 10}} {
		if c.PixelAt(p.X, p.Y) != dataplot.Black {
			t.Errorf("outline pixel %v not drawn", p)
		}
	}
	if c.PixelAt(10, 10) != dataplot.White {
		t.Error("interior pixel drawn")
	}

	before := snapshot(c)
	for _, d := range []image.Rectangle{
		c.DrawRectangle(2, 2, 2, 9, dataplot.Black, 1),
		c.DrawRectangle(2, 2, 9, 9, dataplot.Transparent, 1),
		c.DrawRectangle(2, 2, 9, 9, dataplot.Black, 0),
	} {
		if !d.Empty() {
			t.Errorf("degenerate DrawRectangle dirty = %v", d)
		}
	}
	if !bytes.Equal(before, c.Pix()) {
		t.Error("degenerate DrawRectangle modified the buffer")
	}
}

func TestFillRectangle(t *testing.T) {
	c := New(10, 10)
	dirty := c.FillRectangle(-5, 2, 4, 20, dataplot.Red)
	if want := image.Rect(0, 2, 4, 10); dirty != want {
		t.Errorf("dirty = %v, want %v", dirty, want)
	}
	if c.PixelAt(0, 2) != dataplot.Red || c.PixelAt(3, 9) != dataplot.Red {
		t.Error("fill missing")
	}
	if c.PixelAt(4, 5) != dataplot.Transparent || c.PixelAt(2, 1) != dataplot.Transparent {
		t.Error("fill leaked")
	}
	if d := c.FillRectangle(20, 20, 30, 30, dataplot.Red); !d.Empty() {
		t.Errorf("off-buffer FillRectangle dirty = %v", d)
	}
	if d := c.FillRectangle(3, 3, 3, 8, dataplot.Red); !d.Empty() {
		t.Errorf("zero-width FillRectangle dirty = %v", d)
	}
}

func TestFillCircleOpacityInvariant(t *testing.T) {
	centers := []dataplot.PointD{{X: 50, Y: 50}, {X: 50.5, Y: 49.25}, {X: 47.3, Y: 52.8}}
	for _, r := range []float64{2, 2.5, 3, 5, 8, 13.7, 30} {
		for _, ctr := range centers {
			c := New(100, 100)
			c.FillCircle(ctr.X, ctr.Y, r, dataplot.Crimson)
			for y := 0; y < 100; y++ {
				for x := 0; x < 100; x++ {
					d := math.Hypot(float64(x)+0.5-ctr.X, float64(y)+0.5-ctr.Y)
					a := c.PixelAt(x, y).A
					if d <= r-1 && a != 255 {
						t.Fatalf("r=%v c=%v: pixel (%d,%d) at distance %.2f alpha %d, want 255", r, ctr, x, y, d, a)
					}
					if d >= r+2 && a != 0 {
						t.Fatalf("r=%v c=%v: pixel (%d,%d) at distance %.2f alpha %d, want 0", r, ctr, x, y, d, a)
					}
				}
			}
		}
	}
}

func TestFillEllipseAntiAliasedEdge(t *testing.T) {
	c := New(40, 40)
	c.FillEllipse(20, 20, 10, 10, dataplot.Black)
	partial := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if a := c.PixelAt(x, y).A; a > 0 && a < 255 {
				partial++
			}
		}
	}
	if partial == 0 {
		t.Error("no partially covered edge pixels")
	}
}

func TestFillEllipseDirty(t *testing.T) {
	c := New(40, 30)
	c.Clear(dataplot.White)
	before := snapshot(c)
	dirty := c.FillEllipse(5, 25, 12, 6, dataplot.Blue.WithAlpha(128))
	changed := changedBounds(c, before)
	if changed.Empty() || !changed.In(dirty) || !dirty.In(c.Bounds()) {
		t.Errorf("changed %v, dirty %v", changed, dirty)
	}
	if dirty.Min.X != 0 || dirty.Max.Y != 30 {
		t.Errorf("dirty = %v, want clipped at left and bottom", dirty)
	}
}

func TestFillEllipseDegenerate(t *testing.T) {
	c := New(10, 10)
	before := snapshot(c)
	for _, d := range []image.Rectangle{
		c.FillEllipse(5, 5, 0, 3, dataplot.Black),
		c.FillEllipse(5, 5, 3, -1, dataplot.Black),
		c.FillEllipse(5, 5, 3, 3, dataplot.Transparent),
		c.FillEllipse(500, 5, 3, 3, dataplot.Black),
		c.FillEllipse(-50, -50, 3, 3, dataplot.Black),
		c.FillEllipse(math.NaN(), 5, 3, 3, dataplot.Black),
	} {
		if !d.Empty() {
			t.Errorf("degenerate FillEllipse dirty = %v", d)
		}
	}
	if !bytes.Equal(before, c.Pix()) {
		t.Error("degenerate FillEllipse modified the buffer")
	}
}

func TestFillEllipseHugeRadius(t *testing.T) {
	c := New(10, 10)
	dirty := c.FillEllipse(5, 5, 1e200, 1e200, dataplot.Black)
	if dirty != c.Bounds() {
		t.Errorf("dirty = %v, want full bounds", dirty)
	}
	if c.PixelAt(0, 0) != dataplot.Black {
		t.Error("huge ellipse did not cover the canvas")
	}
}

func TestTranslucentOverlapAccumulates(t *testing.T) {
	c := New(20, 20)
	c.Clear(dataplot.White)
	col := dataplot.Black.WithAlpha(100)
	c.FillCircle(10, 10, 5, col)
	once := c.PixelAt(10, 10)
	c.FillCircle(10, 10, 5, col)
	twice := c.PixelAt(10, 10)
	if twice.R >= once.R {
		t.Errorf("overlapping translucent fills did not accumulate: %d then %d", once.R, twice.R)
	}
}

func TestFillCircleBordered(t *testing.T) {
	c := New(40, 40)
	c.Clear(dataplot.White)
	c.FillCircleBordered(20, 20, 10, dataplot.Red, dataplot.Black, 3)
	if got := c.PixelAt(20, 20); got != dataplot.Red {
		t.Errorf("center = %+v, want fill", got)
	}
	// 8.5px from center: inside the border ring, outside the shrunk fill.
	if got := c.PixelAt(28, 19); got != dataplot.Black {
		t.Errorf("ring pixel = %+v, want border", got)
	}

	c.Clear(dataplot.White)
	c.FillCircleBordered(20, 20, 10, dataplot.Red, dataplot.Black, 0)
	if got := c.PixelAt(28, 19); got != dataplot.Red {
		t.Errorf("zero-thickness border drew ring: %+v", got)
	}
}

func TestBlendMask(t *testing.T) {
	// A 3x2 mask with a single opaque pixel at (2, 0).
	mask := image.NewAlpha(image.Rect(0, 0, 3, 2))
	mask.SetAlpha(2, 0, color.Alpha{A: 255})

	c := New(10, 10)
	dirty := c.BlendMask(mask, 4, 4, dataplot.Black, Rotate0)
	if dirty != image.Rect(4, 4, 7, 6) {
		t.Errorf("dirty = %v", dirty)
	}
	if c.PixelAt(6, 4) != dataplot.Black {
		t.Error("unrotated mask pixel missing")
	}

	c = New(10, 10)
	dirty = c.BlendMask(mask, 4, 4, dataplot.Black, Rotate90)
	if dirty != image.Rect(4, 4, 6, 7) {
		t.Errorf("rotated dirty = %v", dirty)
	}
	// Rotated counter-clockwise the right end of the mask faces up.
	if c.PixelAt(4, 4) != dataplot.Black {
		t.Errorf("rotated mask pixel missing, got %+v", c.PixelAt(4, 4))
	}

	if d := c.BlendMask(mask, -10, -10, dataplot.Black, Rotate0); !d.Empty() {
		t.Errorf("off-buffer BlendMask dirty = %v", d)
	}
}

func TestImageAndPNG(t *testing.T) {
	c := New(4, 3)
	c.Clear(dataplot.RGB(10, 20, 30))
	img := c.Image()
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("Image().At = %v", got)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if decoded.Bounds() != c.Bounds() {
		t.Errorf("decoded bounds = %v", decoded.Bounds())
	}

	if err := New(0, 5).EncodePNG(&buf); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("EncodePNG() on empty canvas = %v, want ErrEmptyCanvas", err)
	}
}

func TestCopyTo(t *testing.T) {
	c := New(10, 10)
	c.Clear(dataplot.White)
	dirty := c.FillRectangle(2, 2, 5, 5, dataplot.Red)

	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c.CopyTo(dst, dirty)
	if got := dst.RGBAAt(3, 3); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("copied pixel = %v", got)
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("pixel outside dirty rect copied: %v", got)
	}
}

func TestThumbnail(t *testing.T) {
	c := New(200, 100)
	c.Clear(dataplot.Blue)
	th := c.Thumbnail(50, 50)
	if th.Bounds().Dx() != 50 || th.Bounds().Dy() != 25 {
		t.Errorf("Thumbnail bounds = %v, want 50x25", th.Bounds())
	}
	if got := th.NRGBAAt(10, 10); got.B < 250 || got.A < 250 {
		t.Errorf("thumbnail pixel = %v, want blue", got)
	}
}

func TestStats(t *testing.T) {
	c := New(20, 20)
	c.DrawLine(0, 0, 10, 10, dataplot.Black, 1)
	c.DrawLine(0, 0, 10, 10, dataplot.Black, 3)
	c.DrawLine(0, 0, 10, 10, dataplot.Transparent, 1)
	c.DrawRectangle(2, 2, 8, 8, dataplot.Black, 1)
	c.FillCircle(5, 5, 2, dataplot.Black)
	c.FillCircleBordered(5, 5, 4, dataplot.Red, dataplot.Black, 1)

	want := Stats{ThinLines: 5, ThickLines: 1, Ellipses: 3}
	if got := c.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	c.ResetStats()
	if got := c.Stats(); got != (Stats{}) {
		t.Errorf("Stats() after reset = %+v", got)
	}
}

func TestClip(t *testing.T) {
	c := New(30, 30)
	c.Clear(dataplot.White)
	c.SetClip(image.Rect(10, 10, 20, 20))
	if c.Clip() != image.Rect(10, 10, 20, 20) {
		t.Fatalf("Clip() = %v", c.Clip())
	}
	before := snapshot(c)

	dirties := []image.Rectangle{
		c.DrawLine(0, 15, 29, 15, dataplot.Black, 1),
		c.DrawLine(15, 0, 15, 29, dataplot.Black, 4),
		c.FillCircle(10, 10, 6, dataplot.Red),
		c.FillRectangle(0, 0, 30, 12, dataplot.Blue),
		c.DrawRectangle(5, 5, 25, 25, dataplot.Black, 1),
	}
	for i, d := range dirties {
		if !d.In(c.Clip()) {
			t.Errorf("call %d dirty %v outside clip", i, d)
		}
	}
	if changed := changedBounds(c, before); !changed.In(c.Clip()) {
		t.Errorf("pixels changed outside clip: %v", changed)
	}
	if c.PixelAt(15, 15) != dataplot.Black {
		t.Error("pixel inside clip not drawn")
	}

	c.ResetClip()
	if c.Clip() != c.Bounds() {
		t.Errorf("ResetClip() clip = %v", c.Clip())
	}
	c.SetClip(image.Rect(-5, -5, 100, 3))
	if c.Clip() != image.Rect(0, 0, 30, 3) {
		t.Errorf("SetClip() not intersected with bounds: %v", c.Clip())
	}
	c.Resize(40, 40)
	if c.Clip() != c.Bounds() {
		t.Errorf("Resize() kept stale clip %v", c.Clip())
	}
}
