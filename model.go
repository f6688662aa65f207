package dataplot

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// AxisPosition is the edge of the plot area an axis is attached to.
type AxisPosition int

const (
	AxisBottom AxisPosition = iota
	AxisLeft
	AxisTop
	AxisRight
)

// String implements fmt.Stringer.
func (p AxisPosition) String() string {
	switch p {
	case AxisBottom:
		return "Bottom"
	case AxisLeft:
		return "Left"
	case AxisTop:
		return "Top"
	case AxisRight:
		return "Right"
	default:
		return fmt.Sprintf("AxisPosition(%d)", int(p))
	}
}

// Vertical reports whether the axis runs along the left or right edge.
func (p AxisPosition) Vertical() bool {
	return p == AxisLeft || p == AxisRight
}

// Axis is presentational metadata for one edge of the plot.
type Axis struct {
	Position   AxisPosition
	Title      string
	Visible    bool
	Color      Color
	TickLength float64

	// TitleOffset is the distance from a horizontal axis to the center
	// line of its title. Vertical axis titles are placed beside the tick
	// labels.
	TitleOffset float64
}

// NewAxis returns a visible axis with default styling.
func NewAxis(pos AxisPosition, title string) *Axis {
	return &Axis{
		Position:    pos,
		Title:       title,
		Visible:     true,
		Color:       Black,
		TickLength:  6,
		TitleOffset: 30,
	}
}

// ZoomMode selects which axes pan and zoom gestures may change.
type ZoomMode int

const (
	ZoomXY ZoomMode = iota
	ZoomXOnly
	ZoomYOnly
	ZoomNone
)

// String implements fmt.Stringer.
func (m ZoomMode) String() string {
	switch m {
	case ZoomXY:
		return "XY"
	case ZoomXOnly:
		return "XOnly"
	case ZoomYOnly:
		return "YOnly"
	case ZoomNone:
		return "None"
	default:
		return fmt.Sprintf("ZoomMode(%d)", int(m))
	}
}

// Zooms reports whether any zooming is enabled.
func (m ZoomMode) Zooms() bool { return m != ZoomNone }

// ZoomsX reports whether the X axis may be panned or zoomed.
func (m ZoomMode) ZoomsX() bool { return m == ZoomXY || m == ZoomXOnly }

// ZoomsY reports whether the Y axis may be panned or zoomed.
func (m ZoomMode) ZoomsY() bool { return m == ZoomXY || m == ZoomYOnly }

// Model aggregates the series and axes shown by a plot view.
type Model struct {
	Series   []Series
	Axes     []*Axis
	ZoomMode ZoomMode
}

// NewModel returns an empty model with a bottom "X Axis", a left "Y Axis"
// and XY zooming.
func NewModel() *Model {
	return &Model{
		Axes: []*Axis{
			NewAxis(AxisBottom, "X Axis"),
			NewAxis(AxisLeft, "Y Axis"),
		},
		ZoomMode: ZoomXY,
	}
}

// EmptyModel returns a model with no series, no axes and zooming disabled.
func EmptyModel() *Model {
	return &Model{ZoomMode: ZoomNone}
}

// Add appends series to the model.
func (m *Model) Add(series ...Series) {
	m.Series = append(m.Series, series...)
}

// AxisAt returns the first axis at pos, or nil.
func (m *Model) AxisAt(pos AxisPosition) *Axis {
	for _, a := range m.Axes {
		if a.Position == pos {
			return a
		}
	}
	return nil
}

// DataRect returns the tight bounding rectangle of every point in every
// visible series, or EmptyRect when there are none. It scans all points on
// each call; callers should cache the result.
func (m *Model) DataRect() RectD {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	found := false

	for _, s := range m.Series {
		if !s.Visible() {
			continue
		}
		for _, p := range s.Points() {
			found = true
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}

	if !found {
		return EmptyRect
	}
	return RectD{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// FindNearest resolves the globally nearest hit across all visible series.
// The lowest distance wins; on ties the earlier series is kept.
func (m *Model) FindNearest(screen PointD, t Transform, maxDistance float64) (Series, HitResult, bool) {
	var (
		best    Series
		bestHit = HitResult{Index: -1, Distance: math.MaxFloat64}
	)
	for _, s := range m.Series {
		if !s.Visible() {
			continue
		}
		hit, ok := s.NearestPoint(screen, t, maxDistance)
		if ok && hit.Distance < bestHit.Distance {
			best, bestHit = s, hit
		}
	}
	return best, bestHit, best != nil
}

// NewRandomModel returns the sample data set: 5000 uniformly scattered
// points over [0,100)² and a 1000-point sine wave. The same seed always
// produces the same model.
func NewRandomModel(seed uint64) *Model {
	m := NewModel()

	scatter := NewScatterSeries("Random points")
	scatter.Fill = Crimson
	scatter.Stroke = DarkRed
	scatter.PointSize = 8

	rnd := rand.New(rand.NewPCG(seed, seed))
	for i := 0; i < 5000; i++ {
		x := rnd.Float64() * 100
		y := rnd.Float64() * 100
		scatter.Add(x, y, fmt.Sprintf("Scatter Point %d", i))
	}

	line := NewLineSeries("Line Series")
	line.Stroke = MediumBlue
	for i := 0; i < 1000; i++ {
		x := float64(i) / 10
		line.Add(x, math.Sin(x)*30+50, fmt.Sprintf("Line Point %d", i))
	}

	m.Add(scatter, line)
	return m
}
