package dataplot

import "math"

// DefaultHoverDistance is the pixel radius used for line-series hit testing
// when the caller has no preference.
const DefaultHoverDistance = 12.0

// DataPoint is a single sample owned by a series.
//
// Points are identified by their index within the owning series, never by
// pointer. Selected is toggled by user interaction.
type DataPoint struct {
	X, Y     float64
	Tag      any
	Selected bool
}

// Pos returns the point's coordinates as a PointD.
func (p *DataPoint) Pos() PointD {
	return PointD{X: p.X, Y: p.Y}
}

// HitResult identifies the point closest to a screen position.
type HitResult struct {
	Index    int
	Distance float64
}

// Series is the capability shared by all plottable series.
// The set of implementations is closed: *LineSeries and *ScatterSeries.
type Series interface {
	Title() string
	Visible() bool
	Points() []*DataPoint

	// NearestPoint returns the closest accepted point to screen, measured in
	// screen pixels after projecting each point through t.
	NearestPoint(screen PointD, t Transform, maxDistance float64) (HitResult, bool)
}

// baseSeries holds what both series variants share.
type baseSeries struct {
	title   string
	visible bool
	points  []*DataPoint
}

func (s *baseSeries) Title() string         { return s.title }
func (s *baseSeries) Visible() bool         { return s.visible }
func (s *baseSeries) Points() []*DataPoint  { return s.points }
func (s *baseSeries) SetTitle(title string) { s.title = title }
func (s *baseSeries) SetVisible(v bool)     { s.visible = v }

// Add appends a point and returns its index.
func (s *baseSeries) Add(x, y float64, tag any) int {
	s.points = append(s.points, &DataPoint{X: x, Y: y, Tag: tag})
	return len(s.points) - 1
}

// Clear removes every point.
func (s *baseSeries) Clear() {
	s.points = s.points[:0]
}

// nearest scans every point and keeps the closest one strictly inside
// radius. Ties keep the lowest index.
func (s *baseSeries) nearest(screen PointD, t Transform, radius float64) (HitResult, bool) {
	best := HitResult{Index: -1, Distance: math.MaxFloat64}
	for i, p := range s.points {
		d := screen.DistanceTo(t.DataToScreen(p.Pos()))
		if d < radius && d < best.Distance {
			best = HitResult{Index: i, Distance: d}
		}
	}
	return best, best.Index >= 0
}

// LineSeries draws its points as connected segments.
type LineSeries struct {
	baseSeries

	Thickness float64
	Stroke    Color
	Fill      Color
}

// NewLineSeries returns a visible, empty line series with default styling.
func NewLineSeries(title string) *LineSeries {
	return &LineSeries{
		baseSeries: baseSeries{title: title, visible: true},
		Thickness:  1.5,
		Stroke:     Black,
		Fill:       Red,
	}
}

// NearestPoint tests only the vertices, accepting those closer than
// maxDistance. Hits in the interior of a segment are not detected.
func (s *LineSeries) NearestPoint(screen PointD, t Transform, maxDistance float64) (HitResult, bool) {
	return s.nearest(screen, t, maxDistance)
}

// ScatterSeries draws its points as filled circles.
type ScatterSeries struct {
	baseSeries

	// PointSize is the circle radius in pixels. It also bounds hit testing.
	PointSize float64
	Stroke    Color
	Fill      Color
}

// NewScatterSeries returns a visible, empty scatter series with default
// styling.
func NewScatterSeries(title string) *ScatterSeries {
	return &ScatterSeries{
		baseSeries: baseSeries{title: title, visible: true},
		PointSize:  7,
		Stroke:     Black,
		Fill:       Blue,
	}
}

// NearestPoint accepts points within the marker radius; maxDistance is
// ignored because a marker's drawn size is its hit area.
func (s *ScatterSeries) NearestPoint(screen PointD, t Transform, _ float64) (HitResult, bool) {
	return s.nearest(screen, t, s.PointSize)
}
