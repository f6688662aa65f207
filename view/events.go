package view

import (
	"image"

	"github.com/gogpu/dataplot"
	"github.com/gogpu/dataplot/canvas"
)

// Host provides the pixel size available to a PlotView.
type Host interface {
	PixelSize() (width, height int)
}

// PointerCapturer is implemented by hosts that can route all pointer
// input to the view while a drag is in progress.
type PointerCapturer interface {
	CapturePointer()
	ReleasePointer()
}

// Presenter is implemented by hosts that display the rendered canvas.
// Only dirty needs to be copied; see canvas.Canvas.CopyTo.
type Presenter interface {
	Present(c *canvas.Canvas, dirty image.Rectangle)
}

// Modifiers is a set of modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all keys in k are held.
func (m Modifiers) Has(k Modifiers) bool {
	return k != 0 && m&k == k
}

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// PointerEvent is a pointer press, move or release in view pixels.
type PointerEvent struct {
	Pos        dataplot.PointD
	Button     Button
	Modifiers  Modifiers
	ClickCount int
}

// WheelEvent is a wheel rotation at Pos. Positive Delta zooms in.
type WheelEvent struct {
	Pos       dataplot.PointD
	Delta     float64
	Modifiers Modifiers
}

// HoverEvent reports a change of the hovered point. Series is nil and
// Index is -1 when nothing is hovered.
type HoverEvent struct {
	Series dataplot.Series
	Index  int
	Point  *dataplot.DataPoint
}

// SelectEvent reports that a point's Selected flag was toggled.
type SelectEvent struct {
	Series dataplot.Series
	Index  int
	Point  *dataplot.DataPoint
	Button Button
}

// State is the interaction state of a PlotView.
type State int

const (
	Idle State = iota
	Panning
	BoxZooming
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Panning:
		return "Panning"
	case BoxZooming:
		return "BoxZooming"
	default:
		return "Unknown"
	}
}
