package dataplot

import (
	"math"
	"strconv"
)

// DefaultTickCount is the tick density target used when none is configured.
const DefaultTickCount = 8

// GenerateTicks returns "nice" tick positions covering [min, max] together
// with their labels.
//
// The step is snapped to 1, 2 or 5 times a power of ten so that at most
// roughly maxCount ticks are produced. Every tick lies within [min, max]
// and ticks are strictly increasing: a tick that rounding pushed just past
// a bound is snapped onto it.
// Degenerate input (max <= min, non-finite bounds, maxCount <= 0) yields
// two nil slices.
//
// Output depends only on the arguments, so callers may cache labels and
// their measured widths by range.
func GenerateTicks(min, max float64, maxCount int) (ticks []float64, labels []string) {
	if maxCount <= 0 || !(max > min) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, nil
	}

	step := niceStep((max - min) / float64(maxCount))
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil, nil
	}

	first := math.Ceil(min/step) * step
	if first+step == first {
		// The step is below the float resolution at this magnitude.
		return nil, nil
	}
	limit := max + step/2
	eps := step * 1e-9
	for i := 0; ; i++ {
		t := first + float64(i)*step
		if t > limit {
			break
		}
		switch {
		case math.Abs(t-max) <= eps:
			t = max
		case math.Abs(t-min) <= eps:
			t = min
		case t < min || t > max:
			continue
		}
		if math.Abs(t) < eps {
			t = 0
		}
		if n := len(ticks); n > 0 && t <= ticks[n-1] {
			continue
		}
		ticks = append(ticks, t)
		labels = append(labels, FormatTick(t))
	}
	return ticks, labels
}

// niceStep snaps rough onto the 1-2-5 decade sequence.
func niceStep(rough float64) float64 {
	step := math.Pow(10, math.Floor(math.Log10(rough)))
	switch ratio := rough / step; {
	case ratio > 5:
		step *= 5
	case ratio > 2:
		step *= 2
	}
	return step
}

// FormatTick renders a tick value: integral values with no decimals,
// anything else with up to six significant digits.
func FormatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
