package dataplot

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{R: 255, A: 255}},
		{"00ff00", Color{G: 255, A: 255}},
		{"#00f", Color{B: 255, A: 255}},
		{"#1e90ff80", Color{R: 0x1e, G: 0x90, B: 0xff, A: 0x80}},
		{"f008", Color{R: 255, A: 0x88}},
		{"nonsense", Black},
		{"#12345g", Black},
		{"#zzz", Black},
		{"", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = Color{R: 255, G: 0, B: 0, A: 128}
	r, g, b, a := c.RGBA()
	// Premultiplied: 255 * 128/255 scaled to 16 bits.
	if a != 128*257 {
		t.Errorf("alpha = %d, want %d", a, 128*257)
	}
	if r != 128*257 || g != 0 || b != 0 {
		t.Errorf("RGBA() = (%d, %d, %d), want (%d, 0, 0)", r, g, b, 128*257)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	in := Color{R: 10, G: 20, B: 30, A: 255}
	if got := FromColor(in); got != in {
		t.Errorf("FromColor(%+v) = %+v", in, got)
	}
	if got := FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 4}); got != (Color{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("FromColor(NRGBA) = %+v", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := DodgerBlue.WithAlpha(40)
	if c.A != 40 || c.R != DodgerBlue.R {
		t.Errorf("WithAlpha(40) = %+v", c)
	}
	if c.Opaque() {
		t.Error("Opaque() = true for alpha 40")
	}
}
