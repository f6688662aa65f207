package dataplot

import "image/color"

// Color is a straight (non-premultiplied) 8-bit-per-channel RGBA color.
//
// Color implements color.Color, so it can be handed directly to
// image/draw and golang.org/x/image consumers.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit
// components as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA converts c to the standard library's non-premultiplied type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Opaque reports whether c has full alpha.
func (c Color) Opaque() bool {
	return c.A == 0xff
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// ARGB creates a color from alpha-first 8-bit components.
func ARGB(a, r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Unrecognized input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	if _, ok := parseHex(hex); !ok {
		return Black
	}

	var r, g, b, a uint32
	a = 255
	digit := func(s string, val *uint32) {
		*val, _ = parseHex(s)
	}

	switch len(hex) {
	case 3: // RGB
		digit(hex[0:1], &r)
		digit(hex[1:2], &g)
		digit(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		digit(hex[0:1], &r)
		digit(hex[1:2], &g)
		digit(hex[2:3], &b)
		digit(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		digit(hex[0:2], &r)
		digit(hex[2:4], &g)
		digit(hex[4:6], &b)
	case 8: // RRGGBBAA
		digit(hex[0:2], &r)
		digit(hex[2:4], &g)
		digit(hex[4:6], &b)
		digit(hex[6:8], &a)
	default:
		return Black
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex parses s as hexadecimal digits. It reports false on any other
// character.
func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

// Common colors
var (
	Transparent = Color{}
	Black       = RGB(0x00, 0x00, 0x00)
	White       = RGB(0xff, 0xff, 0xff)
	WhiteSmoke  = RGB(0xf5, 0xf5, 0xf5)
	DodgerBlue  = RGB(0x1e, 0x90, 0xff)
	Crimson     = RGB(0xdc, 0x14, 0x3c)
	DarkRed     = RGB(0x8b, 0x00, 0x00)
	MediumBlue  = RGB(0x00, 0x00, 0xcd)
	Red         = RGB(0xff, 0x00, 0x00)
	Blue        = RGB(0x00, 0x00, 0xff)
)
