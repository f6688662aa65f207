// Package blend composites straight-alpha colors onto BGRA pixel bytes.
//
// Destination pixels are stored non-premultiplied in B, G, R, A order.
// Coverage is an 8-bit anti-aliasing weight: 255 means the shape fully
// covers the pixel.
package blend

// Over composites the straight-alpha source (r, g, b, a), scaled by
// coverage, onto the 4-byte BGRA pixel px using source-over.
//
// An opaque source at full coverage replaces the pixel outright.
func Over(px []byte, r, g, b, a, coverage uint8) {
	_ = px[3] // bounds check hint to compiler
	if coverage == 0 || a == 0 {
		return
	}
	if a == 255 && coverage == 255 {
		px[0], px[1], px[2], px[3] = b, g, r, 255
		return
	}

	sa := uint16(MulDiv255(a, coverage))
	inv := 255 - sa

	px[0] = uint8(div255Exact(uint16(b)*sa + uint16(px[0])*inv))
	px[1] = uint8(div255Exact(uint16(g)*sa + uint16(px[1])*inv))
	px[2] = uint8(div255Exact(uint16(r)*sa + uint16(px[2])*inv))
	px[3] = uint8(sa + div255Exact(uint16(px[3])*inv))
}

// Put writes (r, g, b, a) into the BGRA pixel px without blending.
func Put(px []byte, r, g, b, a uint8) {
	_ = px[3] // bounds check hint to compiler
	px[0], px[1], px[2], px[3] = b, g, r, a
}

// Coverage converts a fractional coverage in [0, 1] to 8 bits, rounding to
// nearest. Values outside the range are clamped.
func Coverage(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	default:
		return uint8(f*255 + 0.5)
	}
}
