package blend

// div255Exact divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula, which gives exact results for
// products of two bytes.
func div255Exact(x uint16) uint16 {
	t := uint32(x) + 1
	return uint16((t + (t >> 8)) >> 8)
}

// MulDiv255 returns a*b/255, rounded, for two 8-bit values.
func MulDiv255(a, b uint8) uint8 {
	return uint8(div255Exact(uint16(a) * uint16(b)))
}
