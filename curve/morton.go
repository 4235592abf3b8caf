package curve

import (
	"github.com/katalvlaran/rectmap/rect"
)

// centerBound clamps centroid coordinates to ±2¹⁵ before midpoint
// arithmetic, keeping unbounded rectangles inside the 16-bit code space.
const centerBound int64 = 1 << 15

// spread distributes the low 16 bits of v across the even bit positions
// of the result (the standard magic-mask bit spread).
func spread(v uint32) uint32 {
	v &= 0x0000FFFF
	v = (v | v<<8) & 0x00FF00FF
	v = (v | v<<4) & 0x0F0F0F0F
	v = (v | v<<2) & 0x33333333
	v = (v | v<<1) & 0x55555555
	return v
}

// Morton returns the 32-bit Z-order code of (x,y): x bits occupy the even
// positions, y bits the odd positions.
func Morton(x, y uint16) uint32 {
	return spread(uint32(x)) | spread(uint32(y))<<1
}

// MortonCenter returns the Z-order code of the centroid of r.
//
// Each centroid coordinate is clamped to [−2¹⁵, 2¹⁵−1] before the midpoint
// shift, then truncated to 16 bits (two's-complement wrap = mod 2¹⁶). The
// clamp only affects ordering of unbounded rectangles, never set semantics.
func MortonCenter(r rect.Rect) uint32 {
	cx := (clampCenter(r.XMin) + clampCenter(r.XMax)) >> 1
	cy := (clampCenter(r.YMin) + clampCenter(r.YMax)) >> 1

	return Morton(uint16(cx), uint16(cy))
}

func clampCenter(v int64) int64 {
	if v >= centerBound {
		return centerBound - 1
	}
	if v < -centerBound {
		return -centerBound
	}
	return v
}
