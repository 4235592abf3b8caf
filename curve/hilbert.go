package curve

// Hilbert returns the distance along the Hilbert curve of the given order
// (1..16) at which the point (x,y) is visited. Coordinates are taken
// modulo 2^order. Iterative formulation, no recursion, no allocation.
func Hilbert(order uint, x, y uint32) uint32 {
	n := uint32(1) << order
	hx, hy := x&(n-1), y&(n-1)

	var d uint32
	for s := n >> 1; s > 0; s >>= 1 {
		var rx, ry uint32
		if hx&s != 0 {
			rx = 1
		}
		if hy&s != 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		// The encode-side frame flip works on full-size coordinates.
		hx, hy = hilbertRotate(n, hx, hy, rx, ry)
	}

	return d
}

// HilbertXY inverts Hilbert: it returns the point visited at distance d
// along the curve of the given order.
func HilbertXY(order uint, d uint32) (x, y uint32) {
	var hx, hy uint32
	t := d
	for s := uint32(1); s < uint32(1)<<order; s <<= 1 {
		rx := (t >> 1) & 1
		ry := (t ^ rx) & 1
		// The decode-side frame flip works on the partial coordinates
		// accumulated so far, which stay below s.
		hx, hy = hilbertRotate(s, hx, hy, rx, ry)
		hx += s * rx
		hy += s * ry
		t >>= 2
	}

	return hx, hy
}

// hilbertRotate flips/rotates a quadrant-local frame of the given size.
func hilbertRotate(size, x, y, rx, ry uint32) (uint32, uint32) {
	if ry == 0 {
		if rx == 1 {
			x = size - 1 - x
			y = size - 1 - y
		}
		x, y = y, x
	}

	return x, y
}
