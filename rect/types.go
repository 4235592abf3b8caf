// Package rect defines the Rect type, infinity sentinels, and sentinel errors
// for the rectangle-algebra subpackage of github.com/katalvlaran/rectmap.
package rect

import "errors"

// Infinity sentinels for unbounded rectangle sides.
//
// They sit one step inside the int64 extremes so that the ±1 adjustments
// performed by Subtract never overflow. Canonicalize folds the raw extremes
// (math.MinInt64, math.MaxInt64) onto these values.
const (
	// NegInf represents −∞ for an unbounded lower side.
	NegInf int64 = -1<<63 + 1
	// PosInf represents +∞ for an unbounded upper side.
	PosInf int64 = 1<<63 - 2
)

// Sentinel errors for rectangle validation.
var (
	// ErrInvalidRect indicates XMin > XMax or YMin > YMax.
	ErrInvalidRect = errors.New("rect: invalid rectangle")
)

// Rect is a closed-interval, axis-aligned rectangle on the integer grid.
// It covers every point (x,y) with XMin ≤ x ≤ XMax and YMin ≤ y ≤ YMax.
// The zero value is the single-cell rectangle at the origin (= Zero).
type Rect struct {
	XMin, YMin, XMax, YMax int64
}

// Canonical sentinel rectangles.
var (
	// Zero is the one-cell rectangle covering only the origin.
	Zero = Rect{}
	// All is the universal rectangle covering the entire plane.
	All = Rect{XMin: NegInf, YMin: NegInf, XMax: PosInf, YMax: PosInf}
)
