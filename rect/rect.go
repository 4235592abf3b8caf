package rect

import (
	"fmt"
)

// midBound clamps coordinates before width/midpoint arithmetic so that
// unbounded sides cannot overflow int64. Clamping only affects measures
// (width, area, margin, center) used as heuristics, never set membership.
const midBound int64 = 1<<31 - 1

// New constructs a validated rectangle.
// Returns ErrInvalidRect (wrapped with coordinates) on malformed input.
func New(xmin, ymin, xmax, ymax int64) (Rect, error) {
	r := Rect{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
	if err := r.Validate(); err != nil {
		return Rect{}, err
	}
	return r.Canonicalize(), nil
}

// Validate reports whether r is a well-formed closed-interval rectangle:
// XMin ≤ XMax and YMin ≤ YMax, judged after sentinel folding (so raw
// int64 extremes count as infinities). The returned error wraps
// ErrInvalidRect and carries the offending coordinates.
func (r Rect) Validate() error {
	c := r.Canonicalize()
	if c.XMin > c.XMax || c.YMin > c.YMax {
		return fmt.Errorf("%w: min exceeds max in %s", ErrInvalidRect, r)
	}
	return nil
}

// Canonicalize folds the raw int64 extremes onto the NegInf/PosInf
// sentinels, so that rectangles built from math.MinInt64/math.MaxInt64
// compare equal to the canonical unbounded forms (Zero and All are
// already structural and need no folding).
func (r Rect) Canonicalize() Rect {
	if r.XMin == -1<<63 {
		r.XMin = NegInf
	}
	if r.YMin == -1<<63 {
		r.YMin = NegInf
	}
	if r.XMax == 1<<63-1 {
		r.XMax = PosInf
	}
	if r.YMax == 1<<63-1 {
		r.YMax = PosInf
	}
	return r
}

// IsAll reports whether r is the universal rectangle.
func (r Rect) IsAll() bool { return r == All }

// IsZero reports whether r is the one-cell origin rectangle.
func (r Rect) IsZero() bool { return r == Zero }

// Intersects reports whether r and o share at least one grid point.
// Closed-interval semantics: touching edges do intersect.
func (r Rect) Intersects(o Rect) bool {
	return !(r.XMax < o.XMin || o.XMax < r.XMin || r.YMax < o.YMin || o.YMax < r.YMin)
}

// Contains reports whether r fully covers o.
func (r Rect) Contains(o Rect) bool {
	return r.XMin <= o.XMin && r.YMin <= o.YMin && r.XMax >= o.XMax && r.YMax >= o.YMax
}

// ContainsPoint reports whether the grid point (x,y) lies inside r.
func (r Rect) ContainsPoint(x, y int64) bool {
	return r.XMin <= x && x <= r.XMax && r.YMin <= y && y <= r.YMax
}

// Intersection returns the overlap of r and o, and whether it is non-empty.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	return Rect{
		XMin: max64(r.XMin, o.XMin),
		YMin: max64(r.YMin, o.YMin),
		XMax: min64(r.XMax, o.XMax),
		YMax: min64(r.YMax, o.YMax),
	}, true
}

// Union returns the minimum bounding rectangle of r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		XMin: min64(r.XMin, o.XMin),
		YMin: min64(r.YMin, o.YMin),
		XMax: max64(r.XMax, o.XMax),
		YMax: max64(r.YMax, o.YMax),
	}
}

// Subtract partitions r\o into at most four disjoint fragments, emitted in
// the canonical order: top strip, bottom strip, left strip, right strip.
// The order and the fragment coordinates are part of the package contract —
// every engine built on Subtract decomposes identical inputs identically.
//
// Fragment layout (o overlapping the middle of r):
//
//	┌───────────────┐
//	│      top      │
//	├────┬─────┬────┤
//	│left│  o  │rght│
//	├────┴─────┴────┤
//	│     bottom    │
//	└───────────────┘
//
// Complexity: O(1); allocates the result slice only.
func (r Rect) Subtract(o Rect) []Rect {
	// 1) Disjoint: nothing to remove.
	if !r.Intersects(o) {
		return []Rect{r}
	}
	// 2) Swallowed whole: nothing remains.
	if o.Contains(r) {
		return nil
	}
	out := make([]Rect, 0, 4)
	// 3) Top strip spans the full width of r above o.
	if r.YMin < o.YMin {
		out = append(out, Rect{XMin: r.XMin, YMin: r.YMin, XMax: r.XMax, YMax: o.YMin - 1})
	}
	// 4) Bottom strip spans the full width of r below o.
	if r.YMax > o.YMax {
		out = append(out, Rect{XMin: r.XMin, YMin: o.YMax + 1, XMax: r.XMax, YMax: r.YMax})
	}
	// 5) Left/right strips cover only the y-range shared with o.
	y1, y2 := max64(r.YMin, o.YMin), min64(r.YMax, o.YMax)
	if y1 <= y2 {
		if r.XMin < o.XMin {
			out = append(out, Rect{XMin: r.XMin, YMin: y1, XMax: o.XMin - 1, YMax: y2})
		}
		if r.XMax > o.XMax {
			out = append(out, Rect{XMin: o.XMax + 1, YMin: y1, XMax: r.XMax, YMax: y2})
		}
	}
	return out
}

// Width returns the number of columns r spans, saturated via midBound
// clamping on unbounded sides.
func (r Rect) Width() int64 {
	return clampMid(r.XMax) - clampMid(r.XMin) + 1
}

// Height returns the number of rows r spans, saturated via midBound
// clamping on unbounded sides.
func (r Rect) Height() int64 {
	return clampMid(r.YMax) - clampMid(r.YMin) + 1
}

// Area returns Width×Height, saturating at the int64 maximum.
// Used only as a split/descent heuristic, never for set semantics.
func (r Rect) Area() int64 {
	w, h := r.Width(), r.Height()
	if w != 0 && h > (1<<63-1)/w {
		return 1<<63 - 1
	}
	return w * h
}

// Margin returns the half-perimeter Width+Height (the R*-split "margin").
func (r Rect) Margin() int64 {
	return r.Width() + r.Height()
}

// OverlapArea returns the area of the intersection of r and o, or 0 when
// they are disjoint.
func (r Rect) OverlapArea(o Rect) int64 {
	i, ok := r.Intersection(o)
	if !ok {
		return 0
	}
	return i.Area()
}

// Center returns the midpoint of r with coordinates clamped to ±(2³¹−1)
// before averaging, so unbounded rectangles yield a finite centroid.
func (r Rect) Center() (x, y int64) {
	return (clampMid(r.XMin) + clampMid(r.XMax)) >> 1,
		(clampMid(r.YMin) + clampMid(r.YMax)) >> 1
}

// String renders r with -inf/+inf for the sentinels, e.g. "[0..4]x[-inf..2]".
func (r Rect) String() string {
	return fmt.Sprintf("[%s..%s]x[%s..%s]",
		coordString(r.XMin), coordString(r.XMax),
		coordString(r.YMin), coordString(r.YMax))
}

func coordString(v int64) string {
	switch {
	case v <= NegInf:
		return "-inf"
	case v >= PosInf:
		return "+inf"
	default:
		return fmt.Sprintf("%d", v)
	}
}

func clampMid(v int64) int64 {
	if v > midBound {
		return midBound
	}
	if v < -midBound {
		return -midBound
	}
	return v
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
