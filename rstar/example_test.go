package rstar_test

import (
	"fmt"

	"github.com/katalvlaran/rectmap/rect"
	"github.com/katalvlaran/rectmap/rstar"
	"github.com/katalvlaran/rectmap/spatial"
)

// Example demonstrates the global-value short circuit: a universal insert
// collapses the tree, a following finite insert re-opens it with the old
// value surviving on the uncovered remainder.
func Example() {
	tr := rstar.New[string]()
	_ = tr.Insert(rect.All, "ocean")
	_ = tr.Insert(rect.Rect{XMin: 0, YMin: 0, XMax: 9, YMax: 9}, "island")

	probe := func(x, y int64) string {
		val := "∅"
		tr.Query(rect.Rect{XMin: x, YMin: y, XMax: x, YMax: y})(func(e spatial.Entry[string]) bool {
			val = e.Value
			return true
		})
		return val
	}
	fmt.Println(probe(5, 5))
	fmt.Println(probe(1000, -1000))
	// Output:
	// island
	// ocean
}
