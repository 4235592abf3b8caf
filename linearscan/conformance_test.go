// File: linearscan/conformance_test.go
package linearscan_test

import (
	"testing"

	"github.com/katalvlaran/rectmap/linearscan"
	"github.com/katalvlaran/rectmap/rect"
	"github.com/katalvlaran/rectmap/spatial"
	"github.com/katalvlaran/rectmap/spatialtest"
)

func stringFactory() spatial.Index[string] { return linearscan.New[string]() }
func intFactory() spatial.Index[int]       { return linearscan.New[int]() }

func TestConformance_CanonicalScenarios(t *testing.T) {
	spatialtest.CheckCanonicalScenarios(t, stringFactory)
}

func TestConformance_Fixtures(t *testing.T) {
	spatialtest.RunFixtures(t, stringFactory)
}

func TestConformance_LWWOracle(t *testing.T) {
	spatialtest.CheckLWW(t, stringFactory, []spatial.Entry[string]{
		{Rect: rect.Rect{XMin: 0, YMin: 1, XMax: 2, YMax: 2}, Value: "RED"},
		{Rect: rect.Rect{XMin: 1, YMin: 0, XMax: 3, YMax: 2}, Value: "BLUE"},
		{Rect: rect.Rect{XMin: 2, YMin: 2, XMax: 6, YMax: 6}, Value: "GREEN"},
		{Rect: rect.Rect{XMin: 0, YMin: 0, XMax: 1, YMax: 8}, Value: "YELLOW"},
	}, rect.Rect{XMin: -1, YMin: -1, XMax: 9, YMax: 9})
}

func TestConformance_FragmentationBound(t *testing.T) {
	spatialtest.CheckFragmentationBound(t, intFactory)
}

func TestConformance_QueryContract(t *testing.T) {
	idx := spatialtest.SmallOverlapping(t, stringFactory)
	spatialtest.CheckQueryContract(t, idx, rect.Rect{XMin: 1, YMin: 2, XMax: 4, YMax: 9})
	spatialtest.CheckQueryContract(t, idx, rect.All)
	spatialtest.CheckQueryContract(t, idx, rect.Rect{XMin: -50, YMin: -50, XMax: -40, YMax: -40})
}
