package spatialtest

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rectmap/rect"
)

//go:embed testdata/scenarios.yaml
var scenarioFixtures []byte

// fixtureEntry is one (rectangle, value) pair in the YAML schema.
type fixtureEntry struct {
	Rect  [4]int64 `yaml:"rect"`
	Value string   `yaml:"value"`
}

func (f fixtureEntry) asRect() rect.Rect {
	return rect.Rect{XMin: f.Rect[0], YMin: f.Rect[1], XMax: f.Rect[2], YMax: f.Rect[3]}
}

// fixtureScenario is one end-to-end insert sequence with its exact
// expected entry set.
type fixtureScenario struct {
	Name    string         `yaml:"name"`
	Inserts []fixtureEntry `yaml:"inserts"`
	Want    []fixtureEntry `yaml:"want"`
}

type fixtureFile struct {
	Scenarios []fixtureScenario `yaml:"scenarios"`
}

// loadFixtures parses the embedded scenario file.
func loadFixtures(tb testing.TB) []fixtureScenario {
	tb.Helper()
	var file fixtureFile
	require.NoError(tb, yaml.Unmarshal(scenarioFixtures, &file))
	require.NotEmpty(tb, file.Scenarios, "fixture file holds no scenarios")

	return file.Scenarios
}

// RunFixtures replays every embedded end-to-end scenario against a fresh
// index from the factory, asserting the exact expected entry set and the
// universal invariants. Expected sets are implementation-independent, so
// every conforming engine passes the same fixtures byte-for-byte.
func RunFixtures(t *testing.T, newIndex Factory[string]) {
	t.Helper()
	for _, sc := range loadFixtures(t) {
		t.Run(sc.Name, func(t *testing.T) {
			idx := newIndex()
			for _, in := range sc.Inserts {
				require.NoError(t, idx.Insert(in.asRect(), in.Value))
			}

			want := make(map[Pair[string]]struct{}, len(sc.Want))
			for _, w := range sc.Want {
				want[Pair[string]{Rect: w.asRect(), Value: w.Value}] = struct{}{}
			}
			require.Equal(t, want, EntrySet(idx), "final entry set")
			CheckInvariants(t, idx)
		})
	}
}
