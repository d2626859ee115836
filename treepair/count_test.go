package treepair_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/leafpair/treegen"
	"github.com/katalvlaran/leafpair/treepair"
)

// CountSuite exercises the reduction engine across canonical scenarios.
type CountSuite struct {
	suite.Suite
}

func (s *CountSuite) build(n int, edges []treepair.Edge, colors map[int]treepair.Color) *treepair.Graph {
	g, err := treepair.NewGraph(n, edges, colors)
	require.NoError(s.T(), err)
	return g
}

// TestSimplePath: 1(R)-2-3(B) holds exactly one red–blue path.
func (s *CountSuite) TestSimplePath() {
	g := s.build(3,
		[]treepair.Edge{{U: 1, V: 2}, {U: 2, V: 3}},
		map[int]treepair.Color{1: treepair.Red, 3: treepair.Blue},
	)
	paths, err := treepair.CountPaths(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, paths)
}

// TestStarDisjointness: two reds and two blues around one center yield a
// single path — the shared center can serve only one pair.
func (s *CountSuite) TestStarDisjointness() {
	g := s.build(5,
		[]treepair.Edge{{U: 1, V: 5}, {U: 2, V: 5}, {U: 3, V: 5}, {U: 4, V: 5}},
		map[int]treepair.Color{1: treepair.Red, 2: treepair.Red, 3: treepair.Blue, 4: treepair.Blue},
	)
	paths, err := treepair.CountPaths(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, paths)
}

// TestNoColors: an uncolored tree pairs nothing.
func (s *CountSuite) TestNoColors() {
	edges, err := treegen.Path(6)
	require.NoError(s.T(), err)
	g := s.build(6, edges, nil)

	paths, err := treepair.CountPaths(g)
	require.NoError(s.T(), err)
	require.Zero(s.T(), paths)
	require.Zero(s.T(), g.Order(), "reduction must drain the node set")
}

// TestTwoIndependentPairs: 1(R)-2-3(B)-4(R)-5-6(B) splits into two
// node-disjoint pairs.
func (s *CountSuite) TestTwoIndependentPairs() {
	edges, err := treegen.Path(6)
	require.NoError(s.T(), err)
	g := s.build(6, edges, map[int]treepair.Color{
		1: treepair.Red, 4: treepair.Red,
		3: treepair.Blue, 6: treepair.Blue,
	})
	paths, err := treepair.CountPaths(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, paths)
}

// TestSevenNodeReference: the worked reference tree — both reds hang off
// node 2, so every red–blue path crosses it and only one can be counted.
func (s *CountSuite) TestSevenNodeReference() {
	g := s.build(7,
		[]treepair.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 2, V: 4}, {U: 4, V: 5}, {U: 5, V: 6}, {U: 5, V: 7}},
		map[int]treepair.Color{1: treepair.Red, 3: treepair.Red, 6: treepair.Blue, 7: treepair.Blue},
	)
	paths, err := treepair.CountPaths(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, paths)
}

// TestSingleton: one node, no edges, nothing to pair.
func (s *CountSuite) TestSingleton() {
	g := s.build(1, nil, map[int]treepair.Color{1: treepair.Red})
	paths, err := treepair.CountPaths(g)
	require.NoError(s.T(), err)
	require.Zero(s.T(), paths)
}

// TestColoredInnerNodes: the data model does not restrict colors to
// leaves; a red inner node pairs like any other.
func (s *CountSuite) TestColoredInnerNodes() {
	edges, err := treegen.Path(3)
	require.NoError(s.T(), err)
	g := s.build(3, edges, map[int]treepair.Color{2: treepair.Red, 3: treepair.Blue})

	paths, err := treepair.CountPaths(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, paths)
}

// TestNilGraph rejects a nil pointer up front.
func (s *CountSuite) TestNilGraph() {
	_, err := treepair.CountPaths(nil)
	require.ErrorIs(s.T(), err, treepair.ErrGraphNil)
}

// TestBadLeafPicker aborts when a picker steps outside the frontier.
func (s *CountSuite) TestBadLeafPicker() {
	edges, err := treegen.Path(4)
	require.NoError(s.T(), err)
	g := s.build(4, edges, nil)

	_, err = treepair.CountPaths(g, treepair.WithLeafPicker(func([]int) int {
		return 2 // inner node, never a leaf of the intact path
	}))
	require.ErrorIs(s.T(), err, treepair.ErrBadLeafPick)
}

// TestTraceHook observes every step of the 3-path reduction and pins the
// exact snapshots (default extraction order is deterministic).
func (s *CountSuite) TestTraceHook() {
	g := s.build(3,
		[]treepair.Edge{{U: 1, V: 2}, {U: 2, V: 3}},
		map[int]treepair.Color{1: treepair.Red, 3: treepair.Blue},
	)

	type step struct {
		leaf     int
		snapshot string
		paths    int
	}
	var steps []step
	paths, err := treepair.CountPaths(g, treepair.WithOnReduce(func(leaf int, snapshot string, p int) {
		steps = append(steps, step{leaf: leaf, snapshot: snapshot, paths: p})
	}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, paths)

	want := []step{
		// leaf 1 pushes red onto node 2
		{leaf: 1, snapshot: "1 1 1\n2 3\n2\n3", paths: 0},
		// leaf 3 completes the pair with node 2; both are consumed
		{leaf: 3, snapshot: "0 0 0\nNo edges\nNo red nodes\nNo blue nodes", paths: 1},
	}
	require.Equal(s.T(), want, steps)
}

// TestUpperBound: on random trees the count never exceeds
// min(#red, #blue) and the node set always drains.
func (s *CountSuite) TestUpperBound() {
	for seed := int64(1); seed <= 25; seed++ {
		edges, err := treegen.Random(60, seed)
		require.NoError(s.T(), err)
		colors, err := treegen.RandomLeafColors(60, edges, seed)
		require.NoError(s.T(), err)

		reds, blues := 0, 0
		for _, c := range colors {
			switch c {
			case treepair.Red:
				reds++
			case treepair.Blue:
				blues++
			}
		}
		bound := reds
		if blues < bound {
			bound = blues
		}

		g := s.build(60, edges, colors)
		paths, err := treepair.CountPaths(g)
		require.NoError(s.T(), err)
		require.GreaterOrEqual(s.T(), paths, 0, "seed %d", seed)
		require.LessOrEqual(s.T(), paths, bound, "seed %d", seed)
		require.Zero(s.T(), g.Order(), "seed %d: reduction must drain the node set", seed)
	}
}

// TestOrderIndependence fuzzes frontier extraction: for each random tree,
// a randomized leaf picker must reproduce the default-order count.
func (s *CountSuite) TestOrderIndependence() {
	const (
		nodes  = 40
		trees  = 15
		orders = 6
	)
	for seed := int64(1); seed <= trees; seed++ {
		edges, err := treegen.Random(nodes, seed)
		require.NoError(s.T(), err)
		colors, err := treegen.RandomLeafColors(nodes, edges, seed)
		require.NoError(s.T(), err)

		baseline, err := treepair.CountPaths(s.build(nodes, edges, colors))
		require.NoError(s.T(), err)

		for trial := int64(0); trial < orders; trial++ {
			rng := rand.New(rand.NewSource(seed*100 + trial))
			picker := func(leaves []int) int {
				return leaves[rng.Intn(len(leaves))]
			}
			paths, err := treepair.CountPaths(
				s.build(nodes, edges, colors),
				treepair.WithLeafPicker(picker),
			)
			require.NoError(s.T(), err)
			require.Equal(s.T(), baseline, paths,
				"seed %d trial %d: count must not depend on extraction order", seed, trial)
		}
	}
}

// TestColorsMonotone: once a node is colored it may flip hue via
// propagation but never reverts to None.
func (s *CountSuite) TestColorsMonotone() {
	edges, err := treegen.Random(30, 7)
	require.NoError(s.T(), err)
	colors, err := treegen.RandomLeafColors(30, edges, 7)
	require.NoError(s.T(), err)
	g := s.build(30, edges, colors)

	seen := make([]treepair.Color, g.MaxID()+1)
	for v := 1; v <= g.MaxID(); v++ {
		seen[v] = g.Color(v)
	}

	_, err = treepair.CountPaths(g, treepair.WithOnReduce(func(int, string, int) {
		for v := 1; v <= g.MaxID(); v++ {
			c := g.Color(v)
			if seen[v] != treepair.None {
				require.NotEqual(s.T(), treepair.None, c, "node %d reverted to None", v)
			}
			seen[v] = c
		}
	}))
	require.NoError(s.T(), err)
}

func TestCountSuite(t *testing.T) {
	suite.Run(t, new(CountSuite))
}
