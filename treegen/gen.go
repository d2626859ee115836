package treegen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/leafpair/treepair"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewNodes indicates a topology was requested with fewer than two nodes.
	ErrTooFewNodes = errors.New("treegen: topology needs at least two nodes")

	// ErrNodeRange indicates an edge endpoint outside 1..n.
	ErrNodeRange = errors.New("treegen: edge endpoint out of range")
)

// File-local constants (no magic literals).
const (
	minNodes = 2 // smallest tree with an edge

	// defaultSeed is the fixed seed substituted when callers pass seed==0.
	// Arbitrary but stable, to keep reproducible defaults.
	defaultSeed int64 = 1
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Path returns the n-1 edges of the simple path 1-2-…-n,
// emitted in ascending order.
// Complexity: O(n).
func Path(n int) ([]treepair.Edge, error) {
	if n < minNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minNodes, ErrTooFewNodes)
	}

	edges := make([]treepair.Edge, 0, n-1)
	for v := 1; v < n; v++ {
		edges = append(edges, treepair.Edge{U: v, V: v + 1})
	}

	return edges, nil
}

// Star returns the n-1 spokes of a star with center n and leaves 1..n-1,
// emitted in ascending leaf order.
// Complexity: O(n).
func Star(n int) ([]treepair.Edge, error) {
	if n < minNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minNodes, ErrTooFewNodes)
	}

	edges := make([]treepair.Edge, 0, n-1)
	for v := 1; v < n; v++ {
		edges = append(edges, treepair.Edge{U: v, V: n})
	}

	return edges, nil
}

// Random returns the edges of a random-attachment tree on nodes 1..n:
// each node i in 2..n joins a uniformly chosen node in 1..i-1. The result
// is always a tree, with exactly n-1 edges emitted in ascending i order.
// Deterministic per (n, seed).
// Complexity: O(n).
func Random(n int, seed int64) ([]treepair.Edge, error) {
	if n < minNodes {
		return nil, fmt.Errorf("Random: n=%d < min=%d: %w", n, minNodes, ErrTooFewNodes)
	}

	rng := rngFromSeed(seed)
	edges := make([]treepair.Edge, 0, n-1)
	for v := 2; v <= n; v++ {
		parent := rng.Intn(v-1) + 1 // uniform over 1..v-1
		edges = append(edges, treepair.Edge{U: parent, V: v})
	}

	return edges, nil
}

// RandomLeafColors shuffles the degree-1 nodes of the given tree and
// paints the first half red and the second half blue; with an odd leaf
// count the middle node stays uncolored, so the red and blue sets always
// have equal size. Deterministic per (n, edges, seed).
// Complexity: O(n + len(edges)).
func RandomLeafColors(n int, edges []treepair.Edge, seed int64) (map[int]treepair.Color, error) {
	if n < minNodes {
		return nil, fmt.Errorf("RandomLeafColors: n=%d < min=%d: %w", n, minNodes, ErrTooFewNodes)
	}

	degree := make([]int, n+1)
	for _, e := range edges {
		if e.U < 1 || e.U > n || e.V < 1 || e.V > n {
			return nil, fmt.Errorf("RandomLeafColors: edge (%d,%d): %w", e.U, e.V, ErrNodeRange)
		}
		degree[e.U]++
		degree[e.V]++
	}

	// Collect leaves in ascending order, then shuffle for an unbiased split.
	leaves := make([]int, 0, n)
	for v := 1; v <= n; v++ {
		if degree[v] == 1 {
			leaves = append(leaves, v)
		}
	}
	rng := rngFromSeed(seed)
	rng.Shuffle(len(leaves), func(i, j int) {
		leaves[i], leaves[j] = leaves[j], leaves[i]
	})

	half := len(leaves) / 2
	colors := make(map[int]treepair.Color, 2*half)
	for _, v := range leaves[:half] {
		colors[v] = treepair.Red
	}
	for _, v := range leaves[len(leaves)-half:] {
		colors[v] = treepair.Blue
	}

	return colors, nil
}
