package treepair

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Graph is a destructively-reducible tree over node ids 1..n (id 0 is
// reserved and unused). Liveness and color are two independent facts about
// an id: removal flips liveness but never touches the color entry, so a
// just-removed node's color remains readable.
//
// Graph is exclusively owned by a single CountPaths run; it is not
// goroutine-safe and is not meant to be reused after reduction.
type Graph struct {
	maxID     int                // highest node id; arena size is maxID+1
	order     int                // number of currently live nodes
	live      []bool             // liveness per id
	neighbors []map[int]struct{} // symmetric adjacency among live nodes
	colors    []Color            // persistent color per id, never cleared
	leaves    *linkedhashset.Set // frontier: ids enqueued at degree 1, pending extraction
}

// NewGraph builds a Graph over ids 1..n from an edge list and an initial
// color assignment (ids absent from colors default to None).
//
// Validation is fail-fast: n must be ≥ 1 (ErrTooFewNodes), exactly n-1
// edges are required (ErrEdgeCount), and every edge endpoint and colored id
// must lie in 1..n (ErrNodeRange). That the edges form a tree is a
// documented precondition, not a runtime check.
//
// Complexity: O(n) time and memory.
func NewGraph(n int, edges []Edge, colors map[int]Color) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrTooFewNodes)
	}
	if len(edges) != n-1 {
		return nil, fmt.Errorf("NewGraph: %d edges for %d nodes: %w", len(edges), n, ErrEdgeCount)
	}

	g := &Graph{
		maxID:     n,
		order:     n,
		live:      make([]bool, n+1),
		neighbors: make([]map[int]struct{}, n+1),
		colors:    make([]Color, n+1),
		leaves:    linkedhashset.New(),
	}
	for v := 1; v <= n; v++ {
		g.live[v] = true
		g.neighbors[v] = make(map[int]struct{})
	}

	// Insert both directions so adjacency stays symmetric by construction.
	for _, e := range edges {
		if e.U < 1 || e.U > n || e.V < 1 || e.V > n {
			return nil, fmt.Errorf("NewGraph: edge (%d,%d): %w", e.U, e.V, ErrNodeRange)
		}
		g.neighbors[e.U][e.V] = struct{}{}
		g.neighbors[e.V][e.U] = struct{}{}
	}

	for v, c := range colors {
		if v < 1 || v > n {
			return nil, fmt.Errorf("NewGraph: colored id %d: %w", v, ErrNodeRange)
		}
		g.colors[v] = c
	}

	// Initial frontier pass; afterwards the frontier is maintained
	// incrementally by RemoveNode.
	for v := 1; v <= n; v++ {
		if len(g.neighbors[v]) == 1 {
			g.leaves.Add(v)
		}
	}

	return g, nil
}

// MaxID returns the highest node id; valid ids are 1..MaxID.
func (g *Graph) MaxID() int { return g.maxID }

// Order returns the number of currently live nodes.
func (g *Graph) Order() int { return g.order }

// Has reports whether v is a live node.
func (g *Graph) Has(v int) bool {
	return v >= 1 && v <= g.maxID && g.live[v]
}

// Degree returns the number of live neighbors of v.
// Removed nodes have degree 0. Ids outside 0..MaxID panic.
func (g *Graph) Degree(v int) int { return len(g.neighbors[v]) }

// Color returns the recorded color of v, which remains valid even after v
// has been removed. Ids outside 0..MaxID panic.
func (g *Graph) Color(v int) Color { return g.colors[v] }

// Nodes returns the live node ids in ascending order.
func (g *Graph) Nodes() []int {
	out := make([]int, 0, g.order)
	for v := 1; v <= g.maxID; v++ {
		if g.live[v] {
			out = append(out, v)
		}
	}
	return out
}

// Neighbors returns the live neighbors of v in ascending order.
func (g *Graph) Neighbors(v int) []int {
	out := make([]int, 0, len(g.neighbors[v]))
	for u := range g.neighbors[v] {
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}

// Leaves returns the current frontier in insertion order. A node joins the
// frontier the moment its degree reaches exactly 1; removing an inner node
// can strand an already-queued member at degree 0, where it waits to be
// extracted as an isolated leaf.
func (g *Graph) Leaves() []int {
	vals := g.leaves.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}
	return out
}

// RemoveNode removes live node v: every surviving neighbor loses the edge
// to v, and any neighbor whose degree thereby drops to exactly 1 joins the
// frontier. v's adjacency is cleared and v leaves the node set and the
// frontier. v's color entry is NOT cleared.
//
// Returns ErrNodeNotLive if v is out of range or already removed.
// Complexity: O(deg(v)).
func (g *Graph) RemoveNode(v int) error {
	if !g.Has(v) {
		return fmt.Errorf("RemoveNode(%d): %w", v, ErrNodeNotLive)
	}

	for u := range g.neighbors[v] {
		delete(g.neighbors[u], v)
		if len(g.neighbors[u]) == 1 {
			g.leaves.Add(u)
		}
	}

	clear(g.neighbors[v])
	g.live[v] = false
	g.order--
	g.leaves.Remove(v)

	return nil
}

// HasOppositeColors reports whether u and v carry distinct non-None colors,
// i.e. the edge (u,v) connects a red endpoint to a blue one. Neither node
// needs to be live: callers invoke this right after removing one endpoint.
func (g *Graph) HasOppositeColors(u, v int) bool {
	return g.colors[u] != None && g.colors[v] != None && g.colors[u] != g.colors[v]
}

// PropagateColor copies from's color onto to, overwriting any color to
// already carries. A None source leaves to untouched.
func (g *Graph) PropagateColor(from, to int) {
	if g.colors[from] != None {
		g.colors[to] = g.colors[from]
	}
}

// soleNeighbor returns the single live neighbor of a degree-1 node.
func (g *Graph) soleNeighbor(v int) int {
	for u := range g.neighbors[v] {
		return u
	}
	return 0 // unreachable for degree-1 callers
}

// String renders the surviving graph in the input format:
//
//	M R B
//	u v            (one live edge per line, or "No edges")
//	r1 r2 ... rk   (live red ids, or "No red nodes")
//	b1 b2 ... bm   (live blue ids, or "No blue nodes")
//
// Edges are emitted with u < v in ascending order, so the rendering is
// deterministic for a given graph state.
func (g *Graph) String() string {
	var (
		edges     []string
		reds      []string
		blues     []string
		edgeCount int
		sb        strings.Builder
	)
	for u := 1; u <= g.maxID; u++ {
		if g.live[u] {
			switch g.colors[u] {
			case Red:
				reds = append(reds, strconv.Itoa(u))
			case Blue:
				blues = append(blues, strconv.Itoa(u))
			}
		}
		for _, v := range g.Neighbors(u) {
			if v > u {
				edges = append(edges, fmt.Sprintf("%d %d", u, v))
				edgeCount++
			}
		}
	}

	sb.WriteString(fmt.Sprintf("%d %d %d\n", edgeCount, len(reds), len(blues)))
	if edgeCount > 0 {
		sb.WriteString(strings.Join(edges, "\n"))
	} else {
		sb.WriteString("No edges")
	}
	sb.WriteByte('\n')
	if len(reds) > 0 {
		sb.WriteString(strings.Join(reds, " "))
	} else {
		sb.WriteString("No red nodes")
	}
	sb.WriteByte('\n')
	if len(blues) > 0 {
		sb.WriteString(strings.Join(blues, " "))
	} else {
		sb.WriteString("No blue nodes")
	}

	return sb.String()
}
