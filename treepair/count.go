package treepair

import "fmt"

// reducer encapsulates the mutable state of one CountPaths run.
type reducer struct {
	g     *Graph
	opts  CountOptions
	paths int
}

// CountPaths drives g down to the empty node set and returns the maximum
// number of vertex-disjoint red–blue paths.
//
// Each iteration extracts one leaf from the frontier. An isolated leaf
// (one whose last edge vanished with an earlier pair removal) is simply
// discarded. Otherwise the leaf is removed, and if its recorded color is
// opposite to its sole neighbor's, the pair is counted and the neighbor is
// consumed as well: that neighbor can never serve another path, which is
// the disjointness guarantee. If no pair forms, the leaf's color is pushed
// onto the neighbor so the colored endpoint stays reachable through it.
//
// The final count is independent of extraction order on any valid tree.
// Returns ErrGraphNil for a nil graph and ErrBadLeafPick if a custom
// picker steps outside the frontier.
//
// Complexity: O(n) — every node is removed exactly once. With a custom
// leaf picker the frontier snapshot adds O(L) per step (L = frontier size).
func CountPaths(g *Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &reducer{g: g, opts: o}

	return r.run()
}

// run loops until the frontier is exhausted; on a tree this empties the
// whole node set, since a finite forest always has a leaf.
func (r *reducer) run() (int, error) {
	for r.g.leaves.Size() > 0 {
		leaf, err := r.next()
		if err != nil {
			return 0, err
		}
		if err = r.reduce(leaf); err != nil {
			return 0, err
		}
		r.trace(leaf)
	}

	return r.paths, nil
}

// next selects the leaf to extract: the picker's choice when one is
// installed (validated against the frontier), else the oldest frontier
// member.
func (r *reducer) next() (int, error) {
	if r.opts.PickLeaf != nil {
		leaf := r.opts.PickLeaf(r.g.Leaves())
		if !r.g.leaves.Contains(leaf) {
			return 0, fmt.Errorf("CountPaths: picked %d: %w", leaf, ErrBadLeafPick)
		}
		return leaf, nil
	}

	it := r.g.leaves.Iterator()
	it.Next()

	return it.Value().(int), nil
}

// reduce performs one elimination step for the extracted leaf.
func (r *reducer) reduce(leaf int) error {
	if r.g.Degree(leaf) == 0 {
		// Isolated: its last edge vanished when a counted pair consumed
		// the neighbor. Discard without touching the count.
		return r.g.RemoveNode(leaf)
	}

	neighbor := r.g.soleNeighbor(leaf)
	if err := r.g.RemoveNode(leaf); err != nil {
		return err
	}

	// leaf's color entry is still valid here although leaf is gone.
	if r.g.HasOppositeColors(leaf, neighbor) {
		r.paths++
		return r.g.RemoveNode(neighbor)
	}
	r.g.PropagateColor(leaf, neighbor)

	return nil
}

// trace invokes the OnReduce hook, if any, with a post-step snapshot.
// The snapshot is only rendered when a hook is installed.
func (r *reducer) trace(leaf int) {
	if r.opts.OnReduce == nil {
		return
	}
	r.opts.OnReduce(leaf, r.g.String(), r.paths)
}
