// Package treepair defines the Color enumeration, sentinel errors, and
// functional options for the leaf-elimination engine.
package treepair

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and reduction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to CountPaths.
	ErrGraphNil = errors.New("treepair: graph is nil")

	// ErrTooFewNodes indicates a node count below one.
	ErrTooFewNodes = errors.New("treepair: graph needs at least one node")

	// ErrEdgeCount indicates the edge list does not hold exactly n-1 edges.
	ErrEdgeCount = errors.New("treepair: edge count must be node count minus one")

	// ErrNodeRange indicates a node id outside the arena range 1..n.
	ErrNodeRange = errors.New("treepair: node id out of range")

	// ErrNodeNotLive indicates RemoveNode was called on a removed node.
	ErrNodeNotLive = errors.New("treepair: node is not live")

	// ErrBadLeafPick indicates a leaf picker returned an id that is not
	// currently in the leaf frontier.
	ErrBadLeafPick = errors.New("treepair: leaf picker chose a non-leaf")
)

// Color is the paint state of a node: None, Red, or Blue.
// It is a closed enumeration; colors are assigned at construction or by
// propagation and are never cleared.
type Color uint8

const (
	// None marks an uncolored node.
	None Color = iota
	// Red marks a red endpoint.
	Red
	// Blue marks a blue endpoint.
	Blue
)

// String implements fmt.Stringer for Color.
func (c Color) String() string {
	switch c {
	case None:
		return "none"
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// Edge is an undirected tree edge between two node ids.
type Edge struct {
	U, V int
}

// Option configures CountPaths behavior via functional arguments.
type Option func(*CountOptions)

// CountOptions holds hooks that customize a CountPaths run.
type CountOptions struct {
	// OnReduce, if non-nil, is invoked after every reduction step with the
	// extracted leaf, a snapshot of the surviving graph rendered in input
	// format (see Graph.String), and the running path count. The hook is
	// synchronous and must not mutate the graph.
	OnReduce func(leaf int, snapshot string, paths int)

	// PickLeaf, if non-nil, selects the next leaf to extract from the
	// current frontier. The returned id must be a member of the frontier
	// slice it was given; otherwise CountPaths aborts with ErrBadLeafPick.
	PickLeaf func(leaves []int) int
}

// DefaultOptions returns a CountOptions with no hooks installed:
// insertion-order extraction and no tracing.
func DefaultOptions() CountOptions {
	return CountOptions{
		OnReduce: nil,
		PickLeaf: nil,
	}
}

// WithOnReduce registers a trace hook observing each reduction step.
// Passing nil leaves tracing disabled.
func WithOnReduce(fn func(leaf int, snapshot string, paths int)) Option {
	return func(o *CountOptions) {
		if fn != nil {
			o.OnReduce = fn
		}
	}
}

// WithLeafPicker overrides the frontier extraction order.
// Passing nil retains the default insertion-order extraction.
func WithLeafPicker(fn func(leaves []int) int) Option {
	return func(o *CountOptions) {
		if fn != nil {
			o.PickLeaf = fn
		}
	}
}
