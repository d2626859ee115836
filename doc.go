// Package leafpair answers one question about a tree whose leaves are
// partially painted red or blue: how many vertex-disjoint paths can you
// draw, each connecting one red node to one blue node?
//
// 🍂 How does it work?
//
//	The tree is consumed leaf by leaf. Each extracted leaf either
//		• completes a red–blue pair with its sole neighbor (both nodes are
//		  consumed, the counter goes up), or
//		• hands its color over to the neighbor and disappears, so the
//		  colored endpoint stays reachable through the survivor.
//	When the last node is gone, the counter holds the maximum number of
//	mutually disjoint red–blue paths.
//
// ✨ Why leafpair?
//
//   - Tiny API — build a graph, call CountPaths, done
//   - Deterministic — same input and extraction order ⇒ same trace
//   - Order-proof — the final count is identical for any extraction order
//   - Observable — an optional hook sees every reduction step
//
// Everything is organized under three subpackages plus a CLI:
//
//	treepair/ — the mutable graph arena and the CountPaths reduction engine
//	treeio/   — parsing of the `M R B` / edges / red line / blue line format
//	treegen/  — deterministic path, star and random-tree generators
//	cmd/leafpair — file-or-stdin command with verbose step tracing
//
// Quick ASCII example:
//
//	    R───○───B        one red leaf, one blue leaf, one shared middle
//	        │            node ⇒ exactly one disjoint path, no matter how
//	        R            many colored leaves still hang off the middle.
//
//	go get github.com/katalvlaran/leafpair
package leafpair
