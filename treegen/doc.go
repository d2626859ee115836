// Package treegen builds deterministic tree fixtures for the
// leaf-elimination engine: simple paths, stars, random-attachment trees,
// and randomized leaf colorings.
//
// What:
//
//   - Path(n): the simple path 1-2-…-n.
//   - Star(n): center n with leaves 1..n-1.
//   - Random(n, seed): a uniformly grown random-attachment tree.
//   - RandomLeafColors(n, edges, seed): paints a shuffled half of the
//     degree-1 nodes red and the other half blue.
//
// Why:
//
//   - The engine's headline property — the pair count is independent of
//     leaf extraction order — is verified by fuzzing over many random
//     trees and colorings; those need to be reproducible.
//   - Benchmarks want synthetic inputs of controllable shape and size.
//
// Determinism:
//
//	Same (n, seed) ⇒ identical edges and colorings on every platform.
//	A seed of 0 selects a fixed default seed, so the zero value is still
//	reproducible rather than time-based.
//
// Errors:
//
//   - ErrTooFewNodes: every topology here needs at least two nodes.
//   - ErrNodeRange: an edge endpoint lies outside 1..n.
//
// Constructors validate early, emit edges in a stable documented order,
// and never panic.
package treegen
