// Package treeio parses the textual tree description consumed by the
// leaf-elimination engine and hands back a ready-to-reduce treepair.Graph.
//
// What:
//
//   - Parse reads the four-section format:
//
//     line 1:        M R B            (M edges ⇒ N = M+1 nodes, ids 1..N)
//     lines 2..M+1:  u v              (one edge per line)
//     line M+2:      r1 r2 ... rk     (ids colored red; may be empty or absent)
//     line M+3:      b1 b2 ... bm     (ids colored blue; same)
//
//   - ParseFile is a file-or-stdin convenience wrapper around Parse.
//
// Why:
//
//   - Keeps tokenization and validation out of the algorithm core: the
//     engine receives an already-validated edge list and color assignment.
//
// Errors:
//
//   - ErrBadHeader: header missing, wrong token count, or non-integer/negative M.
//   - ErrBadEdge: an edge line is missing, short, or non-integer.
//   - ErrBadColorList: a color token is not an integer.
//   - Range and edge-count violations surface as the wrapped treepair
//     constructor sentinels (ErrNodeRange, ErrEdgeCount).
//
// The header's R and B counts are parsed for well-formedness but are
// deliberately not cross-checked against the color lists, and colored ids
// are not required to be leaves — the format has always been permissive
// here and this parser preserves that. A node listed both red and blue
// ends up blue (the blue line is read last).
package treeio
