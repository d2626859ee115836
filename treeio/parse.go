package treeio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/leafpair/treepair"
)

// Sentinel errors for input parsing.
var (
	// ErrBadHeader indicates the `M R B` header line is missing or malformed.
	ErrBadHeader = errors.New("treeio: malformed header line")

	// ErrBadEdge indicates an edge line is missing or malformed.
	ErrBadEdge = errors.New("treeio: malformed edge line")

	// ErrBadColorList indicates a red/blue line contains a non-integer token.
	ErrBadColorList = errors.New("treeio: malformed color list")
)

const (
	headerTokens = 3 // M R B
	edgeTokens   = 2 // u v

	// maxLineBytes bounds a single input line; color lines grow with the
	// number of colored leaves, well beyond bufio's 64KiB default.
	maxLineBytes = 1 << 20
)

// Parse reads a tree description from r and constructs the graph.
// It fails fast on the first malformed line and produces no graph on error.
// Absent or empty color lines mean "no nodes of that color".
//
// Complexity: O(N) time and memory for N = M+1 nodes.
func Parse(r io.Reader) (*treepair.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	m, err := readHeader(sc)
	if err != nil {
		return nil, err
	}

	edges, err := readEdges(sc, m)
	if err != nil {
		return nil, err
	}

	colors := make(map[int]treepair.Color)
	// Red first, blue second: on overlap the later (blue) assignment wins.
	if err = readColorLine(sc, colors, treepair.Red); err != nil {
		return nil, err
	}
	if err = readColorLine(sc, colors, treepair.Blue); err != nil {
		return nil, err
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("treeio: read: %w", err)
	}

	g, err := treepair.NewGraph(m+1, edges, colors)
	if err != nil {
		return nil, fmt.Errorf("treeio: %w", err)
	}

	return g, nil
}

// ParseFile parses the file at path, or standard input when path is empty.
func ParseFile(path string) (*treepair.Graph, error) {
	if path == "" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("treeio: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// readHeader consumes the `M R B` line and returns M. The R and B counts
// must be integers but their values are intentionally not validated
// against the color lists.
func readHeader(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("%w: missing header", ErrBadHeader)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != headerTokens {
		return 0, fmt.Errorf("%w: want %d tokens, got %d", ErrBadHeader, headerTokens, len(fields))
	}
	nums, err := atoiAll(fields)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if nums[0] < 0 {
		return 0, fmt.Errorf("%w: negative edge count %d", ErrBadHeader, nums[0])
	}

	return nums[0], nil
}

// readEdges consumes exactly m edge lines.
func readEdges(sc *bufio.Scanner, m int) ([]treepair.Edge, error) {
	edges := make([]treepair.Edge, 0, m)
	for i := 0; i < m; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: want %d edge lines, got %d", ErrBadEdge, m, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != edgeTokens {
			return nil, fmt.Errorf("%w: line %d: want %d tokens, got %d", ErrBadEdge, i+2, edgeTokens, len(fields))
		}
		nums, err := atoiAll(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadEdge, i+2, err)
		}
		edges = append(edges, treepair.Edge{U: nums[0], V: nums[1]})
	}

	return edges, nil
}

// readColorLine paints every id on the next line with c.
// A missing line (EOF) or an empty line paints nothing.
func readColorLine(sc *bufio.Scanner, colors map[int]treepair.Color, c treepair.Color) error {
	if !sc.Scan() {
		return nil
	}
	for _, tok := range strings.Fields(sc.Text()) {
		id, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", ErrBadColorList, tok)
		}
		colors[id] = c
	}

	return nil
}

// atoiAll converts every token or reports the first offender.
func atoiAll(fields []string) ([]int, error) {
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", f)
		}
		nums[i] = n
	}

	return nums, nil
}
