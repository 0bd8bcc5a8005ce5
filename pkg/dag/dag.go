package dag

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrEmptyID is returned by [DAG.AddNode] for a node without an ID.
	ErrEmptyID = errors.New("node ID must not be empty")

	// ErrDuplicateNode is returned by [DAG.AddNode] when the ID is taken.
	ErrDuplicateNode = errors.New("duplicate node")

	// ErrNegativeRow is returned by [DAG.AddNode] for a row below zero.
	ErrNegativeRow = errors.New("row must not be negative")

	// ErrUnknownNode is returned by [DAG.AddEdge] when either endpoint is
	// missing. The wrapping error names the endpoint.
	ErrUnknownNode = errors.New("unknown node")

	// ErrNonConsecutiveRows is returned by [DAG.Validate] for an edge whose
	// target does not sit exactly one row below its source.
	ErrNonConsecutiveRows = errors.New("edges must connect consecutive rows")
)

// Metadata holds arbitrary key-value pairs for nodes, edges and the graph.
type Metadata map[string]any

// Node is one vertex of the graph.
type Node struct {
	ID   string   // unique identifier, also the display label
	Row  int      // layer, 0 for the root
	Meta Metadata // never nil once added
}

// Edge is a directed connection from one node to another.
type Edge struct {
	From string
	To   string
	Meta Metadata // never nil once added
}

// DAG is a graph whose nodes are grouped into rows.
//
// Use [New] to create one; the zero value is not ready for use.
type DAG struct {
	meta  Metadata
	index map[string]*Node
	order []*Node
	rows  [][]*Node
	edges []Edge
	out   map[string][]int // node ID -> indices into edges
	in    map[string][]int
}

// New returns an empty graph carrying meta. A nil meta is replaced by an
// empty map.
func New(meta Metadata) *DAG {
	if meta == nil {
		meta = Metadata{}
	}
	return &DAG{
		meta:  meta,
		index: make(map[string]*Node),
		out:   make(map[string][]int),
		in:    make(map[string][]int),
	}
}

// Meta returns the graph-level metadata.
func (d *DAG) Meta() Metadata { return d.meta }

// AddNode inserts n into its row.
func (d *DAG) AddNode(n Node) error {
	switch {
	case n.ID == "":
		return ErrEmptyID
	case n.Row < 0:
		return ErrNegativeRow
	}
	if _, ok := d.index[n.ID]; ok {
		return ErrDuplicateNode
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}

	node := &n
	d.index[n.ID] = node
	d.order = append(d.order, node)
	for len(d.rows) <= n.Row {
		d.rows = append(d.rows, nil)
	}
	d.rows[n.Row] = append(d.rows[n.Row], node)
	return nil
}

// AddEdge connects two nodes that are already in the graph. Row placement
// is checked by [DAG.Validate], not here.
func (d *DAG) AddEdge(e Edge) error {
	if _, ok := d.index[e.From]; !ok {
		return fmt.Errorf("source %q: %w", e.From, ErrUnknownNode)
	}
	if _, ok := d.index[e.To]; !ok {
		return fmt.Errorf("target %q: %w", e.To, ErrUnknownNode)
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}

	i := len(d.edges)
	d.edges = append(d.edges, e)
	d.out[e.From] = append(d.out[e.From], i)
	d.in[e.To] = append(d.in[e.To], i)
	return nil
}

// Node looks up a node by ID.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.index[id]
	return n, ok
}

// Nodes returns every node in insertion order. The slice is a copy but the
// nodes are shared with the graph.
func (d *DAG) Nodes() []*Node { return slices.Clone(d.order) }

// Edges returns a copy of every edge in insertion order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

func (d *DAG) NodeCount() int { return len(d.order) }
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Children returns the targets of the edges leaving id.
func (d *DAG) Children(id string) []string { return d.ends(d.out[id], false) }

// Parents returns the sources of the edges entering id.
func (d *DAG) Parents(id string) []string { return d.ends(d.in[id], true) }

func (d *DAG) ends(idx []int, from bool) []string {
	ids := make([]string, len(idx))
	for i, k := range idx {
		if from {
			ids[i] = d.edges[k].From
		} else {
			ids[i] = d.edges[k].To
		}
	}
	return ids
}

// NodesInRow returns the nodes of one row in insertion order, or nil when
// the row is empty or out of range.
func (d *DAG) NodesInRow(row int) []*Node {
	if row < 0 || row >= len(d.rows) {
		return nil
	}
	return d.rows[row]
}

// RowCount is one more than the deepest row, or 0 for an empty graph.
func (d *DAG) RowCount() int { return len(d.rows) }

// Rows yields each non-empty row in ascending order with its nodes.
func (d *DAG) Rows() iter.Seq2[int, []*Node] {
	return func(yield func(int, []*Node) bool) {
		for row, nodes := range d.rows {
			if len(nodes) == 0 {
				continue
			}
			if !yield(row, nodes) {
				return
			}
		}
	}
}

// Sources returns the nodes without incoming edges, in insertion order.
func (d *DAG) Sources() []*Node {
	var out []*Node
	for _, n := range d.order {
		if len(d.in[n.ID]) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Validate reports the first edge that does not go from some row r to row
// r+1. Since every edge moves strictly downward a valid graph has no cycles.
func (d *DAG) Validate() error {
	for _, e := range d.edges {
		from, to := d.index[e.From], d.index[e.To]
		if to.Row != from.Row+1 {
			return fmt.Errorf("%s (row %d) -> %s (row %d): %w", e.From, from.Row, e.To, to.Row, ErrNonConsecutiveRows)
		}
	}
	return nil
}

// NodeIDs maps nodes to their IDs.
func NodeIDs(nodes []*Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
