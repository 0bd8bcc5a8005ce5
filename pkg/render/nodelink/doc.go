// Package nodelink renders explored puzzle state graphs as node-link
// diagrams.
//
// # Usage
//
// Convert an exploration graph to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(res.Graph, nodelink.DefaultOptions())
//	svg, err := nodelink.RenderSVG(dot)
//
// # Layout
//
// Each row of the graph (the states a fixed number of moves from the root)
// is pinned to one rank, so the diagram reads top to bottom in move order.
// Edges are labelled with the move that produced them, pointer moves are
// dashed, and the root state is drawn highlighted.
//
// # Options
//
//   - Detailed: node labels include the depth and pointer index
//   - MoveLabels: edges carry their move name
//
// The DOT output can be piped to the dot command directly or rendered with
// [RenderSVG], which uses the WASM build of Graphviz shipped with
// github.com/goccy/go-graphviz and needs no system install.
package nodelink
