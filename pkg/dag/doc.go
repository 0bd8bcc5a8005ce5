// Package dag provides a directed acyclic graph organized into rows
// (layers), used to record breadth-first explorations of the puzzle state
// graph.
//
// # Overview
//
// Each node is one puzzle state and its row is the number of moves needed
// to reach it from the exploration root. Edges record single legal moves and
// always connect nodes in consecutive rows (From.Row+1 == To.Row), so the
// graph is acyclic by construction even though the underlying puzzle graph
// is not.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge]:
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "[*1 2 3]", Row: 0})
//	g.AddNode(dag.Node{ID: "[1 2 *3]", Row: 1})
//	g.AddEdge(dag.Edge{From: "[*1 2 3]", To: "[1 2 *3]"})
//
// Walk the layers with [DAG.Rows] and follow edges with [DAG.Children] and
// [DAG.Parents]. [DAG.Validate] checks the row rule, which AddEdge leaves to
// the caller so that imported graphs can be inspected before they are
// trusted.
//
// # Ordering
//
// Unlike a map-backed graph, [DAG.Nodes] and [DAG.NodesInRow] return nodes
// in insertion order. Exploration inserts states in the order they are
// discovered, so renderings are deterministic.
//
// # Metadata
//
// Both nodes and edges carry [Metadata] maps. The explorer stores the
// pointer index on nodes and the move name on edges. Metadata maps are never
// nil after insertion.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines modify the same graph; read-only use of a
// finished graph is safe.
package dag
