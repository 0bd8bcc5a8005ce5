package dag_test

import (
	"fmt"

	"github.com/matzehuels/pants/pkg/dag"
)

func ExampleDAG_basic() {
	// Root state, one move away, two moves away
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "[*1 2 3]", Row: 0})
	_ = g.AddNode(dag.Node{ID: "[2 *1 3]", Row: 1})
	_ = g.AddNode(dag.Node{ID: "[2 3 *1]", Row: 2})
	_ = g.AddEdge(dag.Edge{From: "[*1 2 3]", To: "[2 *1 3]"})
	_ = g.AddEdge(dag.Edge{From: "[2 *1 3]", To: "[2 3 *1]"})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Rows:", g.RowCount())
	fmt.Println("Valid:", g.Validate() == nil)
	// Output:
	// Nodes: 3
	// Edges: 2
	// Rows: 3
	// Valid: true
}

func ExampleDAG_NodesInRow() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "root", Row: 0})
	_ = g.AddNode(dag.Node{ID: "b", Row: 1})
	_ = g.AddNode(dag.Node{ID: "a", Row: 1})

	fmt.Println(dag.NodeIDs(g.NodesInRow(1)))
	// Output:
	// [b a]
}

func ExampleDAG_Rows() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "[*1 2]", Row: 0})
	_ = g.AddNode(dag.Node{ID: "[1 *2]", Row: 1})
	_ = g.AddNode(dag.Node{ID: "[2 *1]", Row: 1})

	for row, nodes := range g.Rows() {
		fmt.Println(row, dag.NodeIDs(nodes))
	}
	// Output:
	// 0 [[*1 2]]
	// 1 [[1 *2] [2 *1]]
}
