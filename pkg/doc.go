// Package pkg holds the libraries behind the pants puzzle tooling.
//
// # Overview
//
// A pants puzzle is a sequence of distinct values with a pointer on one of
// them. The pointer can jump two places left or right, or the pointed value
// can swap with a neighbour, carrying the pointer along. The pkg directory
// is organized as:
//
//  1. [pants] - States, moves and cycle-avoiding search paths
//  2. [explore] - Bounded breadth-first walks over the reachable states
//  3. [dag] - The layered graph a walk produces
//  4. [io] and [render/nodelink] - JSON, DOT and SVG output for walk graphs
//  5. [puzzle] - TOML puzzle files and compact state parsing
//  6. [errors], [observability] and its Prometheus adapter, [buildinfo] -
//     Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	puzzle file or arguments
//	         ↓
//	    [puzzle] package (parse and validate the start state)
//	         ↓
//	    [explore] package (walk Path.Successors breadth-first)
//	         ↓
//	    [dag] package (one row per depth)
//	         ↓
//	    JSON/DOT/SVG output
//
// # Quick Start
//
//	s := pants.NewState(2, 1, 2, 3, 4, 5)
//	for m, child := range pants.NewPath(s).Successors() {
//	    fmt.Println(m, child.Last())
//	}
//
//	res, err := explore.Walk(ctx, s, explore.Options{MaxDepth: 4})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.States(), "states")
package pkg
