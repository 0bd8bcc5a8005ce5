// Package io provides JSON import and export for exploration graphs.
//
// # JSON Format
//
// The format has two top-level arrays:
//
//	{
//	  "meta": {"root": "[*1 2 3]"},
//	  "nodes": [
//	    {"id": "[*1 2 3]", "meta": {"depth": 0, "pointer": 0}},
//	    {"id": "[2 *1 3]", "row": 1, "meta": {"depth": 1, "pointer": 1}}
//	  ],
//	  "edges": [
//	    {"from": "[*1 2 3]", "to": "[2 *1 3]", "meta": {"move": "swap-right"}}
//	  ]
//	}
//
// Nodes carry a unique id (the state rendering), an optional row (omitted
// for row 0) and freeform metadata. Edges reference node ids.
//
// Numbers in metadata come back from [ReadJSON] as float64, following
// encoding/json.
//
// # Import
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to read
// from any io.Reader. Both reject duplicate node ids and edges that
// reference unknown nodes with INVALID_FORMAT; errors name the node or edge
// that caused them and wrap the matching dag sentinel.
//
// # Export
//
// Use [ExportJSON] to write a graph to a file, or [WriteJSON] to write to any
// io.Writer. Nodes and edges are written in insertion order.
package io
