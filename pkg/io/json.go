package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/pants/pkg/dag"
	"github.com/matzehuels/pants/pkg/errors"
)

// document is the on-disk shape of a graph.
type document struct {
	Meta  dag.Metadata `json:"meta,omitempty"`
	Nodes []jsonNode   `json:"nodes"`
	Edges []jsonEdge   `json:"edges"`
}

type jsonNode struct {
	ID   string       `json:"id"`
	Row  int          `json:"row,omitempty"`
	Meta dag.Metadata `json:"meta,omitempty"`
}

type jsonEdge struct {
	From string       `json:"from"`
	To   string       `json:"to"`
	Meta dag.Metadata `json:"meta,omitempty"`
}

// WriteJSON writes g to w as indented JSON that [ReadJSON] accepts.
func WriteJSON(g *dag.DAG, w io.Writer) error {
	doc := document{Meta: g.Meta()}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, jsonNode{ID: n.ID, Row: n.Row, Meta: n.Meta})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, jsonEdge{From: e.From, To: e.To, Meta: e.Meta})
	}
	if doc.Nodes == nil {
		doc.Nodes = []jsonNode{}
	}
	if doc.Edges == nil {
		doc.Edges = []jsonEdge{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
	}
	return nil
}

// ExportJSON writes g to a new file at path.
func ExportJSON(g *dag.DAG, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadJSON decodes a graph written by [WriteJSON]. It fails with
// INVALID_FORMAT on malformed JSON and on nodes or edges that [dag.DAG]
// refuses, naming the culprit; the dag sentinel stays in the chain.
//
// Row placement is not checked. Call [dag.DAG.Validate] before relying on
// it. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*dag.DAG, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph")
	}

	g := dag.New(doc.Meta)
	for _, n := range doc.Nodes {
		if err := g.AddNode(dag.Node{ID: n.ID, Row: n.Row, Meta: n.Meta}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "node %q", n.ID)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(dag.Edge{From: e.From, To: e.To, Meta: e.Meta}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "edge %s -> %s", e.From, e.To)
		}
	}
	return g, nil
}

// ImportJSON reads the graph stored at path.
func ImportJSON(path string) (*dag.DAG, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
