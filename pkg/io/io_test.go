package io

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/pants/pkg/dag"
	perrors "github.com/matzehuels/pants/pkg/errors"
)

func sampleGraph() *dag.DAG {
	g := dag.New(dag.Metadata{"root": "[*1 2]"})
	_ = g.AddNode(dag.Node{ID: "[*1 2]", Meta: dag.Metadata{"pointer": 0}})
	_ = g.AddNode(dag.Node{ID: "[2 *1]", Row: 1, Meta: dag.Metadata{"pointer": 1}})
	_ = g.AddEdge(dag.Edge{From: "[*1 2]", To: "[2 *1]", Meta: dag.Metadata{"move": "swap-right"}})
	return g
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleGraph(), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	g, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if got := dag.NodeIDs(g.Nodes()); !slices.Equal(got, []string{"[*1 2]", "[2 *1]"}) {
		t.Errorf("nodes = %v", got)
	}
	n, _ := g.Node("[2 *1]")
	if n.Row != 1 {
		t.Errorf("row = %d, want 1", n.Row)
	}
	if n.Meta["pointer"] != float64(1) {
		t.Errorf("pointer meta = %#v", n.Meta["pointer"])
	}
	edges := g.Edges()
	if len(edges) != 1 || edges[0].Meta["move"] != "swap-right" {
		t.Errorf("edges = %+v", edges)
	}
	if g.Meta()["root"] != "[*1 2]" {
		t.Errorf("graph meta = %v", g.Meta())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestWriteJSONOmitsZeroRow(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleGraph(), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if strings.Count(buf.String(), `"row"`) != 1 {
		t.Errorf("expected exactly one row field:\n%s", buf.String())
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"duplicate node", `{"nodes":[{"id":"a"},{"id":"a"}],"edges":[]}`, dag.ErrDuplicateNode},
		{"empty id", `{"nodes":[{"id":""}],"edges":[]}`, dag.ErrEmptyID},
		{"negative row", `{"nodes":[{"id":"a","row":-1}],"edges":[]}`, dag.ErrNegativeRow},
		{"unknown source", `{"nodes":[{"id":"a"}],"edges":[{"from":"x","to":"a"}]}`, dag.ErrUnknownNode},
		{"unknown target", `{"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"x"}]}`, dag.ErrUnknownNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadJSON() error = %v, want %v", err, tt.want)
			}
			if !perrors.Is(err, perrors.ErrCodeInvalidFormat) {
				t.Errorf("ReadJSON() code = %v, want INVALID_FORMAT", perrors.GetCode(err))
			}
		})
	}

	if _, err := ReadJSON(strings.NewReader("{")); !perrors.Is(err, perrors.ErrCodeInvalidFormat) {
		t.Errorf("ReadJSON(malformed) error = %v, want INVALID_FORMAT", err)
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := ExportJSON(sampleGraph(), path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	g, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("imported %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); !perrors.Is(err, perrors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestWriteJSONEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(dag.New(nil), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	for _, want := range []string{`"nodes": []`, `"edges": []`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %s:\n%s", want, buf.String())
		}
	}
}
