package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pants/pkg/dag"
	"github.com/matzehuels/pants/pkg/observability"
)

// Metadata keys read from the graph. They match the keys written by
// package explore.
const (
	metaRoot    = "root"
	metaPointer = "pointer"
	metaMove    = "move"
	metaLabel   = "label"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes depth and pointer metadata in node labels.
	// When false, only the state rendering is shown.
	Detailed bool

	// MoveLabels labels each edge with the move that produced it.
	MoveLabels bool
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{MoveLabels: true}
}

const dotHeader = `digraph G {
  rankdir=TB;
  bgcolor="transparent";
  ranksep=0.5;
  nodesep=0.3;
  node [shape=box, style="rounded,filled", fillcolor=white, fontname="Menlo, monospace", fontsize=14];
  edge [fontname="Menlo, monospace", fontsize=10];
`

// ToDOT writes g as a Graphviz digraph. Each row becomes one rank, pointer
// moves are drawn dashed and swaps solid. Nodes and edges keep insertion
// order so the same walk always yields the same text.
func ToDOT(g *dag.DAG, opts Options) string {
	var b strings.Builder
	b.WriteString(dotHeader)

	for _, nodes := range g.Rows() {
		b.WriteString("  { rank=same;")
		for _, n := range nodes {
			fmt.Fprintf(&b, " %q;", n.ID)
		}
		b.WriteString(" }\n")
	}

	root, _ := g.Meta()[metaRoot].(string)
	for _, n := range g.Nodes() {
		fmt.Fprintf(&b, "  %q [label=%q", n.ID, nodeLabel(n, opts.Detailed))
		if n.ID == root {
			b.WriteString(`, fillcolor="#d8f3ef", penwidth=2`)
		}
		b.WriteString("];\n")
	}

	for _, e := range g.Edges() {
		move, _ := e.Meta[metaMove].(string)
		var attrs []string
		if opts.MoveLabels && move != "" {
			attrs = append(attrs, fmt.Sprintf("label=%q", move))
		}
		if strings.HasPrefix(move, "move-") {
			attrs = append(attrs, "style=dashed")
		}
		fmt.Fprintf(&b, "  %q -> %q", e.From, e.To)
		if len(attrs) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(attrs, ", "))
		}
		b.WriteString(";\n")
	}

	b.WriteString("}\n")
	return b.String()
}

// nodeLabel prefers the label stored by the explorer, so string states show
// unquoted, and falls back to the node ID.
func nodeLabel(n *dag.Node, detailed bool) string {
	label, ok := n.Meta[metaLabel].(string)
	if !ok {
		label = n.ID
	}
	if !detailed {
		return label
	}
	label = fmt.Sprintf("%s\ndepth: %d", label, n.Row)
	if p, ok := n.Meta[metaPointer]; ok {
		label += fmt.Sprintf("\npointer: %v", p)
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return RenderSVGContext(context.Background(), dot)
}

// RenderSVGContext is like [RenderSVG] but passes ctx to Graphviz and to
// the registered render hooks.
func RenderSVGContext(ctx context.Context, dot string) (out []byte, err error) {
	hooks := observability.Render()
	start := time.Now()
	hooks.OnRenderStart(ctx, "svg", countNodes(dot))
	defer func() {
		hooks.OnRenderComplete(ctx, "svg", len(out), time.Since(start), err)
	}()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing scales from a
// zero origin with explicit width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// countNodes counts the node statements of DOT text written by [ToDOT]: lines
// holding a quoted ID followed by an attribute list. Edge statements follow
// their first ID with "->" instead.
func countNodes(dot string) int {
	n := 0
	for _, line := range strings.Split(dot, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, `"`) {
			continue
		}
		if _, rest, ok := cutQuoted(line); ok && strings.HasPrefix(rest, " [") {
			n++
		}
	}
	return n
}

// cutQuoted splits s after its leading double-quoted string, honouring
// backslash escapes.
func cutQuoted(s string) (quoted, rest string, ok bool) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return s[:i+1], s[i+1:], true
		}
	}
	return "", "", false
}
