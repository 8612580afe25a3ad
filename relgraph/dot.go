// File: dot.go
// Role: Graphviz DOT export for the finalized graph and the junction tree —
// a diagnostic/visualization surface supplementing spec §6's PrintGraph,
// grounded on pkg/render/nodelink/dot.go (stacktower).
package relgraph

import (
	"bytes"
	"fmt"

	"github.com/mutk-dev/mutk/pgraph"
)

// bandColor maps a vertex type to the fill color ToDOT uses for it.
func bandColor(t pgraph.VertexType) string {
	switch t {
	case pgraph.Founder:
		return "lightblue"
	case pgraph.Germline:
		return "white"
	case pgraph.Somatic:
		return "lightyellow"
	case pgraph.Sample:
		return "lightgreen"
	default:
		return "white"
	}
}

// ToDOT renders the finalized graph g as Graphviz DOT, banding vertices by
// type with distinct fill colors and labeling edges with their scaled
// length.
func ToDOT(g *pgraph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph relationship_graph {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=11];\n\n")

	for _, v := range g.Vertices() {
		vert := g.Vertex(v)
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", vert.Label, vertexLabel(vert), bandColor(vert.Type))
	}

	buf.WriteString("\n")
	for _, rec := range g.Edges() {
		from := g.Vertex(rec.Edge.From)
		to := g.Vertex(rec.Edge.To)
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", from.Label, to.Label, fmt.Sprintf("%.3g", rec.Edge.Length))
	}

	buf.WriteString("}\n")

	return buf.String()
}

func vertexLabel(v *pgraph.Vertex) string {
	return fmt.Sprintf("%s\n%s, ploidy=%d", v.Label, v.Sex, v.Ploidy)
}

// ToJunctionDOT renders jt as an undirected Graphviz DOT graph: clique nodes
// as boxes, separator nodes as ellipses, each labeled by its member vertices.
func ToJunctionDOT(g *pgraph.Graph, jt *JunctionTree) string {
	var buf bytes.Buffer
	buf.WriteString("graph junction_tree {\n")
	buf.WriteString("  node [fontsize=11];\n\n")

	for i, n := range jt.Nodes {
		shape := "box"
		fill := "white"
		if n.IsSeparator {
			shape = "ellipse"
			fill = "lightgrey"
		}
		fmt.Fprintf(&buf, "  %d [label=%q, shape=%s, style=filled, fillcolor=%q];\n", i, cliqueLabel(g, n.Clique), shape, fill)
	}

	buf.WriteString("\n")
	for _, e := range jt.Edges {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e[0], e[1])
	}

	buf.WriteString("}\n")

	return buf.String()
}

func cliqueLabel(g *pgraph.Graph, clique []pgraph.VertexIndex) string {
	var buf bytes.Buffer
	for i, v := range clique {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(g.Vertex(v).Label)
	}

	return buf.String()
}
