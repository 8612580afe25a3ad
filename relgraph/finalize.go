// File: finalize.go
// Role: stage 6 (spec §4.5) — builds a fresh graph with vertices banded
// Founder|Germline|Somatic|Sample, each band topologically ordered, isolated
// (degree-0) vertices dropped, and Founder/Germline/Somatic labels suffixed.
package relgraph

import "github.com/mutk-dev/mutk/pgraph"

// finalize returns a new graph whose vertex indices partition into the four
// contiguous bands described in spec §4.5, built from g's current state
// (post simplify/prune).
func finalize(g *pgraph.Graph) (*pgraph.Graph, error) {
	topoOrder, err := g.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	var order []pgraph.VertexIndex
	appendBand(&order, g, topoOrder, func(v pgraph.VertexIndex) bool {
		return g.InDegree(v) == 0 && g.OutDegree(v) > 0 && g.Vertex(v).Type == pgraph.Germline
	})
	appendBand(&order, g, topoOrder, func(v pgraph.VertexIndex) bool {
		return g.InDegree(v) > 0 && g.Vertex(v).Type == pgraph.Germline
	})
	appendBand(&order, g, topoOrder, func(v pgraph.VertexIndex) bool {
		return g.Degree(v) > 0 && g.Vertex(v).Type == pgraph.Somatic
	})
	appendBand(&order, g, topoOrder, func(v pgraph.VertexIndex) bool {
		return g.Degree(v) > 0 && g.Vertex(v).Type == pgraph.Sample
	})

	out := pgraph.New()
	mapInToOut := make(map[pgraph.VertexIndex]pgraph.VertexIndex, len(order))

	founderCount := 0
	for _, v := range order {
		if g.InDegree(v) == 0 && g.OutDegree(v) > 0 && g.Vertex(v).Type == pgraph.Germline {
			founderCount++
		}
	}

	for i, v := range order {
		orig := g.Vertex(v)
		typ := orig.Type
		var label string
		switch {
		case i < founderCount:
			typ = pgraph.Founder
			label = orig.Label + "/z"
		case typ == pgraph.Germline:
			label = orig.Label + "/z"
		case typ == pgraph.Somatic:
			label = orig.Label + "/t"
		default:
			label = orig.Label
		}
		w := out.AddVertex(label, orig.Sex, orig.Ploidy, typ)
		mapInToOut[v] = w
	}

	for _, v := range order {
		for _, ei := range g.OutEdges(v) {
			e := g.Edge(ei)
			if newTo, ok := mapInToOut[e.To]; ok {
				out.AddEdge(mapInToOut[v], newTo, e.Length, e.Type)
			}
		}
	}

	return out, nil
}

// appendBand appends the members of topoOrder satisfying pred to order, in
// topological order (ancestors first).
func appendBand(order *[]pgraph.VertexIndex, g *pgraph.Graph, topoOrder []pgraph.VertexIndex, pred func(pgraph.VertexIndex) bool) {
	for _, v := range topoOrder {
		if pred(v) {
			*order = append(*order, v)
		}
	}
}
