// File: simplify.go
// Role: stage 4 (spec §4.3) — three passes that remove uninformative
// structure. All three reuse a single topological-order pass, grounded on
// original_source's simplify() which does the same (boost::topological_sort
// once, consumed both forwards and reversed).
package relgraph

import "github.com/mutk-dev/mutk/pgraph"

// simplify runs passes A, B, C in order over g, mutating it in place.
func simplify(g *pgraph.Graph) error {
	topoOrder, err := g.TopologicalOrder()
	if err != nil {
		return err
	}

	cullUninformativeLeaves(g, topoOrder)
	detachSummableFounders(g, topoOrder)
	bypassDegreeOneChains(g, topoOrder)

	return nil
}

// cullUninformativeLeaves is Pass A: in reverse topological order, clear any
// vertex with out-degree 0 whose type != Sample.
func cullUninformativeLeaves(g *pgraph.Graph, topoOrder []pgraph.VertexIndex) {
	for i := len(topoOrder) - 1; i >= 0; i-- {
		v := topoOrder[i]
		if g.OutDegree(v) == 0 && g.Vertex(v).Type != pgraph.Sample {
			g.ClearVertex(v)
		}
	}
}

// detachSummableFounders is Pass B: in topological order, for every
// Germline vertex v with at least one in-edge, if every in-edge source has
// total degree 1 (contributes to nothing else), clear all in-edges of v —
// such a founder integrates out to a constant.
func detachSummableFounders(g *pgraph.Graph, topoOrder []pgraph.VertexIndex) {
	for _, v := range topoOrder {
		if g.Vertex(v).Type != pgraph.Germline {
			continue
		}
		inEdges := g.InEdges(v)
		if len(inEdges) == 0 {
			continue
		}
		allIsolatedParent := true
		for _, ei := range inEdges {
			p := g.Edge(ei).From
			if g.Degree(p) != 1 {
				allIsolatedParent = false

				break
			}
		}
		if allIsolatedParent {
			g.ClearInEdges(v)
		}
	}
}

// bypassDegreeOneChains is Pass C: in topological order, for every v with
// in-degree >= 1 and out-degree exactly 1, contract v into its child c when
// (in-degree(c)-1+in-degree(v)) <= 2 and ploidy(c)==ploidy(v): every in-edge
// (g,v) becomes (g,c) with summed length and unioned edge type, then v is
// cleared.
func bypassDegreeOneChains(g *pgraph.Graph, topoOrder []pgraph.VertexIndex) {
	for _, v := range topoOrder {
		if g.InDegree(v) == 0 || g.OutDegree(v) != 1 {
			continue
		}
		outEdge := g.Edge(g.OutEdges(v)[0])
		child := outEdge.To

		if g.InDegree(child)-1+g.InDegree(v) > 2 {
			continue
		}
		if g.Vertex(child).Ploidy != g.Vertex(v).Ploidy {
			continue
		}

		childLen := outEdge.Length
		childType := outEdge.Type
		// Snapshot in-edges before mutating; AddEdge below does not disturb
		// v's existing in-edge slice, but ClearVertex(v) at the end will.
		inEdges := append([]pgraph.EdgeIndex(nil), g.InEdges(v)...)
		for _, ei := range inEdges {
			e := g.Edge(ei)
			g.AddEdge(e.From, child, e.Length+childLen, e.Type|childType)
		}
		g.ClearVertex(v)
	}
}
