// File: scale.go
// Role: stage 3 (spec §4.2) — multiplies every edge's length by the
// appropriate mutation-rate constant. A linear, deterministic pass; no
// branching on anything but the edge's GermEdge bit.
package relgraph

import "github.com/mutk-dev/mutk/pgraph"

// scaleEdgeLengths multiplies every GermEdge length by muGerm and every
// other edge's length by muSoma, in place.
func scaleEdgeLengths(g *pgraph.Graph, muGerm, muSoma float64) {
	for _, rec := range g.Edges() {
		e := g.Edge(rec.Index)
		if e.Type.Has(pgraph.GermEdge) {
			e.Length *= muGerm
		} else {
			e.Length *= muSoma
		}
	}
}
