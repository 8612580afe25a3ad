// File: prune.go
// Role: stage 5 (spec §4.4) — applies inheritance-model-specific edge
// deletion and ploidy adjustment. Grounded on original_source's
// prune_autosomal/prune_xlinked/prune_ylinked/prune_wlinked/prune_zlinked/
// prune_maternal/prune_paternal family of functions.
package relgraph

import (
	"fmt"

	"github.com/mutk-dev/mutk/model"
	"github.com/mutk-dev/mutk/pedigree"
	"github.com/mutk-dev/mutk/pgraph"
)

// prune dispatches on mdl and mutates g in place per spec §4.4's table.
func prune(g *pgraph.Graph, mdl model.InheritanceModel) error {
	switch mdl {
	case model.Autosomal:
		return nil
	case model.XLinked:
		return pruneSexLinked(g, pedigree.Male, 1)
	case model.YLinked:
		return pruneHaploidLine(g, pedigree.Male, pedigree.Female)
	case model.WLinked:
		return pruneHaploidLine(g, pedigree.Female, pedigree.Male)
	case model.ZLinked:
		return pruneSexLinked(g, pedigree.Female, 1)
	case model.Maternal:
		return pruneUniparental(g, pedigree.Male)
	case model.Paternal:
		return pruneUniparental(g, pedigree.Female)
	default:
		return fmt.Errorf("%w: %v", ErrModelUnsupported, mdl)
	}
}

// requireResolvedSex returns ErrInvalidSex if any vertex with out-degree > 0
// has unresolved (Unknown) sex — needed for every sex-linked model, since
// the deletion rule below reads each vertex's transmitted-sex role.
func requireResolvedSex(g *pgraph.Graph) error {
	for _, v := range g.Vertices() {
		if g.OutDegree(v) == 0 {
			continue
		}
		if g.Vertex(v).Sex == pedigree.Unknown {
			return fmt.Errorf("%w: vertex %q has unresolved sex but out-degree > 0", ErrInvalidSex, g.Vertex(v).Label)
		}
	}

	return nil
}

// pruneSexLinked implements X-linked and Z-linked pruning. hemizygousSex is
// the sex that carries a single copy (Male for X-linked, Female for
// Z-linked): a parent of that sex transmits the chromosome only to children
// of the other sex, never to children sharing it, so every hemizygousSex ->
// hemizygousSex GermEdge is deleted. Every hemizygousSex vertex's ploidy
// drops to halvedPloidy.
func pruneSexLinked(g *pgraph.Graph, hemizygousSex pedigree.Sex, halvedPloidy int) error {
	if err := requireResolvedSex(g); err != nil {
		return err
	}

	for _, rec := range g.Edges() {
		e := rec.Edge
		if !e.Type.Has(pgraph.GermEdge) {
			continue
		}
		from := g.Vertex(e.From)
		to := g.Vertex(e.To)
		if from.Sex == hemizygousSex && to.Sex == hemizygousSex {
			g.RemoveEdge(rec.Index)
		}
	}

	for _, v := range g.Vertices() {
		vert := g.Vertex(v)
		if vert.Sex == hemizygousSex && vert.Ploidy == 2 {
			vert.Ploidy = halvedPloidy
		}
	}

	return nil
}

// pruneHaploidLine implements Y-linked and W-linked pruning: only the
// single-sex transmission chain survives. carrySex is the sex that carries
// the chromosome (Male for Y-linked, Female for W-linked); suppressedSex is
// the other sex, which never carries it. Any GermEdge touching a
// suppressedSex endpoint is deleted (not just edges between two suppressedSex
// vertices — a carrySex -> suppressedSex transmission is still not a
// same-chromosome transmission). Every suppressedSex vertex is then cleared
// of all remaining edges (germline and otherwise) and dropped to ploidy 0;
// every carrySex vertex drops to ploidy 1. Unknown-sex vertices with
// out-degree 0 are left untouched.
func pruneHaploidLine(g *pgraph.Graph, carrySex, suppressedSex pedigree.Sex) error {
	if err := requireResolvedSex(g); err != nil {
		return err
	}

	for _, rec := range g.Edges() {
		e := rec.Edge
		if !e.Type.Has(pgraph.GermEdge) {
			continue
		}
		from := g.Vertex(e.From)
		to := g.Vertex(e.To)
		if from.Sex == suppressedSex || to.Sex == suppressedSex {
			g.RemoveEdge(rec.Index)
		}
	}

	for _, v := range g.Vertices() {
		vert := g.Vertex(v)
		switch vert.Sex {
		case suppressedSex:
			g.ClearVertex(v)
			vert.Ploidy = 0
		case carrySex:
			vert.Ploidy = 1
		}
	}

	return nil
}

// pruneUniparental implements Maternal and Paternal pruning: delete every
// GermEdge whose source has sex blockedSex, leaving only edges transmitted
// by the other parent, and set every vertex's ploidy to 1.
//
// original_source's prune_maternal and prune_paternal both delete edges
// whose source sex is Male, which is correct for Maternal (keep mother->
// child) but backwards for Paternal (spec §7 open question; the original's
// prune_paternal appears to share prune_maternal's predicate verbatim). We
// implement the semantically correct rule: Maternal blocks Male sources,
// Paternal blocks Female sources, per spec §7's resolution.
func pruneUniparental(g *pgraph.Graph, blockedSex pedigree.Sex) error {
	for _, rec := range g.Edges() {
		e := rec.Edge
		if !e.Type.Has(pgraph.GermEdge) {
			continue
		}
		if g.Vertex(e.From).Sex == blockedSex {
			g.RemoveEdge(rec.Index)
		}
	}

	for _, v := range g.Vertices() {
		g.Vertex(v).Ploidy = 1
	}

	return nil
}
