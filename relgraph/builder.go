// File: builder.go
// Role: stage 1+2 of the pipeline (spec §4.1) — materializes the typed
// directed graph from a Pedigree plus its per-member Newick sample trees.
//
// Grounded on original_source/src/lib/relationship_graph.cpp's
// construct_pedigree_graph / add_edges_to_pedigree_graph, generalized from
// boost::graph property maps to pgraph.Graph's typed vertex/edge records.
package relgraph

import (
	"fmt"

	"github.com/mutk-dev/mutk/newick"
	"github.com/mutk-dev/mutk/pedigree"
	"github.com/mutk-dev/mutk/pgraph"
)

// ploidyFromTags resolves a member's ploidy from its tags, by the priority
// table in spec §4.1: haploid/gamete/p=1/ploidy=1 -> 1; diploid/p=2/ploidy=2
// -> 2; clone (and no explicit ploidy) -> 0 (placeholder); otherwise -> 2.
func ploidyFromTags(m *pedigree.Member) int {
	for _, tag := range m.Tags {
		if hasFold(tag, "haploid") || hasFold(tag, "gamete") || hasFold(tag, "p=1") || hasFold(tag, "ploidy=1") {
			return 1
		}
	}
	for _, tag := range m.Tags {
		if hasFold(tag, "diploid") || hasFold(tag, "p=2") || hasFold(tag, "ploidy=2") {
			return 2
		}
	}
	for _, tag := range m.Tags {
		if hasFold(tag, "clone") {
			return 0
		}
	}

	return 2
}

func hasFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}

	return true
}

// buildGraph constructs the raw (unsimplified, unpruned, unscaled) typed
// graph for ped, anchoring Newick sample trees and promoting known-sample
// Somatic vertices to Sample.
func buildGraph(ped pedigree.Pedigree, knownSamples map[string]struct{}, normalize bool) (*pgraph.Graph, error) {
	g := pgraph.New()

	n := ped.NumberOfMembers()
	for j := 0; j < n; j++ {
		m := ped.GetMember(j)
		v := g.AddVertex(m.Name, m.Sex, ploidyFromTags(&m), pgraph.Germline)
		if int(v) != j {
			return nil, fmt.Errorf("relgraph: internal invariant broken: vertex index %d != member position %d", v, j)
		}
	}

	if err := addPedigreeEdges(ped, g); err != nil {
		return nil, err
	}

	for j := 0; j < n; j++ {
		m := ped.GetMember(j)
		for _, sample := range m.Samples {
			if ok := newick.Parse(sample, g, pgraph.VertexIndex(j), normalize); !ok {
				return nil, fmt.Errorf("%w: member %q: could not parse sample tree %q", ErrSomaticParseError, m.Name, sample)
			}
		}
	}

	promoteKnownSamples(g, knownSamples)

	return g, nil
}

// promoteKnownSamples relabels as Sample every Somatic vertex whose label
// appears in knownSamples.
func promoteKnownSamples(g *pgraph.Graph, knownSamples map[string]struct{}) {
	for _, v := range g.Vertices() {
		vert := g.Vertex(v)
		if vert.Type != pgraph.Somatic {
			continue
		}
		if _, ok := knownSamples[vert.Label]; ok {
			vert.Type = pgraph.Sample
		}
	}
}

// addPedigreeEdges applies the child-ploidy-keyed edge-addition rules of
// spec §4.1's table, grounded on add_edges_to_pedigree_graph.
func addPedigreeEdges(ped pedigree.Pedigree, g *pgraph.Graph) error {
	n := ped.NumberOfMembers()
	for j := 0; j < n; j++ {
		m := ped.GetMember(j)
		if m.HasTag("founder") || (m.Dad == nil && m.Mom == nil) {
			continue
		}
		child := pgraph.VertexIndex(j)
		ploidy := g.Vertex(child).Ploidy

		switch ploidy {
		case 0: // clone
			if m.Dad != nil && m.Mom != nil {
				return fmt.Errorf("%w: clone %q has two parents instead of one", ErrPedigreeInvalid, m.Name)
			}
			parent, length, err := resolveSingleParent(ped, g, &m, false)
			if err != nil {
				return err
			}
			g.AddEdge(parent, child, length, pgraph.GermEdge)
			pv := g.Vertex(parent)
			cv := g.Vertex(child)
			cv.Ploidy = pv.Ploidy
			cv.Sex = pv.Sex

		case 1: // haploid/gamete
			if m.Dad != nil && m.Mom != nil {
				return fmt.Errorf("%w: gamete %q has two parents instead of one", ErrPedigreeInvalid, m.Name)
			}
			parent, length, err := resolveSingleParent(ped, g, &m, true)
			if err != nil {
				return err
			}
			g.AddEdge(parent, child, length, pgraph.GermEdge)

		default: // diploid
			if m.Dad == nil {
				return fmt.Errorf("%w: the father of %q is unspecified", ErrPedigreeInvalid, m.Name)
			}
			if m.Mom == nil {
				return fmt.Errorf("%w: the mother of %q is unspecified", ErrPedigreeInvalid, m.Name)
			}
			dad, err := resolveParentPosition(ped, m.Name, *m.Dad)
			if err != nil {
				return err
			}
			mom, err := resolveParentPosition(ped, m.Name, *m.Mom)
			if err != nil {
				return err
			}
			if g.Vertex(pgraph.VertexIndex(dad)).Sex == pedigree.Female {
				return fmt.Errorf("%w: the father of %q is female", ErrPedigreeInvalid, m.Name)
			}
			if g.Vertex(pgraph.VertexIndex(mom)).Sex == pedigree.Male {
				return fmt.Errorf("%w: the mother of %q is male", ErrPedigreeInvalid, m.Name)
			}
			dadLen := 1.0
			if m.DadLength != nil {
				dadLen = *m.DadLength
			}
			momLen := 1.0
			if m.MomLength != nil {
				momLen = *m.MomLength
			}
			g.AddEdge(pgraph.VertexIndex(dad), child, dadLen, pgraph.GermEdge)
			g.AddEdge(pgraph.VertexIndex(mom), child, momLen, pgraph.GermEdge)
		}
	}

	return nil
}

// resolveSingleParent resolves the one parent of a clone or haploid member,
// applying the sex-role check for haploid members (checkSexRole==true: dad
// must not be Female, mom must not be Male).
func resolveSingleParent(ped pedigree.Pedigree, g *pgraph.Graph, m *pedigree.Member, checkSexRole bool) (pgraph.VertexIndex, float64, error) {
	var name string
	var length float64
	var isDad bool
	if m.Dad != nil {
		name = *m.Dad
		isDad = true
		length = 1.0
		if m.DadLength != nil {
			length = *m.DadLength
		}
	} else {
		name = *m.Mom
		length = 1.0
		if m.MomLength != nil {
			length = *m.MomLength
		}
	}

	pos, err := resolveParentPosition(ped, m.Name, name)
	if err != nil {
		return 0, 0, err
	}
	parent := pgraph.VertexIndex(pos)

	if checkSexRole {
		sex := g.Vertex(parent).Sex
		if isDad && sex == pedigree.Female {
			return 0, 0, fmt.Errorf("%w: the father of %q is female", ErrPedigreeInvalid, m.Name)
		}
		if !isDad && sex == pedigree.Male {
			return 0, 0, fmt.Errorf("%w: the mother of %q is male", ErrPedigreeInvalid, m.Name)
		}
	}

	return parent, length, nil
}

// resolveParentPosition looks up name's position in ped, returning
// ErrPedigreeInvalid wrapped with the referencing member's name if name is
// unresolvable.
func resolveParentPosition(ped pedigree.Pedigree, memberName, name string) (int, error) {
	pos := ped.LookupMemberPosition(name)
	if pos >= ped.NumberOfMembers() {
		return 0, fmt.Errorf("%w: the parent %q of %q is unknown", ErrPedigreeInvalid, name, memberName)
	}

	return pos, nil
}
