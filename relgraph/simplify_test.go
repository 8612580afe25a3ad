package relgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutk-dev/mutk/pedigree"
	"github.com/mutk-dev/mutk/pgraph"
)

func TestSimplify_CullsUninformativeLeafGermlineVertex(t *testing.T) {
	g := pgraph.New()
	a := g.AddVertex("A", pedigree.Male, 2, pgraph.Germline) // founder with no children -> culled
	require.NoError(t, simplify(g))
	assert.Equal(t, 0, g.Degree(a))
}

func TestSimplify_KeepsSampleLeaf(t *testing.T) {
	g := pgraph.New()
	a := g.AddVertex("A", pedigree.Male, 2, pgraph.Germline)
	s := g.AddVertex("S", pedigree.Autosomal, 2, pgraph.Sample)
	g.AddEdge(a, s, 1.0, pgraph.SomaEdge)

	require.NoError(t, simplify(g))
	assert.Equal(t, pgraph.Sample, g.Vertex(s).Type)
	assert.Equal(t, 1, g.InDegree(s))
}

func TestSimplify_DetachesSummableFounders(t *testing.T) {
	g := pgraph.New()
	// A and B each have degree 1: their only edge goes to their child C.
	a := g.AddVertex("A", pedigree.Male, 2, pgraph.Germline)
	b := g.AddVertex("B", pedigree.Female, 2, pgraph.Germline)
	c := g.AddVertex("C", pedigree.Unknown, 2, pgraph.Germline)
	d := g.AddVertex("D", pedigree.Unknown, 2, pgraph.Sample)
	g.AddEdge(a, c, 1.0, pgraph.GermEdge)
	g.AddEdge(b, c, 1.0, pgraph.GermEdge)
	g.AddEdge(c, d, 1.0, pgraph.SomaEdge)

	require.NoError(t, simplify(g))

	assert.Equal(t, 0, g.InDegree(c))
}

func TestSimplify_BypassesDegreeOneChain(t *testing.T) {
	g := pgraph.New()
	a := g.AddVertex("A", pedigree.Male, 2, pgraph.Germline)
	b := g.AddVertex("B", pedigree.Unknown, 2, pgraph.Germline) // clone chain link
	c := g.AddVertex("C", pedigree.Unknown, 2, pgraph.Sample)
	x := g.AddVertex("X", pedigree.Unknown, 2, pgraph.Sample)
	g.AddEdge(a, b, 1.0, pgraph.GermEdge)
	g.AddEdge(b, c, 2.0, pgraph.GermEdge)
	// A second child of A keeps A's degree above 1, so Pass B (summable
	// founder detachment) does not eat the a->b edge before Pass C runs.
	g.AddEdge(a, x, 1.0, pgraph.SomaEdge)

	require.NoError(t, simplify(g))

	assert.Equal(t, 0, g.Degree(b))
	require.Equal(t, 1, g.InDegree(c))
	e := g.Edge(g.InEdges(c)[0])
	assert.Equal(t, a, e.From)
	assert.Equal(t, 3.0, e.Length)
}
