package newick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutk-dev/mutk/newick"
	"github.com/mutk-dev/mutk/pedigree"
	"github.com/mutk-dev/mutk/pgraph"
)

func TestParse_SimpleLeaf(t *testing.T) {
	g := pgraph.New()
	anchor := g.AddVertex("A", pedigree.Male, 2, pgraph.Germline)

	ok := newick.Parse("leaf:0.5;", g, anchor, false)
	require.True(t, ok)
	require.Len(t, g.Edges(), 1)

	e := g.Edges()[0].Edge
	assert.Equal(t, 0.5, e.Length)
	assert.True(t, e.Type.Has(pgraph.SomaEdge))
	assert.Equal(t, "leaf", g.Vertex(e.To).Label)
}

func TestParse_NestedTree(t *testing.T) {
	g := pgraph.New()
	anchor := g.AddVertex("A", pedigree.Male, 2, pgraph.Germline)

	ok := newick.Parse("((x:1,y:2):0.5,z:3);", g, anchor, false)
	require.True(t, ok)

	labels := map[string]bool{}
	for _, v := range g.Vertices() {
		labels[g.Vertex(v).Label] = true
	}
	assert.True(t, labels["x"])
	assert.True(t, labels["y"])
	assert.True(t, labels["z"])
}

func TestParse_RejectsMissingSemicolon(t *testing.T) {
	g := pgraph.New()
	anchor := g.AddVertex("A", pedigree.Male, 2, pgraph.Germline)

	ok := newick.Parse("(x:1,y:2)", g, anchor, false)
	assert.False(t, ok)
}

func TestParse_Normalize(t *testing.T) {
	g := pgraph.New()
	anchor := g.AddVertex("A", pedigree.Male, 2, pgraph.Germline)

	ok := newick.Parse("(x:1,y:3):1;", g, anchor, true)
	require.True(t, ok)

	// the longest anchor-to-leaf path (anchor->root 1, root->y 3) is rescaled
	// to 1; edges come back in insertion order, parents before children
	depth := map[pgraph.VertexIndex]float64{}
	var maxDepth float64
	for _, rec := range g.Edges() {
		d := depth[rec.Edge.From] + rec.Edge.Length
		depth[rec.Edge.To] = d
		if d > maxDepth {
			maxDepth = d
		}
	}
	assert.InDelta(t, 1.0, maxDepth, 1e-9)
}

func TestParse_DeterministicAnonymousLabels(t *testing.T) {
	g1 := pgraph.New()
	a1 := g1.AddVertex("A", pedigree.Male, 2, pgraph.Germline)
	require.True(t, newick.Parse("(:1,:2):1;", g1, a1, false))

	g2 := pgraph.New()
	a2 := g2.AddVertex("A", pedigree.Male, 2, pgraph.Germline)
	require.True(t, newick.Parse("(:1,:2):1;", g2, a2, false))

	var labels1, labels2 []string
	for _, v := range g1.Vertices() {
		labels1 = append(labels1, g1.Vertex(v).Label)
	}
	for _, v := range g2.Vertices() {
		labels2 = append(labels2, g2.Vertex(v).Label)
	}
	assert.Equal(t, labels1, labels2)
}
