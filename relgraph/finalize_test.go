package relgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutk-dev/mutk/pedigree"
	"github.com/mutk-dev/mutk/pgraph"
)

func TestFinalize_BandsAndSuffixesLabels(t *testing.T) {
	g := pgraph.New()
	a := g.AddVertex("A", pedigree.Male, 2, pgraph.Germline)   // founder
	b := g.AddVertex("B", pedigree.Female, 2, pgraph.Germline) // founder
	c := g.AddVertex("C", pedigree.Unknown, 2, pgraph.Germline)
	s := g.AddVertex("tumor", pedigree.Autosomal, 2, pgraph.Somatic)
	x := g.AddVertex("sample1", pedigree.Autosomal, 2, pgraph.Sample)
	iso := g.AddVertex("ghost", pedigree.Unknown, 0, pgraph.Germline) // isolated, dropped
	_ = iso
	g.AddEdge(a, c, 1.0, pgraph.GermEdge)
	g.AddEdge(b, c, 1.0, pgraph.GermEdge)
	g.AddEdge(c, s, 1.0, pgraph.SomaEdge)
	g.AddEdge(s, x, 1.0, pgraph.LibEdge)

	out, err := finalize(g)
	require.NoError(t, err)

	// isolated vertex dropped
	assert.Equal(t, 5, out.NumVertices())

	var founders, germlines, somatics, samples []string
	for _, v := range out.Vertices() {
		vert := out.Vertex(v)
		switch vert.Type {
		case pgraph.Founder:
			founders = append(founders, vert.Label)
		case pgraph.Germline:
			germlines = append(germlines, vert.Label)
		case pgraph.Somatic:
			somatics = append(somatics, vert.Label)
		case pgraph.Sample:
			samples = append(samples, vert.Label)
		}
	}

	assert.Len(t, founders, 2)
	assert.Len(t, germlines, 1)
	assert.Len(t, somatics, 1)
	assert.Len(t, samples, 1)

	for _, l := range founders {
		assert.True(t, strings.HasSuffix(l, "/z"))
	}
	for _, l := range germlines {
		assert.True(t, strings.HasSuffix(l, "/z"))
	}
	for _, l := range somatics {
		assert.True(t, strings.HasSuffix(l, "/t"))
	}
	for _, l := range samples {
		assert.False(t, strings.HasSuffix(l, "/t"))
		assert.False(t, strings.HasSuffix(l, "/z"))
	}
}

func TestFinalize_SampleHasInDegree1OutDegree0(t *testing.T) {
	g := pgraph.New()
	a := g.AddVertex("A", pedigree.Male, 2, pgraph.Germline)
	x := g.AddVertex("sample1", pedigree.Autosomal, 2, pgraph.Sample)
	g.AddEdge(a, x, 1.0, pgraph.LibEdge)
	// give a an out-degree so it qualifies as a founder band member
	_ = a

	out, err := finalize(g)
	require.NoError(t, err)

	for _, v := range out.Vertices() {
		if out.Vertex(v).Type == pgraph.Sample {
			assert.Equal(t, 1, out.InDegree(v))
			assert.Equal(t, 0, out.OutDegree(v))
		}
	}
}
