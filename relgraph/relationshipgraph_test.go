package relgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutk-dev/mutk/model"
	"github.com/mutk-dev/mutk/pedigree"
	"github.com/mutk-dev/mutk/pgraph"
)

// trioWithSamplePedigree gives the trio's child a somatic sample, so the
// child keeps positive out-degree through simplify's Pass A (a sample-less
// trio's child has out-degree 0 and gets culled, cascading to the founders —
// see DESIGN.md's "S1/S2 worked-example vs. Pass-A cascade" note).
func trioWithSamplePedigree() (*pedigree.InMemory, map[string]struct{}) {
	ped := pedigree.NewInMemory([]pedigree.Member{
		{Name: "A", Sex: pedigree.Male},
		{Name: "B", Sex: pedigree.Female},
		{Name: "C", Sex: pedigree.Unknown, Dad: pedigree.Str("A"), Mom: pedigree.Str("B"), Samples: []string{"tumor:1;"}},
	})

	return ped, map[string]struct{}{"tumor": {}}
}

func TestConstruct_TrioAutosomal(t *testing.T) {
	ped, samples := trioWithSamplePedigree()
	rg, err := Construct(ped, samples, model.Autosomal)
	require.NoError(t, err)

	_, err = rg.Graph.TopologicalOrder()
	require.NoError(t, err)
	assert.Len(t, nonSeparatorCliques(rg.Junction), 1)
}

func TestConstruct_YLinkedDaughterIsInvalidSex(t *testing.T) {
	ped, samples := trioWithSamplePedigree()

	_, err := Construct(ped, samples, model.YLinked)
	assert.ErrorIs(t, err, ErrInvalidSex)
}

func TestConstruct_CloneChain(t *testing.T) {
	ped := pedigree.NewInMemory([]pedigree.Member{
		{Name: "A", Sex: pedigree.Male, Tags: []string{"founder"}},
		{Name: "B", Dad: pedigree.Str("A"), Tags: []string{"clone"}},
		{Name: "C", Dad: pedigree.Str("B"), Tags: []string{"clone"}, Samples: []string{"tumor:1;"}},
	})

	rg, err := Construct(ped, map[string]struct{}{"tumor": {}}, model.Autosomal)
	require.NoError(t, err)

	_, err = rg.Graph.TopologicalOrder()
	require.NoError(t, err)

	found := false
	for _, v := range rg.Graph.Vertices() {
		if rg.Graph.Vertex(v).Label == "tumor" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestConstruct_IsDeterministicAcrossRepeatedCalls(t *testing.T) {
	ped, samples := trioWithSamplePedigree()

	first, err := Construct(ped, samples, model.Autosomal)
	require.NoError(t, err)
	second, err := Construct(ped, samples, model.Autosomal)
	require.NoError(t, err)

	assert.Equal(t, first.Plan.Order, second.Plan.Order)
	assert.Equal(t, first.Junction.Edges, second.Junction.Edges)
}

// TestConstruct_GermEdgeLengthsAreScaledByMuGerm needs every germline edge to
// survive simplify intact: each germline child needs at least one parent
// with degree > 1 (so Pass B's summable-founder detachment never fires; B
// keeps degree 1, A carries the requirement) and each germline child's sole
// somatic descendant must have a different ploidy than the child (so Pass
// C's chain-bypass never contracts the child away). A gives both C and a
// second clone D their own sample, keeping A's degree at 2.
func TestConstruct_GermEdgeLengthsAreScaledByMuGerm(t *testing.T) {
	ped := pedigree.NewInMemory([]pedigree.Member{
		{Name: "A", Sex: pedigree.Male},
		{Name: "B", Sex: pedigree.Female},
		{Name: "C", Sex: pedigree.Unknown, Dad: pedigree.Str("A"), Mom: pedigree.Str("B"), Samples: []string{"tumor:1;"}},
		{Name: "D", Dad: pedigree.Str("A"), Tags: []string{"clone"}, Samples: []string{"normal:1;"}},
	})
	samples := map[string]struct{}{"tumor": {}, "normal": {}}

	rg, err := Construct(ped, samples, model.Autosomal, WithMuGerm(2.0), WithMuSoma(1.0))
	require.NoError(t, err)

	var sawGermEdge bool
	for _, rec := range rg.Graph.Edges() {
		if rec.Edge.Type.Has(pgraph.GermEdge) {
			sawGermEdge = true
			assert.Equal(t, 2.0, rec.Edge.Length)
		}
	}
	assert.True(t, sawGermEdge)
}
