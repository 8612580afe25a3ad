package pedigree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutk-dev/mutk/pedigree"
)

func TestInMemory_NumberOfMembersAndGetMember(t *testing.T) {
	ped := pedigree.NewInMemory([]pedigree.Member{
		{Name: "A", Sex: pedigree.Male},
		{Name: "B", Sex: pedigree.Female, Dad: pedigree.Str("A")},
	})

	require.Equal(t, 2, ped.NumberOfMembers())
	assert.Equal(t, "A", ped.GetMember(0).Name)
	assert.Equal(t, "B", ped.GetMember(1).Name)
	assert.Equal(t, "A", *ped.GetMember(1).Dad)
}

func TestInMemory_LookupMemberPosition(t *testing.T) {
	ped := pedigree.NewInMemory([]pedigree.Member{
		{Name: "A"},
		{Name: "B"},
	})

	assert.Equal(t, 0, ped.LookupMemberPosition("A"))
	assert.Equal(t, 1, ped.LookupMemberPosition("B"))

	// unknown names resolve to a position >= NumberOfMembers()
	assert.GreaterOrEqual(t, ped.LookupMemberPosition("ghost"), ped.NumberOfMembers())
}

func TestFloat64AndStrHelpers(t *testing.T) {
	f := pedigree.Float64(1.5)
	require.NotNil(t, f)
	assert.Equal(t, 1.5, *f)

	s := pedigree.Str("A")
	require.NotNil(t, s)
	assert.Equal(t, "A", *s)
}

func TestMember_HasTag(t *testing.T) {
	m := pedigree.Member{Tags: []string{"Founder", "clone"}}

	assert.True(t, m.HasTag("founder"))
	assert.True(t, m.HasTag("FOUNDER"))
	assert.True(t, m.HasTag("clone"))
	assert.False(t, m.HasTag("haploid"))
}
