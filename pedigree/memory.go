package pedigree

// InMemory is a slice-backed Pedigree, the concrete schema implementation
// used by this module's own tests and examples. A real text-format parser
// (Newick-adjacent pedigree files, CSV, etc.) is an external front-end
// concern and is not part of this package; InMemory exists only to give the
// compiler a real collaborator to call.
type InMemory struct {
	members []Member
	byName  map[string]int
}

// NewInMemory builds an InMemory pedigree from members, indexing positions
// by name for LookupMemberPosition. Later members with a duplicate name
// shadow earlier ones in the index (first-writer generally shouldn't
// duplicate names in a real pedigree; this is a permissive convenience
// constructor, not a validator).
func NewInMemory(members []Member) *InMemory {
	byName := make(map[string]int, len(members))
	for i, m := range members {
		byName[m.Name] = i
	}

	return &InMemory{members: members, byName: byName}
}

// NumberOfMembers implements Pedigree.
func (p *InMemory) NumberOfMembers() int { return len(p.members) }

// GetMember implements Pedigree.
func (p *InMemory) GetMember(i int) Member { return p.members[i] }

// LookupMemberPosition implements Pedigree. Unknown names resolve to
// len(p.members), satisfying the ">= NumberOfMembers()" unknown-position
// contract.
func (p *InMemory) LookupMemberPosition(name string) int {
	if pos, ok := p.byName[name]; ok {
		return pos
	}

	return len(p.members)
}

// Float64 is a small helper for building *float64 branch lengths inline in
// literal test pedigrees, e.g. Member{DadLength: pedigree.Float64(0.5)}.
func Float64(v float64) *float64 { return &v }

// Str is the string analogue of Float64, for Dad/Mom optional name fields.
func Str(v string) *string { return &v }
