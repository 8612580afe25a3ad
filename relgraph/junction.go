// File: junction.go
// Role: stage 7, second half (spec §4.7) — builds the junction tree from the
// elimination order's cliques by the reverse-elimination insertion algorithm.
package relgraph

import "github.com/mutk-dev/mutk/pgraph"

// JunctionNode is one node of a JunctionTree: either a full elimination
// clique (IsSeparator==false) or an intersection/separator node carrying the
// variables shared between two adjacent cliques (IsSeparator==true).
type JunctionNode struct {
	Clique      []pgraph.VertexIndex
	IsSeparator bool
}

// JunctionTree is the compiler's final artifact: a tree of cliques and
// separators satisfying the running-intersection property (spec §8.8).
type JunctionTree struct {
	Nodes []JunctionNode
	Edges [][2]int // pairs of node indices; the tree is undirected
}

// buildJunctionTree consumes an EliminationPlan's order and per-vertex
// elimination-time neighbor sets and assembles the tree per spec §4.7.
func buildJunctionTree(plan *EliminationPlan) *JunctionTree {
	jt := &JunctionTree{}

	for i := len(plan.Order) - 1; i >= 0; i-- {
		v := plan.Order[i]
		s := plan.neighborsAtElimination[v]

		newClique := append(append([]pgraph.VertexIndex(nil), s...), v)
		sortVertices(newClique)
		newIdx := len(jt.Nodes)
		match := jt.findExactMatch(s)

		switch {
		case len(jt.Nodes) == 0:
			jt.Nodes = append(jt.Nodes, JunctionNode{Clique: newClique})

			continue
		case match >= 0:
			jt.Nodes[match].IsSeparator = true
			jt.Nodes = append(jt.Nodes, JunctionNode{Clique: newClique})
			jt.Edges = append(jt.Edges, [2]int{match, newIdx})
		default:
			super := jt.findSmallestSuperset(s)
			if super < 0 {
				jt.Nodes = append(jt.Nodes, JunctionNode{Clique: newClique})

				continue
			}
			sepIdx := len(jt.Nodes)
			jt.Nodes = append(jt.Nodes, JunctionNode{Clique: append([]pgraph.VertexIndex(nil), s...), IsSeparator: true})
			jt.Nodes = append(jt.Nodes, JunctionNode{Clique: newClique})
			jt.Edges = append(jt.Edges, [2]int{super, sepIdx})
			jt.Edges = append(jt.Edges, [2]int{sepIdx, sepIdx + 1})
		}
	}

	return jt
}

// findExactMatch returns the index of the first existing node whose clique
// equals s exactly, or -1.
func (jt *JunctionTree) findExactMatch(s []pgraph.VertexIndex) int {
	for i, n := range jt.Nodes {
		if setEqual(n.Clique, s) {
			return i
		}
	}

	return -1
}

// findSmallestSuperset returns the index of the existing node with the
// fewest members whose clique is a superset of s, breaking ties by smaller
// index, or -1 if none exists.
func (jt *JunctionTree) findSmallestSuperset(s []pgraph.VertexIndex) int {
	best := -1
	for i, n := range jt.Nodes {
		if !setSuperset(n.Clique, s) {
			continue
		}
		if best < 0 || len(n.Clique) < len(jt.Nodes[best].Clique) {
			best = i
		}
	}

	return best
}

func setEqual(a, b []pgraph.VertexIndex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// setSuperset reports whether every element of sub appears in super. Both
// slices are assumed sorted ascending.
func setSuperset(super, sub []pgraph.VertexIndex) bool {
	i := 0
	for _, want := range sub {
		for i < len(super) && super[i] < want {
			i++
		}
		if i >= len(super) || super[i] != want {
			return false
		}
	}

	return true
}
