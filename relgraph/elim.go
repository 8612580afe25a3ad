// File: elim.go
// Role: stage 7 (spec §4.6) — derives per-vertex potentials from the
// finalized graph, moralizes them into an undirected neighbor-set index,
// and computes a deterministic min-fill elimination order.
//
// Grounded on original_source's peeling_order(): a priority queue keyed on
// (fill_in, vertex) with true decrease-key semantics (boost::heap::d_ary_heap
// with mutable_<true> handles). The teacher's dijkstra package uses
// container/heap with a *lazy* decrease-key (push duplicates, skip stale
// pops on read) — that shape is wrong here, because a stale fill-in count
// read out of the heap would corrupt clique construction downstream (the
// junction-tree builder needs the *current* neighbor set at the moment each
// vertex is popped, not whatever it was when it was last pushed). So this
// file adapts the teacher's heap shape (Len/Less/Swap/Push/Pop over
// container/heap) into an indexed variant that tracks each vertex's current
// slot and supports heap.Fix for a true update, the Go-idiomatic analogue of
// boost::heap's mutable handle.
package relgraph

import (
	"container/heap"
	"sort"

	"github.com/mutk-dev/mutk/pgraph"
)

// Potential is a local factor over a vertex and its conditioning set: each
// founder (in-degree 0) is a unary factor on {V}; every other vertex,
// leaves included, is a factor on {V} ∪ Depends.
type Potential struct {
	Vertex  pgraph.VertexIndex
	Depends []pgraph.VertexIndex
}

// EliminationPlan is the output of the elimination planner: the per-vertex
// conditioning sets, the resulting potentials, and a deterministic min-fill
// elimination order.
type EliminationPlan struct {
	Depends   [][]pgraph.VertexIndex
	Potential []Potential
	Order     []pgraph.VertexIndex

	// neighborsAtElimination[v] is the moralized neighbor set of v at the
	// instant v was eliminated — i.e. the clique v belongs to. The
	// junction-tree builder consumes this directly as the separator/clique
	// source, so it is kept rather than recomputed.
	neighborsAtElimination [][]pgraph.VertexIndex
}

// planElimination computes depends[], potentials, moralizes them into an
// undirected neighbor index, and runs min-fill elimination (spec §4.6).
func planElimination(g *pgraph.Graph) *EliminationPlan {
	n := g.NumVertices()
	depends := make([][]pgraph.VertexIndex, n)
	for v := 0; v < n; v++ {
		for _, ei := range g.InEdges(pgraph.VertexIndex(v)) {
			depends[v] = append(depends[v], g.Edge(ei).From)
		}
		sortVertices(depends[v])
	}

	potentials := make([]Potential, 0, n)
	for v := 0; v < n; v++ {
		vi := pgraph.VertexIndex(v)
		if g.OutDegree(vi) == 0 || g.InDegree(vi) == 0 {
			// founders get a unary factor below, and an isolated vertex
			// counts as a founder; a leaf with parents keeps its
			// conditioning set like any other non-founder.
		}
		if g.InDegree(vi) == 0 {
			potentials = append(potentials, Potential{Vertex: vi})

			continue
		}
		if g.OutDegree(vi) == 0 {
			potentials = append(potentials, Potential{Vertex: vi, Depends: depends[v]})

			continue
		}
		potentials = append(potentials, Potential{Vertex: vi, Depends: depends[v]})
	}

	neighbors := make([]map[pgraph.VertexIndex]struct{}, n)
	for i := range neighbors {
		neighbors[i] = make(map[pgraph.VertexIndex]struct{})
	}
	for _, p := range potentials {
		members := append([]pgraph.VertexIndex{p.Vertex}, p.Depends...)
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				neighbors[members[i]][members[j]] = struct{}{}
				neighbors[members[j]][members[i]] = struct{}{}
			}
		}
	}

	order, elimNeighbors := minFillOrder(n, neighbors)

	return &EliminationPlan{
		Depends:                depends,
		Potential:              potentials,
		Order:                  order,
		neighborsAtElimination: elimNeighbors,
	}
}

func sortVertices(s []pgraph.VertexIndex) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

func fillIn(neighbors map[pgraph.VertexIndex]struct{}, all []map[pgraph.VertexIndex]struct{}) int {
	keys := sortedKeys(neighbors)
	fill := 0
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if _, ok := all[keys[i]][keys[j]]; !ok {
				fill++
			}
		}
	}

	return fill
}

func sortedKeys(m map[pgraph.VertexIndex]struct{}) []pgraph.VertexIndex {
	keys := make([]pgraph.VertexIndex, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortVertices(keys)

	return keys
}

// heapItem is one entry in the min-fill priority queue.
type heapItem struct {
	vertex pgraph.VertexIndex
	fill   int
	index  int // current slot in the heap, maintained by fillHeap.Swap
}

// fillHeap implements container/heap.Interface with true decrease-key via
// heap.Fix, using each item's index field as its mutable handle (the
// Go-idiomatic analogue of boost::heap::d_ary_heap's mutable_<true>).
type fillHeap []*heapItem

func (h fillHeap) Len() int { return len(h) }

// Less orders by fill ascending, vertex index ascending on ties — the
// explicit deterministic total order spec §4.6/§5 requires.
func (h fillHeap) Less(i, j int) bool {
	if h[i].fill != h[j].fill {
		return h[i].fill < h[j].fill
	}

	return h[i].vertex < h[j].vertex
}

func (h fillHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *fillHeap) Push(x interface{}) {
	item := x.(*heapItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *fillHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// minFillOrder runs the min-fill elimination loop of spec §4.6: repeatedly
// pop the vertex with least fill-in (ties broken by smaller index), make its
// neighbor set a clique if fill-in > 0, remove it from its neighbors, and
// reprioritize each former neighbor.
//
// Returns the elimination order and, for each vertex, the sorted neighbor
// set it had at the moment of elimination (its clique, minus itself).
func minFillOrder(n int, neighbors []map[pgraph.VertexIndex]struct{}) ([]pgraph.VertexIndex, [][]pgraph.VertexIndex) {
	items := make([]*heapItem, n)
	h := make(fillHeap, 0, n)
	for v := 0; v < n; v++ {
		item := &heapItem{vertex: pgraph.VertexIndex(v), fill: fillIn(neighbors[v], neighbors)}
		items[v] = item
		h = append(h, item)
	}
	heap.Init(&h)

	order := make([]pgraph.VertexIndex, 0, n)
	elimNeighbors := make([][]pgraph.VertexIndex, n)

	for h.Len() > 0 {
		top := heap.Pop(&h).(*heapItem)
		v := top.vertex

		elimNeighbors[v] = sortedKeys(neighbors[v])
		order = append(order, v)

		k := sortedKeys(neighbors[v])
		if top.fill > 0 {
			for _, a := range k {
				for _, b := range k {
					if a != b {
						neighbors[a][b] = struct{}{}
					}
				}
			}
		}
		for _, a := range k {
			delete(neighbors[a], v)
		}
		for _, a := range k {
			items[a].fill = fillIn(neighbors[a], neighbors)
			heap.Fix(&h, items[a].index)
		}
	}

	return order, elimNeighbors
}
