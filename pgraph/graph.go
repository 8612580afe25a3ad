// File: graph.go
// Role: vertex/edge arena, adjacency indices, and the mutation primitives the
// compiler's pipeline stages are built from (AddVertex/AddEdge, RemoveEdge,
// ClearVertex, ClearInEdges, FilterEdges).
//
// Grounded on core/adjacency_list.go and core/methods_edges.go (teacher),
// generalized from a string-keyed map arena to an integer-handle slice
// arena: vertex identity here is always "creation order", never a
// caller-chosen string, so a flat slice plus adjacency-index slices replaces
// the teacher's map[string]*Vertex / map[string]map[string]map[string]struct{}.
package pgraph

import "github.com/mutk-dev/mutk/pedigree"

// Graph is the compiler's working graph: a directed multigraph (parallel
// edges are permitted; the builder never needs more than one edge between a
// given ordered pair, but nothing in this type enforces that).
//
// Removed edges are tombstoned (edges[i] is marked removed) rather than
// compacted, so EdgeIndex values handed out earlier stay valid for the
// lifetime of the Graph; adjacency slices are filtered to live indices on
// mutation, not on read, to keep iteration O(degree) rather than O(degree +
// tombstones).
type Graph struct {
	vertices []Vertex
	edges    []edgeSlot

	out [][]EdgeIndex // out[v] = live outgoing edge indices, insertion order
	in  [][]EdgeIndex // in[v] = live incoming edge indices, insertion order
}

type edgeSlot struct {
	Edge
	removed bool
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{}
}

// AddVertex appends a new vertex and returns its handle. Complexity O(1)
// amortized.
func (g *Graph) AddVertex(label string, sex pedigree.Sex, ploidy int, typ VertexType) VertexIndex {
	idx := VertexIndex(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{Label: label, Sex: sex, Ploidy: ploidy, Type: typ})
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return idx
}

// NumVertices returns the number of vertex slots (including tombstoned /
// degree-0 vertices; callers that need "live" vertices filter by degree or
// type, matching the simplifier/finalizer's own filtering).
func (g *Graph) NumVertices() int { return len(g.vertices) }

// Vertex returns a pointer to the vertex record at v. The pointer is valid
// until the next structural mutation that could reallocate g.vertices
// (AddVertex); callers that hold onto it across an AddVertex call should
// re-fetch.
func (g *Graph) Vertex(v VertexIndex) *Vertex { return &g.vertices[v] }

// AddEdge appends a new edge from->to and returns its handle. Complexity
// O(1) amortized.
func (g *Graph) AddEdge(from, to VertexIndex, length float64, typ EdgeType) EdgeIndex {
	idx := EdgeIndex(len(g.edges))
	g.edges = append(g.edges, edgeSlot{Edge: Edge{From: from, To: to, Length: length, Type: typ}})
	g.out[from] = append(g.out[from], idx)
	g.in[to] = append(g.in[to], idx)

	return idx
}

// Edge returns a pointer to the edge record at e. Returns nil if e has been
// removed.
func (g *Graph) Edge(e EdgeIndex) *Edge {
	if g.edges[e].removed {
		return nil
	}

	return &g.edges[e].Edge
}

// RemoveEdge tombstones e and drops it from both endpoints' adjacency
// slices. Complexity O(degree) for the adjacency-slice filter.
func (g *Graph) RemoveEdge(e EdgeIndex) {
	slot := &g.edges[e]
	if slot.removed {
		return
	}
	slot.removed = true
	g.out[slot.From] = removeFromSlice(g.out[slot.From], e)
	g.in[slot.To] = removeFromSlice(g.in[slot.To], e)
}

func removeFromSlice(s []EdgeIndex, e EdgeIndex) []EdgeIndex {
	for i, x := range s {
		if x == e {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

// ClearVertex removes every edge incident to v (both directions), leaving v
// itself in place with degree 0. Mirrors core.RemoveVertex's edge-cleanup
// half without deleting the vertex slot (the compiler tombstones vertices by
// degree, never by removing them from the arena — the finalizer is the only
// stage that drops degree-0 vertices, by omission from the rebuilt graph).
func (g *Graph) ClearVertex(v VertexIndex) {
	for _, e := range append([]EdgeIndex(nil), g.out[v]...) {
		g.RemoveEdge(e)
	}
	for _, e := range append([]EdgeIndex(nil), g.in[v]...) {
		g.RemoveEdge(e)
	}
}

// ClearInEdges removes only v's incoming edges, used by the simplifier's
// summable-founder pass to detach v from its summable parents while keeping
// v's outgoing edges.
func (g *Graph) ClearInEdges(v VertexIndex) {
	for _, e := range append([]EdgeIndex(nil), g.in[v]...) {
		g.RemoveEdge(e)
	}
}

// OutEdges returns the live outgoing edge indices of v, in insertion order.
func (g *Graph) OutEdges(v VertexIndex) []EdgeIndex { return g.out[v] }

// InEdges returns the live incoming edge indices of v, in insertion order.
func (g *Graph) InEdges(v VertexIndex) []EdgeIndex { return g.in[v] }

// OutDegree returns len(OutEdges(v)).
func (g *Graph) OutDegree(v VertexIndex) int { return len(g.out[v]) }

// InDegree returns len(InEdges(v)).
func (g *Graph) InDegree(v VertexIndex) int { return len(g.in[v]) }

// Degree returns InDegree(v) + OutDegree(v).
func (g *Graph) Degree(v VertexIndex) int { return g.InDegree(v) + g.OutDegree(v) }

// FilterEdges removes every live edge for which pred returns true.
// Complexity O(E) scan + O(E) adjacency cleanup in the worst case.
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	for i := range g.edges {
		if g.edges[i].removed {
			continue
		}
		if pred(&g.edges[i].Edge) {
			g.RemoveEdge(EdgeIndex(i))
		}
	}
}

// Edges returns all live edges paired with their index, in index order
// (i.e. insertion order, ignoring tombstones) — deterministic iteration for
// every caller that needs to walk the full edge set (scaler, PrintGraph).
func (g *Graph) Edges() []struct {
	Index EdgeIndex
	Edge  Edge
} {
	out := make([]struct {
		Index EdgeIndex
		Edge  Edge
	}, 0, len(g.edges))
	for i, slot := range g.edges {
		if slot.removed {
			continue
		}
		out = append(out, struct {
			Index EdgeIndex
			Edge  Edge
		}{EdgeIndex(i), slot.Edge})
	}

	return out
}

// Vertices returns every vertex index 0..NumVertices()-1, including
// tombstoned (degree-0) ones; this is the arena's natural deterministic
// order (creation order), not a sorted-label order, since labels are not
// guaranteed unique until after finalization.
func (g *Graph) Vertices() []VertexIndex {
	out := make([]VertexIndex, len(g.vertices))
	for i := range out {
		out[i] = VertexIndex(i)
	}

	return out
}
