// Package pgraph implements the typed directed graph the relationship-graph
// compiler operates on: an arena of vertex records indexed by integer
// handles, a parallel edge list, and adjacency indices keyed by handle.
//
// Unlike a general-purpose graph library (the teacher's core.Graph is
// string-keyed and safe for concurrent mutation across goroutines), this
// graph's vertex identity is always "the j-th thing the builder created" —
// a pedigree member position or a parsed somatic node — so integer handles
// assigned at creation time are the natural identity, not a caller-chosen
// string. Concurrent mutation of a graph under construction is an explicit
// non-goal (spec §1); Graph carries no locks.
package pgraph

import "github.com/mutk-dev/mutk/pedigree"

// VertexIndex identifies a vertex by its position in Graph.vertices. Indices
// are stable for the lifetime of a Graph: RemoveEdge/ClearVertex tombstone
// edges and adjacency but never renumber vertices. Only Finalize produces a
// fresh Graph with a new, banded numbering.
type VertexIndex int32

// EdgeIndex identifies an edge by its position in Graph.edges.
type EdgeIndex int32

// VertexType classifies a vertex's role in the pedigree/somatic hierarchy.
type VertexType uint8

const (
	// Germline is the default type for pedigree-member vertices, including
	// founders (which are only distinguished from ordinary germline
	// vertices by in-degree==0 at finalization time).
	Germline VertexType = iota
	// Founder marks a germline vertex with no parents after finalization.
	// Construction and simplification never assign this; only Finalize does.
	Founder
	// Somatic marks a vertex parsed out of a Newick sample tree.
	Somatic
	// Sample marks a Somatic vertex whose label is in the known-samples set.
	Sample
)

// String renders the type the way PrintGraph's YAML section names it.
func (t VertexType) String() string {
	switch t {
	case Founder:
		return "founding"
	case Germline:
		return "germline"
	case Somatic:
		return "somatic"
	case Sample:
		return "sample"
	default:
		return "unknown"
	}
}

// EdgeType is a bitset over the three edge roles a transmission can play.
// Bypass during simplification may produce the bitwise union of two roles
// (e.g. a chain that crosses from germline into somatic transmission).
type EdgeType uint8

const (
	// GermEdge marks parent->child germline transmission.
	GermEdge EdgeType = 1 << iota
	// SomaEdge marks transmission inside a somatic tree.
	SomaEdge
	// LibEdge marks the terminal edge into a Sample vertex.
	LibEdge
)

// Has reports whether bit is set in t.
func (t EdgeType) Has(bit EdgeType) bool { return t&bit != 0 }

// Vertex holds the per-vertex attributes of the data model (spec §3).
// Ploidy 0 is a transient "clone, inherit from parent" placeholder during
// construction, and a permanent "pruned out" marker after inheritance-model
// pruning.
type Vertex struct {
	Label  string
	Sex    pedigree.Sex
	Ploidy int
	Type   VertexType
}

// Edge holds the per-edge attributes of the data model (spec §3).
type Edge struct {
	From, To VertexIndex
	Length   float64
	Type     EdgeType
}
