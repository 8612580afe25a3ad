// File: topo.go
// Role: deterministic topological ordering, grounded on dfs/topological.go
// (teacher): recursive post-order DFS over white/gray/black vertex states,
// reversed at the end, with cycle detection via a gray back-edge.
//
// Determinism (spec §5): DFS is seeded in vertex-index order (0..N-1), and
// each vertex's neighbors are visited in OutEdges insertion order, so two
// runs over the same Graph produce byte-identical orderings.
package pgraph

import "errors"

// ErrCycleDetected indicates the graph is not a DAG.
var ErrCycleDetected = errors.New("pgraph: cycle detected")

const (
	white = 0
	gray  = 1
	black = 2
)

// TopologicalOrder returns a topological ordering of all vertex indices
// (including degree-0 ones). Complexity O(V+E).
func (g *Graph) TopologicalOrder() ([]VertexIndex, error) {
	state := make([]uint8, len(g.vertices))
	order := make([]VertexIndex, 0, len(g.vertices))

	var visit func(v VertexIndex) error
	visit = func(v VertexIndex) error {
		if state[v] == gray {
			return ErrCycleDetected
		}
		if state[v] == black {
			return nil
		}
		state[v] = gray
		for _, e := range g.out[v] {
			if err := visit(g.edges[e].To); err != nil {
				return err
			}
		}
		state[v] = black
		order = append(order, v)

		return nil
	}

	for i := 0; i < len(g.vertices); i++ {
		v := VertexIndex(i)
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	// reverse post-order to get topological order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
