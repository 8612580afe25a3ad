package relgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutk-dev/mutk/pgraph"
)

func TestScaleEdgeLengths_GermVsOtherRates(t *testing.T) {
	g, err := buildGraph(trioPedigree(), nil, false)
	require.NoError(t, err)

	scaleEdgeLengths(g, 2.0, 5.0)

	for _, rec := range g.Edges() {
		if rec.Edge.Type.Has(pgraph.GermEdge) {
			assert.Equal(t, 2.0, rec.Edge.Length)
		} else {
			assert.Equal(t, 5.0, rec.Edge.Length)
		}
	}
}
