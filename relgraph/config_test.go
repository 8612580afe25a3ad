package relgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithMuGerm_PanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, ErrBadMutationRate.Error(), func() {
		WithMuGerm(-1.0)
	})
}

func TestWithMuSoma_PanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, ErrBadMutationRate.Error(), func() {
		WithMuSoma(-0.5)
	})
}

func TestWithMuGermAndWithMuSoma_AcceptNonNegative(t *testing.T) {
	cfg := defaultConfig()
	WithMuGerm(0)(&cfg)
	WithMuSoma(3.5)(&cfg)

	assert.Equal(t, 0.0, cfg.muGerm)
	assert.Equal(t, 3.5, cfg.muSoma)
}
