// File: relationshipgraph.go
// Role: top-level orchestration (spec §6's Construct/PrintGraph) — wires the
// seven pipeline stages into one fail-fast call and exposes the immutable
// result the eventual inference engine would consume.
package relgraph

import (
	"github.com/mutk-dev/mutk/model"
	"github.com/mutk-dev/mutk/pedigree"
	"github.com/mutk-dev/mutk/pgraph"
)

// RelationshipGraph is the immutable result of a successful Construct call:
// the finalized, banded graph; the elimination plan derived from it; and the
// junction tree built from that plan. Every field is read-only after
// construction — no exported method mutates a RelationshipGraph.
type RelationshipGraph struct {
	Graph    *pgraph.Graph
	Plan     *EliminationPlan
	Junction *JunctionTree
}

// Construct runs the full relationship-graph compiler pipeline: build, scale,
// simplify, prune, finalize, plan elimination, build junction tree. Any stage
// failure aborts the call with no partial result (spec §7).
func Construct(ped pedigree.Pedigree, knownSamples map[string]struct{}, mdl model.InheritanceModel, opts ...Option) (*RelationshipGraph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := buildGraph(ped, knownSamples, cfg.normalizeSomaticTrees)
	if err != nil {
		return nil, err
	}

	scaleEdgeLengths(g, cfg.muGerm, cfg.muSoma)

	if err := simplify(g); err != nil {
		return nil, err
	}

	if err := prune(g, mdl); err != nil {
		return nil, err
	}

	final, err := finalize(g)
	if err != nil {
		return nil, err
	}

	plan := planElimination(final)
	jt := buildJunctionTree(plan)

	return &RelationshipGraph{Graph: final, Plan: plan, Junction: jt}, nil
}
